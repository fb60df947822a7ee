package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/jeffrom/czconfig/message"
	"github.com/jeffrom/czconfig/model"
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	index       int // position of the message in the checked input
	rawLine     string
	commitTitle string
	err         error
}

func (fe FailureEntry) Err() error { return fe.err }

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

func (fe FailureEntry) title() string {
	if fe.commitTitle != "" {
		return fe.commitTitle
	}
	if fe.rawLine != "" {
		return fe.rawLine
	}
	return "<empty>"
}

// WriteFailure writes the failures grouped by commit message. Messages
// sharing a header are still written as separate groups.
func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	var order []int
	byIndex := make(map[int][]FailureEntry)
	for _, failure := range cf.Failures {
		if _, ok := byIndex[failure.index]; !ok {
			order = append(order, failure.index)
		}
		byIndex[failure.index] = append(byIndex[failure.index], failure)
	}

	for _, idx := range order {
		group := byIndex[idx]
		bw.WriteString(group[0].title())
		bw.WriteString("\n")
		for _, failure := range group {
			bw.WriteString("  ")
			bw.WriteString(failure.err.Error())
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

// CheckCommits parses each raw commit message and checks it against the
// configuration. Every problem of every message is reported.
func (r *Runner) CheckCommits(ctx context.Context, commits []string) ([]model.Commit, error) {
	var failures []FailureEntry
	var parsed []model.Commit
	for i, c := range commits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		mc, err := message.Parse(r.cfg, c)
		if err != nil {
			failures = append(failures, FailureEntry{index: i, rawLine: firstLine(c), commitTitle: mc.Subject, err: err})
			continue
		}
		r.out.Debugf("checking %q", mc.Header())

		fs := r.checkCommit(i, mc)
		failures = append(failures, fs...)
		if len(fs) == 0 {
			parsed = append(parsed, mc)
		}
	}
	if len(failures) > 0 {
		return nil, CheckFailure{Failures: failures}
	}
	return parsed, nil
}

func (r *Runner) checkCommit(index int, mc model.Commit) []FailureEntry {
	err := message.Check(r.cfg, mc)
	if err == nil {
		return nil
	}

	errs := []error{err}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		errs = merr.Errors
	}

	failures := make([]FailureEntry, 0, len(errs))
	for _, e := range errs {
		failures = append(failures, FailureEntry{index: index, commitTitle: mc.Header(), err: e})
	}
	return failures
}

// CheckReadCommit checks a single commit message read from rdr, such as the
// file git passes to a commit-msg hook.
func (r *Runner) CheckReadCommit(ctx context.Context, rdr io.Reader) (model.Commit, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return model.Commit{}, err
	}
	commits, err := r.CheckCommits(ctx, []string{string(raw)})
	if err != nil {
		return model.Commit{}, err
	}
	return commits[0], nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
