package message

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jeffrom/czconfig/config"
	"github.com/jeffrom/czconfig/model"
)

// headerRestRE matches what follows the type value in a header.
var headerRestRE = regexp.MustCompile(`^(?:\((?P<scope>[^\)]+)\))?(?P<bang>!)?:\s+(?P<subject>.+)$`)

// Parse reads a commit message written with cfg back into its parts. Lines
// starting with "#" are dropped, as git does for commit message files. The
// header type is matched against the configured values first, longest value
// wins, then against bare keywords so "feat: x" matches "✨ feat".
func Parse(cfg *config.Config, msg string) (model.Commit, error) {
	msg = stripComments(msg)
	if msg == "" {
		return model.Commit{}, fmt.Errorf("%w: empty message", ErrMalformedHeader)
	}
	header, rest, _ := strings.Cut(msg, "\n")
	header = strings.TrimRight(header, " \t\r")

	c, err := parseHeader(cfg, header)
	if err != nil {
		return c, err
	}

	for _, para := range paragraphs(rest) {
		switch {
		case cfg.BreakingPrefix() != "" && strings.HasPrefix(para, cfg.BreakingPrefix()):
			c.Breaking = strings.TrimSpace(strings.TrimPrefix(para, cfg.BreakingPrefix()))
		case cfg.FooterPrefix() != "" && strings.HasPrefix(para, cfg.FooterPrefix()):
			c.Footer = strings.TrimSpace(strings.TrimPrefix(para, cfg.FooterPrefix()))
		case c.Body == "":
			c.Body = para
		default:
			c.Body += "\n\n" + para
		}
	}
	return c, nil
}

func parseHeader(cfg *config.Config, header string) (model.Commit, error) {
	var match config.CommitType
	for _, t := range cfg.Types() {
		if strings.HasPrefix(header, t.Value) && len(t.Value) > len(match.Value) {
			if headerRestRE.MatchString(header[len(t.Value):]) {
				match = t
			}
		}
	}

	rest := ""
	typ := match.Value
	if typ != "" {
		rest = header[len(typ):]
	} else {
		i := strings.IndexAny(header, "(!:")
		if i <= 0 {
			return model.Commit{Subject: header}, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
		}
		typ, rest = header[:i], header[i:]
		if t, err := ResolveType(cfg, typ); err == nil {
			typ = t.Value
		}
	}

	m := headerRestRE.FindStringSubmatch(rest)
	if m == nil {
		return model.Commit{Type: typ, Subject: header}, fmt.Errorf("%w: %q", ErrMalformedHeader, header)
	}
	c := model.Commit{
		Type:    typ,
		Scope:   m[headerRestRE.SubexpIndex("scope")],
		Subject: strings.TrimSpace(m[headerRestRE.SubexpIndex("subject")]),
	}
	if m[headerRestRE.SubexpIndex("bang")] != "" {
		c.Breaking = c.Subject
	}
	return c, nil
}

func stripComments(msg string) string {
	lines := strings.Split(strings.ReplaceAll(msg, "\r\n", "\n"), "\n")
	cleaned := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

func paragraphs(s string) []string {
	var paras []string
	for _, p := range strings.Split(s, "\n\n") {
		p = strings.Trim(p, "\n")
		if strings.TrimSpace(p) == "" {
			continue
		}
		paras = append(paras, p)
	}
	return paras
}
