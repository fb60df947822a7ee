// Package runner manages command-line execution
package runner

import (
	"github.com/jeffrom/czconfig/config"
	"github.com/jeffrom/czconfig/message"
	"github.com/jeffrom/czconfig/model"
)

type Runner struct {
	cfg *config.Config
	out config.Output
}

func New(cfg *config.Config, out config.Output) *Runner {
	return &Runner{
		cfg: cfg,
		out: out,
	}
}

// Compose builds a commit message from answers given on the command line.
func (r *Runner) Compose(answers model.Commit) (string, error) {
	msg, err := message.Compose(r.cfg, answers)
	if err != nil {
		return "", err
	}
	r.out.Debugf("composed %d byte message", len(msg))
	return msg, nil
}
