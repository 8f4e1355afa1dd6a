package script

import (
	"context"
	"fmt"

	"cosmossdk.io/log"

	"github.com/b-harvest/cmdrunner/internal/output"
	"github.com/b-harvest/cmdrunner/pkg/executor"
)

// Result is the outcome of one executed step.
type Result struct {
	Step   string
	Output string
	Err    error
}

// Runner executes scripts against any executor backend.
type Runner struct {
	exec   executor.Executor
	out    *output.Logger
	logger log.Logger
}

// NewRunner creates a script runner.
func NewRunner(exec executor.Executor, out *output.Logger, logger log.Logger) *Runner {
	return &Runner{exec: exec, out: out, logger: logger}
}

// Run executes the script's steps in order. A failing step stops the run
// unless it is marked continue_on_error. The returned results cover every
// executed step; the error is non-nil when any step failed.
func (r *Runner) Run(ctx context.Context, s *Script) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))
	failed := 0

	for _, step := range s.Steps {
		res := r.runStep(ctx, step)
		results = append(results, res)

		if res.Err != nil {
			failed++
			r.out.Error("%s: %v", step.Label(), res.Err)
			if !step.ContinueOnError {
				break
			}
			continue
		}
		r.out.Success("%s", step.Label())
		if res.Output != "" {
			r.out.Debug("%s", res.Output)
		}
	}

	if failed > 0 {
		return results, fmt.Errorf("%d of %d steps failed", failed, len(s.Steps))
	}
	return results, nil
}

func (r *Runner) runStep(ctx context.Context, step Step) Result {
	cancel := func() {}
	if d, _ := step.timeoutDuration(); d > 0 {
		ctx, cancel = context.WithTimeout(ctx, d)
	}
	defer cancel()

	r.logger.Debug("running step", "step", step.Label())

	var (
		out string
		err error
	)
	if step.Shell != "" {
		out, err = r.exec.Shell(ctx, step.Shell)
	} else {
		out, err = r.exec.Run(ctx, step.Run[0], step.Run[1:]...)
	}

	return Result{Step: step.Label(), Output: out, Err: err}
}
