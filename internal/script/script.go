// Package script runs TOML-described command sequences through an
// executor backend.
package script

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/b-harvest/cmdrunner/pkg/executor"
)

// Step is one command in a script. Exactly one of Run or Shell must be
// set: Run is an argv executed directly, Shell is a command line handed
// to the shell.
type Step struct {
	Name            string   `toml:"name"`
	Run             []string `toml:"run"`
	Shell           string   `toml:"shell"`
	Timeout         string   `toml:"timeout"` // Per-step deadline, e.g. "30s"
	ContinueOnError bool     `toml:"continue_on_error"`
}

// Label returns the step's display name, falling back to its command
// text when no name was given.
func (s Step) Label() string {
	if s.Name != "" {
		return s.Name
	}
	if s.Shell != "" {
		return s.Shell
	}
	return executor.FormatCommand(s.Run[0], s.Run[1:])
}

func (s Step) timeoutDuration() (time.Duration, error) {
	if s.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(s.Timeout)
}

// Script is a parsed sequence of steps.
type Script struct {
	Steps []Step `toml:"step"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}

	var s Script
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid script %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the script for structural problems.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("script has no steps")
	}
	for i, step := range s.Steps {
		switch {
		case len(step.Run) == 0 && step.Shell == "":
			return fmt.Errorf("step %d: one of run or shell is required", i+1)
		case len(step.Run) > 0 && step.Shell != "":
			return fmt.Errorf("step %d: run and shell are mutually exclusive", i+1)
		}
		if _, err := step.timeoutDuration(); err != nil {
			return fmt.Errorf("step %d: invalid timeout %q", i+1, step.Timeout)
		}
	}
	return nil
}
