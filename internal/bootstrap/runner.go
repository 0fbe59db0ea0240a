package bootstrap

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes host commands. The bootstrap sequence shells out for
// everything that touches the kernel or the package manager, so tests
// substitute a fake.
type Runner interface {
	// Run executes a command, discarding output.
	Run(ctx context.Context, name string, args ...string) error
	// Output executes a command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands on the host.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return nil
}

// Output implements Runner.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
