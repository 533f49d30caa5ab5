package executor

import (
	"context"

	"github.com/dockflow/dockflow/pkg/types"
)

// Result is the outcome of one remote command. Ordinary remote failures
// (auth rejected, connection refused, non-zero exit) surface either as a
// Result with a non-zero ExitCode or as a returned error value; an
// Executor never panics for them.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the command ran and exited zero
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Executor runs a single command on the server identified by the
// credential. Implementations open and close their own connection per
// call; nothing is pooled or reused across calls.
type Executor interface {
	Run(ctx context.Context, cred *types.ConnectionCredential, command string) (*Result, error)
}

// Func adapts a function to the Executor interface
type Func func(ctx context.Context, cred *types.ConnectionCredential, command string) (*Result, error)

// Run implements Executor
func (f Func) Run(ctx context.Context, cred *types.ConnectionCredential, command string) (*Result, error) {
	return f(ctx, cred, command)
}
