package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// ForcedApprover implements the Approver interface for --force: it reports
// the replacement and approves without asking.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover writing to stderr.
func NewForcedApprover(verbose bool) scormpack.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves unless ctx is already done.
func (a *ForcedApprover) RequestApproval(ctx context.Context, archivePath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(a.output, "Replacing existing archive %s (--force)\n", archivePath)
	}
	return true, nil
}

// NonInteractiveApprover approves replacements when no terminal is attached,
// so scripted builds overwrite their previous output.
type NonInteractiveApprover struct{}

// NewNonInteractiveApprover creates a new NonInteractiveApprover.
func NewNonInteractiveApprover() scormpack.Approver {
	return NonInteractiveApprover{}
}

// RequestApproval approves unless ctx is already done.
func (NonInteractiveApprover) RequestApproval(ctx context.Context, _ string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

var (
	_ scormpack.Approver = (*ForcedApprover)(nil)
	_ scormpack.Approver = NonInteractiveApprover{}
)
