package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/romanpravda/scormpack/pkg/scormpack"
)

// InteractiveApprover implements the Approver interface for console-based
// confirmation. It asks a yes/no question; anything but y or yes is a denial.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover on stdin and stderr.
func NewInteractiveApprover(verbose bool) scormpack.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval asks whether the archive at archivePath may be replaced.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, archivePath string) (bool, error) {
	fmt.Fprintf(a.output, "\nThe archive %s already exists.\n", archivePath)
	fmt.Fprint(a.output, "Replace it? [y/N]: ")

	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || input == "") {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(a.output, "✓ Replacing archive.")
			return true, nil
		default:
			fmt.Fprintf(a.output, "✗ Keeping %s. Build cancelled.\n", archivePath)
			return false, nil
		}
	}
}

var _ scormpack.Approver = (*InteractiveApprover)(nil)
