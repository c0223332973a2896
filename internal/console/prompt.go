// Package console implements the interactive confirmation prompt used before
// destructive configuration changes.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter asks yes/no questions. In and Out default to stdin and stderr so
// prompts never mix with command output on stdout; tests substitute buffers.
type Prompter struct {
	In        io.Reader
	Out       io.Writer
	AssumeYes bool
}

// NewPrompter returns a Prompter bound to the process terminal. With
// assumeYes set, every Confirm call succeeds without asking.
func NewPrompter(assumeYes bool) *Prompter {
	return &Prompter{
		In:        os.Stdin,
		Out:       os.Stderr,
		AssumeYes: assumeYes,
	}
}

// Confirm prints message followed by a continue question and reads one line
// of input. An empty line counts as yes. A closed input stream counts as no,
// so scripted runs without --quiet cancel instead of hanging or proceeding.
func (p *Prompter) Confirm(message string) (bool, error) {
	if p.AssumeYes {
		return true, nil
	}

	fmt.Fprintln(p.Out, message)
	fmt.Fprint(p.Out, "\nDo you want to continue? [Y/n]: ")

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil {
		if err != io.EOF {
			return false, err
		}
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(p.Out)
			return false, nil
		}
		// The answer arrived without a trailing newline, handle it below.
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
