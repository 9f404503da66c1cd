// Package prompt implements the tool's interactive console input:
// sequential questions answered on stdin, where typing "exit" at any
// point aborts the whole run.
//
// Every prompt returns an Answer rather than a bare string: the Aborted
// flag is the sentinel the orchestrator checks after each question, so
// the escape command works uniformly everywhere without panics or
// process-level exits buried in input handling. End of input (ctrl-D,
// closed pipe) is treated the same as the exit command.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ExitCommand aborts the run when typed at any prompt (case-insensitive).
const ExitCommand = "exit"

// csvExtension is the only accepted input-file extension.
const csvExtension = ".csv"

// Answer is the result of one prompt: either a trimmed value, or an
// abort request from the user.
type Answer struct {
	Value   string
	Aborted bool
}

// Is reports whether the answer equals key, ignoring case. Used for
// single-letter flag prompts ("p", "d", "v"), where anything else —
// including just pressing Enter — declines.
func (a Answer) Is(key string) bool {
	return !a.Aborted && strings.EqualFold(a.Value, key)
}

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// String displays label and returns the trimmed response.
// The exit command and end of input both yield Aborted.
func (p *Prompter) String(label string) (Answer, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Answer{}, fmt.Errorf("prompt: read: %w", err)
	}
	val := strings.TrimSpace(line)
	if strings.EqualFold(val, ExitCommand) {
		return Answer{Aborted: true}, nil
	}
	// EOF with no pending text means the input stream is gone
	if err != nil && val == "" {
		return Answer{Aborted: true}, nil
	}

	return Answer{Value: val}, nil
}

// CSVPath asks for an input file name until the user supplies one with a
// .csv extension or aborts. Invalid extensions produce a retry message on
// out, mirroring the tool's forgiving prompt loop.
func (p *Prompter) CSVPath(label string) (Answer, error) {
	for {
		ans, err := p.String(label)
		if err != nil || ans.Aborted {
			return ans, err
		}
		if strings.HasSuffix(strings.ToLower(ans.Value), csvExtension) {
			return ans, nil
		}
		fmt.Fprintf(p.out, "Invalid file extension. Please enter a valid %s file.\n", csvExtension)
	}
}
