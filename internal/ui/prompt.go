package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DialogPrompter asks a yes/no question. On a terminal it shows the
// bubbletea dialog; otherwise it falls back to a "[Y/n]" line prompt.
type DialogPrompter struct {
	In          io.Reader
	Out         io.Writer
	Interactive func() bool
	// AssumeYes answers every prompt with yes without showing it.
	AssumeYes bool
	// run is swapped in tests; defaults to RunConfirm.
	run func(title, message string, in io.Reader, out io.Writer) (bool, error)
}

// NewDialogPrompter binds the prompter to the process terminal.
func NewDialogPrompter(assumeYes bool) *DialogPrompter {
	return &DialogPrompter{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: IsInteractive,
		AssumeYes:   assumeYes,
	}
}

// Confirm shows title and message and returns the operator's answer.
// Any failure to read an answer counts as No.
func (p *DialogPrompter) Confirm(title, message string) bool {
	if p.AssumeYes {
		return true
	}
	in, out := p.In, p.Out
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	if p.Interactive != nil && p.Interactive() {
		run := p.run
		if run == nil {
			run = RunConfirm
		}
		ok, err := run(title, message, in, out)
		if err == nil {
			return ok
		}
		fmt.Fprintf(out, "dialog unavailable: %v\n", err)
	}
	return linePrompt(title, message, in, out)
}

func linePrompt(title, message string, in io.Reader, out io.Writer) bool {
	c := NewColorConfigFromGlobal()
	fmt.Fprintln(out, c.Header(" "+title+" "))
	fmt.Fprintln(out, WrapText(strings.TrimRight(strings.ReplaceAll(message, "\r\n", "\n"), "\n"), 80))
	fmt.Fprint(out, "[Y/n]: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "y", "yes":
		return true
	}
	return false
}
