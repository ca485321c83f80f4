package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Confirmer is the confirmation port for destructive operations. The rename
// flow never sends its PUT without an affirmative answer from one of these.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// StaticConfirmer answers every question the same way; used for --yes.
type StaticConfirmer bool

func (s StaticConfirmer) Confirm(string) (bool, error) { return bool(s), nil }

// Terminal reads prompts from an input stream and writes them to an output
// stream. The zero source is stdin/stdout; tests inject buffers.
type Terminal struct {
	source io.Reader
	in     *bufio.Reader
	out    io.Writer
}

func NewTerminal() *Terminal {
	return New(os.Stdin, os.Stdout)
}

func New(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{source: in, in: bufio.NewReader(in), out: out}
}

// Prompt prints a label and reads one trimmed line.
func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// PromptPassword reads a line without echoing when the input is a real
// terminal, otherwise falls back to a plain prompt so piped input works.
func (t *Terminal) PromptPassword(label string) (string, error) {
	if f, ok := t.source.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(t.out, "%s: ", label)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(t.out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	return t.Prompt(label)
}

// Confirm asks a yes/no question. Only "y" and "yes" (any case) count as yes.
func (t *Terminal) Confirm(question string) (bool, error) {
	answer, err := t.Prompt(question + " (y/n)")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
