// Package confirm is the yes/no gate consulted before destructive actions.
package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type Gate interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Static answers every prompt the same way (e.g. a --yes flag).
type Static bool

func (s Static) Confirm(context.Context, string) (bool, error) {
	return bool(s), nil
}

// Prompt asks on Out and reads a single line from In. Only "y" and "yes" confirm.
type Prompt struct {
	In  io.Reader
	Out io.Writer
}

func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{In: in, Out: out}
}

func (p *Prompt) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(p.Out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
