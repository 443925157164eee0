// Package render pipes DOT text through an external Graphviz layout
// process to produce an image.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MaxRenderStates is the largest DFA the front end will hand to the
// layout tool. DOT text emission itself is unconditional.
const MaxRenderStates = 32

// Renderer runs the layout tool as a short-lived child process. The
// zero value uses "dot" from PATH.
type Renderer struct {
	Command string
}

func (r *Renderer) command() string {
	if r.Command == "" {
		return "dot"
	}
	return r.Command
}

// PNG feeds dot source to the layout tool's stdin and returns the
// rendered image from its stdout. The input stream is closed before
// output is read to completion and the child is reaped before
// returning; cancelling ctx kills the child.
func (r *Renderer) PNG(ctx context.Context, dot string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.command(), "-Tpng")
	cmd.Stdin = strings.NewReader(dot)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return nil, fmt.Errorf("%s: %w: %s", r.command(), err, strings.TrimSpace(stderr.String()))
		}
		return nil, fmt.Errorf("%s: %w", r.command(), err)
	}
	return out.Bytes(), nil
}
