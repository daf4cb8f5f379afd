package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// wrapWidth keeps companion replies readable in a narrow terminal pane.
const wrapWidth = 88

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// MarkdownWriter buffers a streamed reply and renders it with glamour on
// Flush. In raw mode, or when out is not a terminal, writes pass straight
// through and Flush does nothing.
type MarkdownWriter struct {
	out   io.Writer
	buf   bytes.Buffer
	raw   bool
	isTTY bool
}

// NewMarkdownWriter creates a MarkdownWriter targeting out.
func NewMarkdownWriter(out io.Writer, raw bool) *MarkdownWriter {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isTerminal(f)
	}
	return &MarkdownWriter{
		out:   out,
		raw:   raw,
		isTTY: tty,
	}
}

// Buffering reports whether output is held until Flush.
func (m *MarkdownWriter) Buffering() bool {
	return !m.raw && m.isTTY
}

func (m *MarkdownWriter) Write(p []byte) (int, error) {
	if !m.Buffering() {
		return m.out.Write(p)
	}
	return m.buf.Write(p)
}

// Flush renders the buffered content. If rendering fails the raw text is
// written instead, with a note on stderr.
func (m *MarkdownWriter) Flush() error {
	if !m.Buffering() || m.buf.Len() == 0 {
		return nil
	}
	defer m.buf.Reset()

	rendered, err := render(m.buf.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering unavailable, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}
	_, err = fmt.Fprint(m.out, rendered)
	return err
}

// RenderMarkdown renders md for the terminal, returning md unchanged on error.
func RenderMarkdown(md string) string {
	out, err := render(md)
	if err != nil {
		return md
	}
	return out
}

func render(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
