// Package batch offers one-shot helpers over consoleink for callers that
// already hold a complete document in memory rather than streaming it.
package batch

import (
	"io"
	"strings"

	consoleink "github.com/stimpy77/ConsoleInk.NET"
)

// RenderString renders a complete Markdown document to a string.
func RenderString(src string, opts ...consoleink.Option) (string, error) {
	var b strings.Builder
	w := consoleink.NewWriter(&b, opts...)
	if err := w.WriteString(src); err != nil {
		return "", err
	}
	if err := w.Complete(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderReader streams r through a Writer and writes rendered bytes to out.
// Unlike RenderString it never buffers the whole document, so it is
// suitable for large input.
func RenderReader(out io.Writer, r io.Reader, opts ...consoleink.Option) error {
	w := consoleink.NewWriter(out, opts...)
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if werr := w.WriteString(string(buf[:n])); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
	}
	return w.Complete()
}
