package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter collects the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup as is
func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// text writes s HTML-escaped
func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

// attr writes name="value" with a leading space and the value escaped
func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

// url writes a sanitised URL attribute
func (hw *htmlWriter) url(name, value string) {
	hw.attr(name, string(templ.URL(value)))
}

// component renders a child component into the same writer
func (hw *htmlWriter) component(c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(hw.ctx, hw.w)
}
