package contactclient

import (
	"fmt"
	"io"
)

// WriterRenderer prints statuses and field errors as plain text lines.
type WriterRenderer struct {
	w io.Writer
}

func NewWriterRenderer(w io.Writer) *WriterRenderer {
	return &WriterRenderer{w: w}
}

func (r *WriterRenderer) ClearStatus()      {}
func (r *WriterRenderer) ClearFieldErrors() {}

func (r *WriterRenderer) ShowFieldError(field, message string) {
	fmt.Fprintf(r.w, "  %s: %s\n", field, message)
}

func (r *WriterRenderer) ShowStatus(status Status) {
	prefix := "ok"
	if status.Kind == StatusFailed {
		prefix = "error"
	}
	fmt.Fprintf(r.w, "%s: %s\n", prefix, status.Message)
}

func (r *WriterRenderer) SetSubmitting(submitting bool) {
	if submitting {
		fmt.Fprintln(r.w, "sending...")
	}
}
