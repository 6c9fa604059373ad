package clipboard

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrWriteFailed wraps any failure to place text on the clipboard.
	ErrWriteFailed = errors.New("clipboard write failed")
	// ErrUnsupported is returned when no clipboard is reachable.
	ErrUnsupported = errors.New("no clipboard available")
)

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// WriterFunc adapts a function to Writer.
type WriterFunc func(ctx context.Context, text string) error

func (f WriterFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// Copier performs the copy action: write the text, then show the copied
// indicator. A failed write leaves the indicator untouched.
type Copier struct {
	w   Writer
	ind *Indicator
}

// NewCopier wires a clipboard writer to an indicator.
func NewCopier(w Writer, ind *Indicator) *Copier {
	return &Copier{w: w, ind: ind}
}

// Indicator returns the indicator driven by this copier.
func (c *Copier) Indicator() *Indicator { return c.ind }

// Copy writes text exactly as given.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if err := c.w.WriteText(ctx, text); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFailed, err)
	}
	c.ind.Trigger()
	return nil
}
