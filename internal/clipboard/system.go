package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// command is one platform clipboard program that reads text on stdin.
type command struct {
	name string
	args []string
}

// SystemWriter writes through the first clipboard program found on PATH.
type SystemWriter struct {
	lookPath func(string) (string, error)
	goos     string
	getenv   func(string) string
}

// NewSystemWriter returns a writer for the host clipboard.
func NewSystemWriter() *SystemWriter {
	return &SystemWriter{lookPath: exec.LookPath, goos: runtime.GOOS, getenv: os.Getenv}
}

func (s *SystemWriter) candidates() []command {
	switch s.goos {
	case "darwin":
		return []command{{"pbcopy", nil}}
	case "windows":
		return []command{{"clip", nil}}
	default:
		var cmds []command
		if s.getenv("WAYLAND_DISPLAY") != "" {
			cmds = append(cmds, command{"wl-copy", nil})
		}
		return append(cmds,
			command{"xclip", []string{"-selection", "clipboard"}},
			command{"xsel", []string{"--clipboard", "--input"}},
		)
	}
}

// resolve returns the first available clipboard program.
func (s *SystemWriter) resolve() (command, string, error) {
	for _, c := range s.candidates() {
		if path, err := s.lookPath(c.name); err == nil {
			return c, path, nil
		}
	}
	return command{}, "", fmt.Errorf("%w on %s", ErrUnsupported, s.goos)
}

// WriteText pipes text to the clipboard program.
func (s *SystemWriter) WriteText(ctx context.Context, text string) error {
	c, path, err := s.resolve()
	if err != nil {
		return err
	}
	cmd := exec.CommandContext(ctx, path, c.args...)
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", c.name, err, msg)
		}
		return fmt.Errorf("%s: %w", c.name, err)
	}
	return nil
}
