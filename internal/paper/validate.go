package paper

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("invalid paper")

// ValidationError lists every problem found in a record.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid paper: %s", strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

// Validate checks that the record can be rendered. Media sources and link
// targets are only checked for syntax; they are never fetched.
func (p *Paper) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if strings.TrimSpace(p.Title) == "" {
		add("title is required")
	}
	if strings.TrimSpace(p.Citation) == "" {
		add("citation is required")
	}
	if len(p.Authors) == 0 {
		add("at least one author is required")
	}
	for i, a := range p.Authors {
		if strings.TrimSpace(a.Name) == "" {
			add("authors[%d]: name is required", i)
		}
		if err := checkURL(a.URL); err != nil {
			add("authors[%d]: %v", i, err)
		}
	}

	for _, b := range p.Links.Buttons() {
		if err := checkURL(b.URL); err != nil {
			add("links.%s: %v", strings.ToLower(b.Label), err)
		}
	}
	if err := checkURL(p.Video.EmbedURL); err != nil {
		add("video.embed_url: %v", err)
	}

	if err := checkMedia(p.Method.Figure, MediaImage); err != nil {
		add("method.figure: %v", err)
	}

	seen := make(map[string]bool, len(p.Scenarios))
	for i, s := range p.Scenarios {
		if strings.TrimSpace(s.Title) == "" {
			add("scenarios[%d]: title is required", i)
		} else if seen[s.Title] {
			add("scenarios[%d]: duplicate title %q", i, s.Title)
		}
		seen[s.Title] = true

		if len(s.Columns) != 0 && len(s.Columns) != 2 {
			add("scenarios[%d]: columns must have exactly 2 entries, got %d", i, len(s.Columns))
		}
		for j, m := range s.Metrics {
			if strings.TrimSpace(m.Key) == "" {
				add("scenarios[%d].metrics[%d]: key is required", i, j)
			}
		}
		if err := checkMedia(s.Media, MediaVideo); err != nil {
			add("scenarios[%d].media: %v", i, err)
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func checkMedia(m Media, fallback MediaKind) error {
	if m.Src == "" {
		return nil
	}
	kind := m.Kind
	if kind == "" {
		kind = fallback
	}
	if kind != MediaVideo && kind != MediaImage {
		return fmt.Errorf("unknown kind %q: must be video or image", m.Kind)
	}
	return checkURL(m.Src)
}

// checkURL accepts absolute URLs, relative asset paths and "#" placeholders.
func checkURL(raw string) error {
	if raw == "" {
		return nil
	}
	if _, err := url.Parse(raw); err != nil {
		return fmt.Errorf("bad url %q", raw)
	}
	return nil
}
