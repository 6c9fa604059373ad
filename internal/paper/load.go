package paper

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads a paper content file, normalizes its prose fields and
// validates the result.
func Load(path string) (*Paper, error) {
	p, err := decode(file.Provider(path))
	if err != nil {
		return nil, fmt.Errorf("paper %s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a paper from YAML bytes.
func Parse(data []byte) (*Paper, error) {
	return decode(rawbytes.Provider(data))
}

// decode reads the raw document from src and decodes it with yaml.v3, which
// keeps the written text of scalars bound to string fields ("1.50" stays
// "1.50").
func decode(src koanf.Provider) (*Paper, error) {
	data, err := src.ReadBytes()
	if err != nil {
		return nil, fmt.Errorf("reading paper: %w", err)
	}
	var p Paper
	if err := yamlv3.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing paper: %w", err)
	}
	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Save writes the record as YAML.
func (p *Paper) Save(path string) error {
	data, err := yamlv3.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling paper: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing paper to %s: %w", path, err)
	}
	return nil
}

// normalize strips block-scalar indentation from prose fields. The citation
// is left untouched: it is copied to the clipboard byte-for-byte.
func (p *Paper) normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Venue = strings.TrimSpace(p.Venue)
	p.Abstract = dedent(p.Abstract)
	p.ScenariosIntro = dedent(p.ScenariosIntro)
	p.Method.Summary = dedent(p.Method.Summary)
	for i := range p.Method.Highlights {
		p.Method.Highlights[i].Text = dedent(p.Method.Highlights[i].Text)
	}
	for i := range p.Scenarios {
		p.Scenarios[i].Description = dedent(p.Scenarios[i].Description)
		if p.Scenarios[i].Media.Kind == "" && p.Scenarios[i].Media.Src != "" {
			p.Scenarios[i].Media.Kind = MediaVideo
		}
	}
	if p.Method.Figure.Kind == "" && p.Method.Figure.Src != "" {
		p.Method.Figure.Kind = MediaImage
	}
}

// dedent removes the common leading indentation of all non-blank lines,
// trailing whitespace on each line and surrounding blank lines.
func dedent(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	indent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		n := len(line) - len(strings.TrimLeft(line, " \t"))
		if indent == -1 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent {
			line = line[indent:]
		} else {
			line = strings.TrimLeft(line, " \t")
		}
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
