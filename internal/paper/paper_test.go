package paper

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const flareCitation = `@article{cao2026flare,
  title={FLARE: Agile Flights for Quadrotor Cable-Suspended Payload System via Reinforcement Learning},
  author={Cao, Dongcheng and Zhou, Jin and Wang, Xian and Li, Shuo},
  journal={IEEE Robotics and Automation Letters},
  year={2026},
  publisher={IEEE}
}`

func TestDefault(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if !strings.HasPrefix(p.Title, "FLARE:") {
		t.Errorf("title = %q", p.Title)
	}
	if len(p.Authors) != 4 {
		t.Fatalf("authors = %d, want 4", len(p.Authors))
	}
	if p.FirstAuthor() != "Dongcheng Cao" {
		t.Errorf("first author = %q", p.FirstAuthor())
	}
	if p.Citation != flareCitation {
		t.Errorf("citation mismatch:\n%q\nwant\n%q", p.Citation, flareCitation)
	}
	if len(p.Scenarios) != 3 {
		t.Fatalf("scenarios = %d, want 3", len(p.Scenarios))
	}
	third := p.Scenarios[2]
	if len(third.Columns) != 2 || third.Columns[0] != "Method" {
		t.Errorf("third scenario columns = %v", third.Columns)
	}
	if !third.Metrics[1].Emphasis || !third.Metrics[0].Muted {
		t.Errorf("third scenario flags = %+v", third.Metrics)
	}
	if p.Footer.Year != 2026 {
		t.Errorf("footer year = %d", p.Footer.Year)
	}
}

func TestDefaultAbstractIsDedented(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	for _, line := range strings.Split(p.Abstract, "\n") {
		if strings.HasPrefix(line, " ") {
			t.Fatalf("abstract line still indented: %q", line)
		}
	}
	if !strings.HasPrefix(p.Abstract, "Agile flight") {
		t.Errorf("abstract starts with %q", p.Abstract[:20])
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "paper.yml")
	content := `title: Test Paper
citation: |-
  @misc{x,
    title={Test}
  }
authors:
  - name: Ada Lovelace
scenarios:
  - title: One
    metrics:
      - key: b
        value: "2"
      - key: a
        value: "1"
    media:
      src: one.mp4
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Citation != "@misc{x,\n  title={Test}\n}" {
		t.Errorf("citation = %q", p.Citation)
	}
	s := p.Scenarios[0]
	if s.Metrics[0].Key != "b" || s.Metrics[1].Key != "a" {
		t.Errorf("metric order not preserved: %+v", s.Metrics)
	}
	if s.Media.Kind != MediaVideo {
		t.Errorf("media kind = %q, want video default", s.Media.Kind)
	}
}

func TestParseKeepsScalarText(t *testing.T) {
	content := `title: 2048
citation: "@misc{x}"
authors:
  - name: Ada Lovelace
scenarios:
  - title: Numbers
    metrics:
      - key: Velocity
        value: 1.50
      - key: Success
        value: 100.0
      - key: Error
        value: 1e-3
      - key: Runs
        value: 007
`
	p, err := Parse([]byte(content))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Title != "2048" {
		t.Errorf("title = %q, want %q", p.Title, "2048")
	}
	want := []string{"1.50", "100.0", "1e-3", "007"}
	for i, m := range p.Scenarios[0].Metrics {
		if m.Value != want[i] {
			t.Errorf("metrics[%d].value = %q, want %q", i, m.Value, want[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadOrDefault(t *testing.T) {
	p, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if len(p.Scenarios) != 3 {
		t.Errorf("expected built-in record")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Paper {
		return &Paper{
			Title:    "T",
			Citation: "@misc{t}",
			Authors:  []Author{{Name: "A"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(p *Paper)
		want   string
	}{
		{"valid", func(p *Paper) {}, ""},
		{"no title", func(p *Paper) { p.Title = " " }, "title is required"},
		{"no citation", func(p *Paper) { p.Citation = "" }, "citation is required"},
		{"no authors", func(p *Paper) { p.Authors = nil }, "at least one author"},
		{"empty author", func(p *Paper) { p.Authors = append(p.Authors, Author{}) }, "authors[1]: name is required"},
		{"duplicate scenario", func(p *Paper) {
			p.Scenarios = []Scenario{{Title: "S"}, {Title: "S"}}
		}, "duplicate title"},
		{"bad columns", func(p *Paper) {
			p.Scenarios = []Scenario{{Title: "S", Columns: []string{"one"}}}
		}, "columns must have exactly 2"},
		{"empty metric key", func(p *Paper) {
			p.Scenarios = []Scenario{{Title: "S", Metrics: []Metric{{Value: "1"}}}}
		}, "metrics[0]: key is required"},
		{"bad media kind", func(p *Paper) {
			p.Scenarios = []Scenario{{Title: "S", Media: Media{Kind: "gif", Src: "a.gif"}}}
		}, "unknown kind"},
		{"bad url", func(p *Paper) { p.Video.EmbedURL = "http://[::1" }, "video.embed_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error does not match ErrInvalid: %v", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	err := (&Paper{}).Validate()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if len(verr.Problems) != 3 {
		t.Errorf("problems = %v, want 3", verr.Problems)
	}
}

func TestButtons(t *testing.T) {
	links := Links{
		Paper:          Link{URL: "paper.pdf"},
		Code:           Link{URL: "https://github.com/x/y", Label: "GitHub"},
		SecondaryVideo: Link{URL: "#", Icon: "custom.svg"},
	}
	got := links.Buttons()
	if len(got) != 3 {
		t.Fatalf("buttons = %d, want 3", len(got))
	}
	want := []Button{
		{Label: "Paper", URL: "paper.pdf", Icon: "pdf.svg"},
		{Label: "GitHub", URL: "https://github.com/x/y", Icon: "github.svg"},
		{Label: "Bilibili", URL: "#", Icon: "custom.svg"},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("button[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	c := p.Clone()
	c.Authors[0].Name = "Changed"
	c.Scenarios[0].Metrics[0].Value = "0"
	c.Scenarios[2].Columns[0] = "X"

	if p.Authors[0].Name == "Changed" {
		t.Error("authors shared between clone and original")
	}
	if p.Scenarios[0].Metrics[0].Value == "0" {
		t.Error("metrics shared between clone and original")
	}
	if p.Scenarios[2].Columns[0] == "X" {
		t.Error("columns shared between clone and original")
	}
}

func TestSaveAndLoad(t *testing.T) {
	original, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "paper.yml")
	if err := original.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Citation != original.Citation {
		t.Errorf("citation changed on round trip:\n%q\n%q", loaded.Citation, original.Citation)
	}
	if loaded.Abstract != original.Abstract {
		t.Errorf("abstract changed on round trip")
	}
}

func TestDedent(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  a\n  b", "a\nb"},
		{"\n\n    a\n      b\n\n", "a\n  b"},
		{"a  \nb", "a\nb"},
		{"  a\n\n  b", "a\n\nb"},
	}
	for _, tt := range tests {
		if got := dedent(tt.in); got != tt.want {
			t.Errorf("dedent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDraftCitation(t *testing.T) {
	p := &Paper{
		Title:   "FLARE: Agile Flights",
		Venue:   "RA-L",
		Authors: []Author{{Name: "Dongcheng Cao"}, {Name: "Jin Zhou"}},
		Footer:  Footer{Year: 2026},
	}
	got := DraftCitation(p)
	want := "@article{cao2026flare,\n" +
		"  title={FLARE: Agile Flights},\n" +
		"  author={Cao, Dongcheng and Zhou, Jin},\n" +
		"  journal={RA-L},\n" +
		"  year={2026}\n" +
		"}"
	if got != want {
		t.Errorf("DraftCitation:\n%s\nwant\n%s", got, want)
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" Ada Lovelace , Alan Turing ", []string{"Ada Lovelace", "Alan Turing"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
