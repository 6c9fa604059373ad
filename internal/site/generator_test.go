package site

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/nesc-lab/paperpage/internal/paper"
	"github.com/nesc-lab/paperpage/internal/render"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func flare(t *testing.T) *paper.Paper {
	t.Helper()
	p, err := paper.Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	return p
}

type recordingReporter struct {
	total    int
	messages []string
	finished bool
}

func (r *recordingReporter) Start(total int)              { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.messages = append(r.messages, message) }
func (r *recordingReporter) Finish()                      { r.finished = true }

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	assets := filepath.Join(dir, "public")
	out := filepath.Join(dir, "site")

	writeFile(t, filepath.Join(assets, "scenario1.mp4"), "video")
	writeFile(t, filepath.Join(assets, "img", "method.png"), "png")
	writeFile(t, filepath.Join(assets, "notes.txt"), "skip me")

	rep := &recordingReporter{}
	g := &Generator{
		Paper:     flare(t),
		OutputDir: out,
		AssetsDir: assets,
		Assets:    []string{"**/*.mp4", "**/*.png"},
		Reporter:  rep,
	}

	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, name := range []string{"index.html", "style.css", "script.js", "citation.bib"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if len(res.Files) != 4 {
		t.Errorf("Files = %v, want 4 entries", res.Files)
	}

	got := append([]string(nil), res.Assets...)
	sort.Strings(got)
	want := []string{"img/method.png", "scenario1.mp4"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Assets = %v, want %v", got, want)
	}
	if _, err := os.Stat(filepath.Join(out, "img", "method.png")); err != nil {
		t.Errorf("nested asset not copied: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "notes.txt")); !os.IsNotExist(err) {
		t.Error("unmatched file should not be copied")
	}

	if rep.total != 2 || len(rep.messages) != 2 || !rep.finished {
		t.Errorf("reporter = %+v, want 2 updates and finish", rep)
	}

	if res.Report == nil || len(res.Report.Scenarios) != 3 {
		t.Fatalf("expected a report with 3 scenarios, got %+v", res.Report)
	}
	if res.Report.Citation != g.Paper.Citation {
		t.Error("report citation differs from the record")
	}
}

func TestGenerateCitationFile(t *testing.T) {
	out := t.TempDir()
	p := flare(t)
	g := &Generator{Paper: p, OutputDir: out}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(out, "citation.bib"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != p.Citation+"\n" {
		t.Errorf("citation.bib = %q, want %q", data, p.Citation+"\n")
	}
}

func TestGenerateMissingAssetsDir(t *testing.T) {
	dir := t.TempDir()
	g := &Generator{
		Paper:     flare(t),
		OutputDir: filepath.Join(dir, "site"),
		AssetsDir: filepath.Join(dir, "missing"),
		Assets:    []string{"**/*.mp4"},
	}
	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Assets) != 0 {
		t.Errorf("expected no assets, got %v", res.Assets)
	}
}

func TestGenerateSkipsOutputInsideAssets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "clip.mp4"), "video")
	writeFile(t, filepath.Join(dir, "site", "old.mp4"), "stale")

	g := &Generator{
		Paper:     flare(t),
		OutputDir: filepath.Join(dir, "site"),
		AssetsDir: dir,
		Assets:    []string{"**/*.mp4"},
	}
	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(res.Assets) != 1 || res.Assets[0] != "clip.mp4" {
		t.Errorf("Assets = %v, want [clip.mp4]", res.Assets)
	}
}

func TestGenerateAssetBase(t *testing.T) {
	dir := t.TempDir()
	assets := filepath.Join(dir, "public")
	out := filepath.Join(dir, "site")
	writeFile(t, filepath.Join(assets, "scenario1.mp4"), "video")

	r, err := render.New(render.Options{AssetBase: "static"})
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	g := &Generator{
		Paper:     flare(t),
		OutputDir: out,
		AssetsDir: assets,
		Assets:    []string{"**/*.mp4"},
		AssetBase: "static",
		Renderer:  r,
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "static", "scenario1.mp4")); err != nil {
		t.Errorf("asset not copied under the asset base: %v", err)
	}
	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `src="static/scenario1.mp4"`) {
		t.Error("page does not link the asset under the asset base")
	}
}

func TestGenerateRequiresPaper(t *testing.T) {
	g := &Generator{OutputDir: t.TempDir()}
	if _, err := g.Generate(); err == nil {
		t.Error("expected error without a paper")
	}
}

func TestMatchAny(t *testing.T) {
	tests := []struct {
		patterns []string
		rel      string
		want     bool
	}{
		{[]string{"**/*.mp4"}, "a/b/c.mp4", true},
		{[]string{"**/*.mp4"}, "c.mp4", true},
		{[]string{"*.png"}, "img/fig.png", true},
		{[]string{"img/*.png"}, "other/fig.png", false},
		{[]string{"*.png"}, "fig.jpg", false},
	}
	for _, tt := range tests {
		if got := matchAny(tt.patterns, tt.rel); got != tt.want {
			t.Errorf("matchAny(%v, %q) = %v, want %v", tt.patterns, tt.rel, got, tt.want)
		}
	}
}
