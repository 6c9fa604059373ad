package site

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/nesc-lab/paperpage/internal/paper"
	"github.com/nesc-lab/paperpage/internal/progress"
	"github.com/nesc-lab/paperpage/internal/render"
)

// Output file names.
const (
	IndexName    = "index.html"
	CitationName = "citation.bib"
)

// Generator writes the project page and its supporting files to OutputDir.
type Generator struct {
	Paper     *paper.Paper
	OutputDir string
	// AssetsDir holds local media referenced by the paper. Missing is fine.
	AssetsDir string
	// Assets are doublestar patterns, matched against the path relative to
	// AssetsDir and against the base name.
	Assets    []string
	// AssetBase is the subdirectory of OutputDir assets are copied into. It
	// must match the renderer's AssetBase so page links resolve.
	AssetBase string
	Renderer  *render.Renderer
	Reporter  progress.Reporter
}

// Result describes a completed build.
type Result struct {
	Files  []string
	Assets    []string
	Report *render.Report
}

// Generate renders the page, writes the static files, copies assets and
// checks the written page.
func (g *Generator) Generate() (*Result, error) {
	if g.Paper == nil {
		return nil, fmt.Errorf("no paper to render")
	}
	if g.OutputDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	r := g.Renderer
	if r == nil {
		var err error
		if r, err = render.New(render.Options{}); err != nil {
			return nil, err
		}
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	var page bytes.Buffer
	if err := r.Render(&page, g.Paper); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	res := &Result{}
	files := []struct {
		name string
		data []byte
	}{
		{IndexName, page.Bytes()},
		{render.StylesheetName, render.Stylesheet()},
		{render.ScriptName, render.Script()},
		{CitationName, citationFile(g.Paper.Citation)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(g.OutputDir, f.name), f.data, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", f.name, err)
		}
		res.Files = append(res.Files, f.name)
	}

	assets, err := g.collectAssets()
	if err != nil {
		return nil, err
	}
	if len(assets) > 0 {
		reporter.Start(len(assets))
		for i, rel := range assets {
			reporter.Update(i+1, rel)
			src := filepath.Join(g.AssetsDir, filepath.FromSlash(rel))
			dst := filepath.Join(g.OutputDir, filepath.FromSlash(g.AssetBase), filepath.FromSlash(rel))
			if err := copyFile(src, dst); err != nil {
				reporter.Finish()
				return nil, fmt.Errorf("copying asset %s: %w", rel, err)
			}
		}
		reporter.Finish()
	}
	res.Assets = assets

	report, err := render.Check(bytes.NewReader(page.Bytes()))
	res.Report = report
	if err != nil {
		return res, err
	}
	return res, nil
}

// citationFile returns the citation with a trailing newline.
func citationFile(citation string) []byte {
	if !strings.HasSuffix(citation, "\n") {
		citation += "\n"
	}
	return []byte(citation)
}

// collectAssets returns the slash-separated relative paths of files in
// AssetsDir that match one of the asset patterns. The output directory is
// skipped when it lives inside AssetsDir.
func (g *Generator) collectAssets() ([]string, error) {
	if g.AssetsDir == "" || len(g.Assets) == 0 {
		return nil, nil
	}
	info, err := os.Stat(g.AssetsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("accessing assets dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets dir %s is not a directory", g.AssetsDir)
	}

	outAbs, _ := filepath.Abs(g.OutputDir)

	var matched []string
	err = filepath.WalkDir(g.AssetsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, _ := filepath.Abs(path); abs == outAbs {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(g.AssetsDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if matchAny(g.Assets, rel) {
			matched = append(matched, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking assets dir: %w", err)
	}
	return matched, nil
}

func matchAny(patterns []string, rel string) bool {
	base := filepath.Base(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.PathMatch(pattern, rel); err == nil && ok {
			return true
		}
		if ok, err := doublestar.PathMatch(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
