package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/nesc-lab/paperpage/internal/clipboard"
	"github.com/nesc-lab/paperpage/internal/paper"
)

// Options control page-level behaviour that is not part of the paper
// content.
type Options struct {
	// CopyReset is how long the copy button shows its confirmation.
	// Defaults to clipboard.DefaultWindow.
	CopyReset time.Duration
	// LiveReload is the websocket path the page connects to for reload
	// notifications. Empty disables it.
	LiveReload string
	// AssetBase prefixes relative media and icon paths.
	AssetBase string
}

// Renderer turns a paper record into the project page. A Renderer holds no
// per-render state and is safe for concurrent use.
type Renderer struct {
	opts Options
	md   goldmark.Markdown
	tmpl *template.Template
}

// New parses the page template and prepares the markdown converter.
func New(opts Options) (*Renderer, error) {
	if opts.CopyReset <= 0 {
		opts.CopyReset = clipboard.DefaultWindow
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	r := &Renderer{opts: opts, md: md}

	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"icon":  icon,
		"asset": r.asset,
	}).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// pageView is the data passed to the page template.
type pageView struct {
	Paper          *paper.Paper
	Nav            []Anchor
	Buttons        []paper.Button
	ShowVideo      bool
	ShowMethod     bool
	ShowScenarios  bool
	Abstract       template.HTML
	MethodSummary  template.HTML
	ScenariosIntro template.HTML
	Scenarios      []scenarioView
	CitationHTML   template.HTML
	CitationJSON   template.JS
	FirstAuthor    string
	CopyResetMS    int64
	LiveReload     string
}

type scenarioView struct {
	ID          string
	Index       int
	Reverse     bool
	Accent      string
	Scenario    paper.Scenario
	Columns     []string
	Description template.HTML
}

// Render writes the page for p to w. The output depends only on p and the
// renderer options.
func (r *Renderer) Render(w io.Writer, p *paper.Paper) error {
	view, err := r.buildView(p)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	_, err = buf.WriteTo(w)
	return err
}

// RenderString is Render into a string.
func (r *Renderer) RenderString(p *paper.Paper) (string, error) {
	var b strings.Builder
	if err := r.Render(&b, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

func (r *Renderer) buildView(p *paper.Paper) (*pageView, error) {
	v := &pageView{
		Paper:         p,
		Nav:           Anchors(p),
		Buttons:       p.Links.Buttons(),
		ShowVideo:     sectionEnabled(AnchorVideo, p),
		ShowMethod:    sectionEnabled(AnchorMethod, p),
		ShowScenarios: sectionEnabled(AnchorScenarios, p),
		FirstAuthor:   p.FirstAuthor(),
		CopyResetMS:   r.opts.CopyReset.Milliseconds(),
		LiveReload:    r.opts.LiveReload,
	}

	var err error
	if v.Abstract, err = r.markdown(p.Abstract); err != nil {
		return nil, fmt.Errorf("abstract: %w", err)
	}
	if v.MethodSummary, err = r.markdown(p.Method.Summary); err != nil {
		return nil, fmt.Errorf("method summary: %w", err)
	}
	if v.ScenariosIntro, err = r.markdown(p.ScenariosIntro); err != nil {
		return nil, fmt.Errorf("scenarios intro: %w", err)
	}

	for i, s := range p.Scenarios {
		desc, err := r.markdown(s.Description)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", s.Title, err)
		}
		sv := scenarioView{
			ID:          fmt.Sprintf("scenario-%d", i+1),
			Index:       i + 1,
			Reverse:     i%2 == 1,
			Accent:      accentClass(s.Accent),
			Scenario:    s,
			Description: desc,
		}
		if len(s.Columns) == 2 {
			sv.Columns = s.Columns
		}
		v.Scenarios = append(v.Scenarios, sv)
	}

	if v.CitationHTML, err = r.citationHTML(p.Citation); err != nil {
		return nil, fmt.Errorf("citation: %w", err)
	}
	payload, err := json.Marshal(p.Citation)
	if err != nil {
		return nil, fmt.Errorf("encoding citation: %w", err)
	}
	v.CitationJSON = template.JS(payload)

	return v, nil
}

// markdown converts a prose field. Content files are authored by the page
// owner, so raw HTML is passed through.
func (r *Renderer) markdown(src string) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// citationHTML renders the BibTeX entry as a highlighted code block.
func (r *Renderer) citationHTML(citation string) (template.HTML, error) {
	fence := codeFence(citation)
	return r.markdown(fence + "bibtex\n" + citation + "\n" + fence + "\n")
}

var backtickRun = regexp.MustCompile("`+")

// codeFence returns a backtick fence longer than any run inside s.
func codeFence(s string) string {
	n := 3
	for _, run := range backtickRun.FindAllString(s, -1) {
		if len(run) >= n {
			n = len(run) + 1
		}
	}
	return strings.Repeat("`", n)
}

var accentPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func accentClass(accent string) string {
	accent = strings.ToLower(strings.TrimSpace(accent))
	if !accentPattern.MatchString(accent) {
		return "accent-default"
	}
	return "accent-" + accent
}

// asset resolves a media or icon path against the asset base. Absolute
// URLs, root paths and fragment placeholders are left alone.
func (r *Renderer) asset(src string) string {
	if src == "" || r.opts.AssetBase == "" {
		return src
	}
	if strings.Contains(src, "://") || strings.HasPrefix(src, "/") || strings.HasPrefix(src, "#") || strings.HasPrefix(src, "data:") {
		return src
	}
	return strings.TrimSuffix(r.opts.AssetBase, "/") + "/" + strings.TrimPrefix(src, "./")
}
