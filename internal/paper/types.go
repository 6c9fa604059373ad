package paper

// MediaKind identifies how a media element is embedded in the page.
type MediaKind string

const (
	MediaVideo MediaKind = "video"
	MediaImage MediaKind = "image"
)

// Paper is the content record for one project page. It is read once at
// startup and treated as immutable afterwards; holders that need to keep it
// take a Clone.
type Paper struct {
	Title          string        `yaml:"title" koanf:"title" json:"title,omitempty"`
	Venue          string        `yaml:"venue" koanf:"venue" json:"venue,omitempty"`
	Lab            Lab           `yaml:"lab" koanf:"lab" json:"lab,omitempty"`
	Authors        []Author      `yaml:"authors" koanf:"authors" json:"authors,omitempty"`
	Affiliations   []Affiliation `yaml:"affiliations" koanf:"affiliations" json:"affiliations,omitempty"`
	Abstract       string        `yaml:"abstract" koanf:"abstract" json:"abstract,omitempty"`
	Citation       string        `yaml:"citation" koanf:"citation" json:"citation,omitempty"`
	Links          Links         `yaml:"links" koanf:"links" json:"links,omitempty"`
	Video          Video         `yaml:"video" koanf:"video" json:"video,omitempty"`
	Method         Method        `yaml:"method" koanf:"method" json:"method,omitempty"`
	ScenariosTitle string        `yaml:"scenarios_title" koanf:"scenarios_title" json:"scenarios_title,omitempty"`
	ScenariosIntro string        `yaml:"scenarios_intro" koanf:"scenarios_intro" json:"scenarios_intro,omitempty"`
	Scenarios      []Scenario    `yaml:"scenarios" koanf:"scenarios" json:"scenarios,omitempty"`
	Footer         Footer        `yaml:"footer" koanf:"footer" json:"footer,omitempty"`
}

// Lab is the short brand shown in the navigation bar.
type Lab struct {
	Badge string `yaml:"badge" koanf:"badge" json:"badge,omitempty"`
	Name  string `yaml:"name" koanf:"name" json:"name,omitempty"`
}

// Author is one entry of the author line, linked to a profile page.
type Author struct {
	Name string `yaml:"name" koanf:"name" json:"name,omitempty"`
	URL  string `yaml:"url,omitempty" koanf:"url" json:"url,omitempty"`
}

type Affiliation struct {
	Name string `yaml:"name" koanf:"name" json:"name,omitempty"`
}

// Link is an external resource shown as a header button.
type Link struct {
	URL   string `yaml:"url" koanf:"url" json:"url,omitempty"`
	Label string `yaml:"label,omitempty" koanf:"label" json:"label,omitempty"`
	Icon  string `yaml:"icon,omitempty" koanf:"icon" json:"icon,omitempty"`
}

// Links holds the fixed set of header buttons.
type Links struct {
	Paper          Link `yaml:"paper" koanf:"paper" json:"paper,omitempty"`
	Preprint       Link `yaml:"preprint" koanf:"preprint" json:"preprint,omitempty"`
	Code           Link `yaml:"code" koanf:"code" json:"code,omitempty"`
	Video          Link `yaml:"video" koanf:"video" json:"video,omitempty"`
	SecondaryVideo Link `yaml:"secondary_video" koanf:"secondary_video" json:"secondary_video,omitempty"`
}

// Video is the primary embedded player.
type Video struct {
	EmbedURL string `yaml:"embed_url" koanf:"embed_url" json:"embed_url,omitempty"`
	Title    string `yaml:"title" koanf:"title" json:"title,omitempty"`
}

// Method describes the methodology section.
type Method struct {
	Title      string      `yaml:"title" koanf:"title" json:"title,omitempty"`
	Heading    string      `yaml:"heading" koanf:"heading" json:"heading,omitempty"`
	Summary    string      `yaml:"summary" koanf:"summary" json:"summary,omitempty"`
	Highlights []Highlight `yaml:"highlights" koanf:"highlights" json:"highlights,omitempty"`
	Figure     Media       `yaml:"figure" koanf:"figure" json:"figure,omitempty"`
}

// IsZero reports whether no methodology content was provided.
func (m Method) IsZero() bool {
	return m.Heading == "" && m.Summary == "" && len(m.Highlights) == 0 && m.Figure.Src == ""
}

// Highlight is one bullet of the methodology list.
type Highlight struct {
	Icon  string `yaml:"icon" koanf:"icon" json:"icon,omitempty"`
	Title string `yaml:"title" koanf:"title" json:"title,omitempty"`
	Text  string `yaml:"text" koanf:"text" json:"text,omitempty"`
}

// Scenario is one experimental condition compared against its metrics.
type Scenario struct {
	Title       string   `yaml:"title" koanf:"title" json:"title,omitempty"`
	Icon        string   `yaml:"icon" koanf:"icon" json:"icon,omitempty"`
	Accent      string   `yaml:"accent" koanf:"accent" json:"accent,omitempty"`
	Description string   `yaml:"description" koanf:"description" json:"description,omitempty"`
	Columns     []string `yaml:"columns,omitempty" koanf:"columns" json:"columns,omitempty"`
	Metrics     []Metric `yaml:"metrics" koanf:"metrics" json:"metrics,omitempty"`
	Media       Media    `yaml:"media" koanf:"media" json:"media,omitempty"`
}

// Metric is a single key/value row of a scenario table. Emphasis marks the
// headline result and Muted a baseline.
type Metric struct {
	Key      string `yaml:"key" koanf:"key" json:"key,omitempty"`
	Value    string `yaml:"value" koanf:"value" json:"value,omitempty"`
	Emphasis bool   `yaml:"emphasis,omitempty" koanf:"emphasis" json:"emphasis,omitempty"`
	Muted    bool   `yaml:"muted,omitempty" koanf:"muted" json:"muted,omitempty"`
}

// Media references an external image or video by URL. Sources are opaque.
type Media struct {
	Kind MediaKind `yaml:"kind" koanf:"kind" json:"kind,omitempty"`
	Src  string    `yaml:"src" koanf:"src" json:"src,omitempty"`
	Alt  string    `yaml:"alt,omitempty" koanf:"alt" json:"alt,omitempty"`
	Type string    `yaml:"type,omitempty" koanf:"type" json:"type,omitempty"`
}

type Footer struct {
	Department  string `yaml:"department" koanf:"department" json:"department,omitempty"`
	Institution string `yaml:"institution" koanf:"institution" json:"institution,omitempty"`
	Year        int    `yaml:"year" koanf:"year" json:"year,omitempty"`
	Contact     string `yaml:"contact,omitempty" koanf:"contact" json:"contact,omitempty"`
}

// Button is a resolved header link ready for display.
type Button struct {
	Label string
	URL   string
	Icon  string
}

var buttonDefaults = []struct {
	label string
	icon  string
}{
	{"Paper", "pdf.svg"},
	{"ArXiv", "arxiv.svg"},
	{"Code", "github.svg"},
	{"Video", "youtube.svg"},
	{"Bilibili", "bilibili.svg"},
}

// Buttons returns the configured links in display order, skipping empty
// ones and filling in default labels and icons.
func (l Links) Buttons() []Button {
	links := []Link{l.Paper, l.Preprint, l.Code, l.Video, l.SecondaryVideo}
	var out []Button
	for i, link := range links {
		if link.URL == "" {
			continue
		}
		b := Button{Label: link.Label, URL: link.URL, Icon: link.Icon}
		if b.Label == "" {
			b.Label = buttonDefaults[i].label
		}
		if b.Icon == "" {
			b.Icon = buttonDefaults[i].icon
		}
		out = append(out, b)
	}
	return out
}

// FirstAuthor returns the name of the first listed author, or "".
func (p *Paper) FirstAuthor() string {
	if len(p.Authors) == 0 {
		return ""
	}
	return p.Authors[0].Name
}

// Clone returns a deep copy of the record.
func (p *Paper) Clone() *Paper {
	c := *p
	c.Authors = append([]Author(nil), p.Authors...)
	c.Affiliations = append([]Affiliation(nil), p.Affiliations...)
	c.Method.Highlights = append([]Highlight(nil), p.Method.Highlights...)
	c.Scenarios = make([]Scenario, len(p.Scenarios))
	for i, s := range p.Scenarios {
		s.Columns = append([]string(nil), s.Columns...)
		s.Metrics = append([]Metric(nil), s.Metrics...)
		c.Scenarios[i] = s
	}
	if p.Scenarios == nil {
		c.Scenarios = nil
	}
	return &c
}
