package render

import "github.com/nesc-lab/paperpage/internal/paper"

// Anchor is one in-page navigation target.
type Anchor struct {
	ID    string
	Label string
}

// Section ids, in navigation order.
const (
	AnchorAbstract  = "abstract"
	AnchorVideo     = "video"
	AnchorMethod    = "method"
	AnchorScenarios = "scenarios"
	AnchorCitation  = "bibtex"
)

var allAnchors = []Anchor{
	{AnchorAbstract, "Abstract"},
	{AnchorVideo, "Video"},
	{AnchorMethod, "Method"},
	{AnchorScenarios, "Scenarios"},
	{AnchorCitation, "BibTeX"},
}

// Anchors returns the navigation entries for p. A section is only listed
// when it is rendered, and the template renders a section only when it is
// listed here.
func Anchors(p *paper.Paper) []Anchor {
	var out []Anchor
	for _, a := range allAnchors {
		if sectionEnabled(a.ID, p) {
			out = append(out, a)
		}
	}
	return out
}

func sectionEnabled(id string, p *paper.Paper) bool {
	switch id {
	case AnchorVideo:
		return p.Video.EmbedURL != ""
	case AnchorMethod:
		return !p.Method.IsZero()
	case AnchorScenarios:
		return len(p.Scenarios) > 0
	default:
		return true
	}
}
