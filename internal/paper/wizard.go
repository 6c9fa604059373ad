package paper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/manifoldco/promptui"
)

// RunWizard asks for the essentials of a new project page and saves a
// content file at path. Sections it does not ask about are left empty and
// are simply omitted from the rendered page.
func RunWizard(path string) (*Paper, error) {
	fmt.Println("Let's set up your project page.")
	fmt.Println()

	ask := func(label, def string) (string, error) {
		p := promptui.Prompt{Label: label, Default: def}
		return p.Run()
	}

	title, err := ask("Paper title", "")
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}
	venue, err := ask("Venue", "")
	if err != nil {
		return nil, fmt.Errorf("venue: %w", err)
	}
	authorStr, err := ask("Authors (comma-separated)", "")
	if err != nil {
		return nil, fmt.Errorf("authors: %w", err)
	}
	affiliation, err := ask("Affiliation", "")
	if err != nil {
		return nil, fmt.Errorf("affiliation: %w", err)
	}
	code, err := ask("Source repository URL", "")
	if err != nil {
		return nil, fmt.Errorf("code url: %w", err)
	}
	embed, err := ask("Video embed URL", "")
	if err != nil {
		return nil, fmt.Errorf("video url: %w", err)
	}
	yearStr, err := ask("Year", strconv.Itoa(time.Now().Year()))
	if err != nil {
		return nil, fmt.Errorf("year: %w", err)
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return nil, fmt.Errorf("year %q is not a number", yearStr)
	}

	p := &Paper{
		Title: title,
		Venue: venue,
		Links: Links{Code: Link{URL: code}},
		Video: Video{EmbedURL: embed, Title: title},
		Footer: Footer{
			Institution: affiliation,
			Year:        year,
		},
	}
	for _, name := range splitAndTrim(authorStr) {
		p.Authors = append(p.Authors, Author{Name: name})
	}
	if affiliation != "" {
		p.Affiliations = []Affiliation{{Name: affiliation}}
	}
	p.Citation = DraftCitation(p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := p.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nPaper content saved to %s\n", path)
	return p, nil
}

// DraftCitation builds a minimal BibTeX entry for a record that has none.
// The key follows the lastname+year+firstword convention.
func DraftCitation(p *Paper) string {
	var names []string
	for _, a := range p.Authors {
		names = append(names, bibName(a.Name))
	}

	key := "paper"
	if len(p.Authors) > 0 {
		key = strings.ToLower(lastName(p.Authors[0].Name))
	}
	if p.Footer.Year > 0 {
		key += strconv.Itoa(p.Footer.Year)
	}
	if w := firstWord(p.Title); w != "" {
		key += strings.ToLower(w)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "@article{%s,\n", key)
	fmt.Fprintf(&b, "  title={%s},\n", p.Title)
	fmt.Fprintf(&b, "  author={%s},\n", strings.Join(names, " and "))
	if p.Venue != "" {
		fmt.Fprintf(&b, "  journal={%s},\n", p.Venue)
	}
	if p.Footer.Year > 0 {
		fmt.Fprintf(&b, "  year={%d}\n", p.Footer.Year)
	}
	b.WriteString("}")
	return b.String()
}

// bibName turns "Dongcheng Cao" into "Cao, Dongcheng".
func bibName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}
	return parts[len(parts)-1] + ", " + strings.Join(parts[:len(parts)-1], " ")
}

func lastName(name string) string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

func firstWord(title string) string {
	for _, f := range strings.Fields(title) {
		w := strings.TrimFunc(f, func(r rune) bool { return !unicode.IsLetter(r) && !unicode.IsDigit(r) })
		if w != "" {
			return w
		}
	}
	return ""
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
