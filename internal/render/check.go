package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Report summarizes the structure of a rendered page.
type Report struct {
	Nav       []string
	Scenarios []ScenarioReport
	Citation  string
}

// ScenarioReport lists the metric rows of one scenario panel in page order.
type ScenarioReport struct {
	ID      string
	Title   string
	Metrics [][2]string
}

// CheckError lists the structural problems found in a page.
type CheckError struct {
	Problems []string
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("page check failed: %s", strings.Join(e.Problems, "; "))
}

// Check parses a rendered page and verifies that every navigation entry
// targets an id present exactly once, that no section lacks a navigation
// entry, and that the embedded citation decodes. The report is returned
// even when problems are found.
func Check(r io.Reader) (*Report, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	var problems []string
	report := &Report{}

	ids := make(map[string]int)
	doc.Find("[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		ids[id]++
	})

	navSeen := make(map[string]bool)
	doc.Find("nav.topnav .nav-links a").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if !strings.HasPrefix(href, "#") {
			problems = append(problems, fmt.Sprintf("nav entry %q is not an in-page anchor", href))
			return
		}
		target := strings.TrimPrefix(href, "#")
		report.Nav = append(report.Nav, target)
		if navSeen[target] {
			problems = append(problems, fmt.Sprintf("nav entry #%s appears more than once", target))
		}
		navSeen[target] = true
		if n := ids[target]; n != 1 {
			problems = append(problems, fmt.Sprintf("anchor #%s found %d times, want 1", target, n))
		}
	})

	doc.Find("section.section[id], div.teaser[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		if !navSeen[id] {
			problems = append(problems, fmt.Sprintf("section #%s has no nav entry", id))
		}
	})

	doc.Find("article.scenario").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		sr := ScenarioReport{
			ID:    id,
			Title: strings.TrimSpace(s.Find(".scenario-heading h3").Text()),
		}
		s.Find("li.metric").Each(func(_ int, m *goquery.Selection) {
			sr.Metrics = append(sr.Metrics, [2]string{
				m.Find(".metric-key").Text(),
				m.Find(".metric-value").Text(),
			})
		})
		report.Scenarios = append(report.Scenarios, sr)
	})

	data := doc.Find("script#citation-data")
	if data.Length() != 1 {
		problems = append(problems, fmt.Sprintf("citation data found %d times, want 1", data.Length()))
	} else if err := json.Unmarshal([]byte(data.Text()), &report.Citation); err != nil {
		problems = append(problems, fmt.Sprintf("citation data does not decode: %v", err))
	}

	if len(problems) > 0 {
		return report, &CheckError{Problems: problems}
	}
	return report, nil
}
