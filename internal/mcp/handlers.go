package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/nesc-lab/paperpage/internal/paper"
)

// handleGetPaper returns a markdown summary of the record.
func (s *Server) handleGetPaper(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatPaper(s.paper)), nil
}

// handleGetCitation returns the citation text unchanged.
func (s *Server) handleGetCitation(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(s.paper.Citation), nil
}

// handleListScenarios returns every scenario, or the one named by title.
func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := strings.TrimSpace(request.GetString("title", ""))

	if len(s.paper.Scenarios) == 0 {
		return mcp.NewToolResultText("This paper lists no scenarios."), nil
	}

	var b strings.Builder
	for _, sc := range s.paper.Scenarios {
		if title != "" && !strings.EqualFold(sc.Title, title) {
			continue
		}
		writeScenario(&b, sc)
	}
	if b.Len() == 0 {
		names := make([]string, len(s.paper.Scenarios))
		for i, sc := range s.paper.Scenarios {
			names[i] = sc.Title
		}
		return mcp.NewToolResultError(fmt.Sprintf(
			"No scenario titled %q. Available: %s", title, strings.Join(names, "; "),
		)), nil
	}
	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}

func formatPaper(p *paper.Paper) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Venue != "" {
		fmt.Fprintf(&b, "*%s*\n\n", p.Venue)
	}

	names := make([]string, len(p.Authors))
	for i, a := range p.Authors {
		names[i] = a.Name
	}
	fmt.Fprintf(&b, "**Authors:** %s\n\n", strings.Join(names, ", "))
	for _, a := range p.Affiliations {
		fmt.Fprintf(&b, "- %s\n", a.Name)
	}
	if len(p.Affiliations) > 0 {
		b.WriteString("\n")
	}

	if buttons := p.Links.Buttons(); len(buttons) > 0 {
		b.WriteString("## Links\n\n")
		for _, l := range buttons {
			fmt.Fprintf(&b, "- [%s](%s)\n", l.Label, l.URL)
		}
		b.WriteString("\n")
	}

	if p.Abstract != "" {
		fmt.Fprintf(&b, "## Abstract\n\n%s\n\n", p.Abstract)
	}

	if !p.Method.IsZero() {
		title := p.Method.Title
		if title == "" {
			title = "Methodology"
		}
		fmt.Fprintf(&b, "## %s\n\n", title)
		if p.Method.Summary != "" {
			fmt.Fprintf(&b, "%s\n\n", p.Method.Summary)
		}
		for _, h := range p.Method.Highlights {
			fmt.Fprintf(&b, "- **%s:** %s\n", h.Title, h.Text)
		}
		if len(p.Method.Highlights) > 0 {
			b.WriteString("\n")
		}
	}

	if len(p.Scenarios) > 0 {
		b.WriteString("## Scenarios\n\n")
		for _, sc := range p.Scenarios {
			fmt.Fprintf(&b, "- %s (%d metrics)\n", sc.Title, len(sc.Metrics))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func writeScenario(b *strings.Builder, sc paper.Scenario) {
	fmt.Fprintf(b, "## %s\n\n", sc.Title)
	if sc.Description != "" {
		fmt.Fprintf(b, "%s\n\n", sc.Description)
	}
	if len(sc.Metrics) == 0 {
		return
	}
	header := [2]string{"Metric", "Value"}
	if len(sc.Columns) == 2 {
		header = [2]string{sc.Columns[0], sc.Columns[1]}
	}
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", cell(header[0]), cell(header[1]))
	for _, m := range sc.Metrics {
		value := cell(m.Value)
		if m.Emphasis {
			value = "**" + value + "**"
		}
		fmt.Fprintf(b, "| %s | %s |\n", cell(strings.TrimSuffix(m.Key, ":")), value)
	}
	b.WriteString("\n")
}

// cell escapes a value for a markdown table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
