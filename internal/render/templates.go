package render

// pageTemplate is the html/template for the project page. Region order:
// nav, header, video, abstract, method, scenarios, citation, footer.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Paper.Title}}</title>
  {{- if .Paper.Venue}}
  <meta name="description" content="{{.Paper.Title}}. {{.Paper.Venue}}">
  {{- end}}
  <link rel="stylesheet" href="style.css">
</head>
<body{{if .LiveReload}} data-livereload="{{.LiveReload}}"{{end}}>
  <nav class="topnav" id="topnav">
    <div class="topnav-inner">
      <div class="brand">
        {{- if .Paper.Lab.Badge}}<span class="brand-badge">{{.Paper.Lab.Badge}}</span>{{end}}
        {{- if .Paper.Lab.Name}}<span class="brand-name">{{.Paper.Lab.Name}}</span>{{end}}
      </div>
      <div class="nav-links">
        {{- range .Nav}}
        <a href="#{{.ID}}">{{.Label}}</a>
        {{- end}}
      </div>
    </div>
  </nav>

  <div class="page">
    <header class="hero">
      <h1 class="title">{{.Paper.Title}}</h1>
      {{- if .Paper.Venue}}
      <p class="venue">{{.Paper.Venue}}</p>
      {{- end}}
      <div class="authors">
        <div class="author-list">
          {{- range .Paper.Authors}}
          <span class="author">{{if .URL}}<a href="{{.URL}}" target="_blank" rel="noreferrer">{{.Name}}</a>{{else}}{{.Name}}{{end}}</span>
          {{- end}}
        </div>
        <div class="affiliations">
          {{- range .Paper.Affiliations}}
          <div class="affiliation">{{.Name}}</div>
          {{- end}}
        </div>
      </div>
      {{- if .Buttons}}
      <div class="buttons">
        {{- range .Buttons}}
        <a class="button" href="{{.URL}}" target="_blank" rel="noreferrer">
          {{- if .Icon}}<img src="{{asset .Icon}}" alt="{{.Label}}" class="button-icon">{{end}}<span>{{.Label}}</span></a>
        {{- end}}
      </div>
      {{- end}}
    </header>

    {{- if .ShowVideo}}
    <div class="teaser" id="video">
      <iframe class="teaser-frame" src="{{.Paper.Video.EmbedURL}}" title="{{.Paper.Video.Title}}" allow="accelerometer; autoplay; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen></iframe>
    </div>
    {{- end}}

    <section class="section" id="abstract">
      <h2 class="section-title">Abstract</h2>
      <div class="abstract">{{.Abstract}}</div>
    </section>

    {{- if .ShowMethod}}
    <section class="section" id="method">
      <h2 class="section-title">{{if .Paper.Method.Title}}{{.Paper.Method.Title}}{{else}}Methodology{{end}}</h2>
      <div class="method">
        <div class="method-text">
          {{- if .Paper.Method.Heading}}
          <h3>{{.Paper.Method.Heading}}</h3>
          {{- end}}
          {{.MethodSummary}}
          {{- if .Paper.Method.Highlights}}
          <ul class="highlights">
            {{- range .Paper.Method.Highlights}}
            <li class="highlight">{{icon .Icon 18}}<span><strong>{{.Title}}:</strong><br>{{.Text}}</span></li>
            {{- end}}
          </ul>
          {{- end}}
        </div>
        {{- with .Paper.Method.Figure}}{{if .Src}}
        <div class="method-figure">
          {{- if eq .Kind "video"}}
          <video autoplay loop muted playsinline><source src="{{asset .Src}}"{{if .Type}} type="{{.Type}}"{{end}}>Your browser does not support the video tag.</video>
          {{- else}}
          <img src="{{asset .Src}}" alt="{{.Alt}}">
          {{- end}}
        </div>
        {{- end}}{{end}}
      </div>
    </section>
    {{- end}}

    {{- if .ShowScenarios}}
    <section class="section" id="scenarios">
      <h2 class="section-title">{{if .Paper.ScenariosTitle}}{{.Paper.ScenariosTitle}}{{else}}Scenarios{{end}}</h2>
      {{- if .ScenariosIntro}}
      <div class="scenarios-intro">{{.ScenariosIntro}}</div>
      {{- end}}
      <div class="scenarios">
        {{- range .Scenarios}}
        <article class="scenario {{.Accent}}{{if .Reverse}} reverse{{end}}" id="{{.ID}}" data-scenario="{{.Index}}">
          <div class="scenario-text">
            <div class="scenario-heading">
              <span class="scenario-icon">{{icon .Scenario.Icon 24}}</span>
              <h3>{{.Scenario.Title}}</h3>
            </div>
            <div class="scenario-description">{{.Description}}</div>
            {{- if or .Columns .Scenario.Metrics}}
            <ul class="metrics">
              {{- with .Columns}}
              <li class="metric-header"><span>{{index . 0}}</span><span>{{index . 1}}</span></li>
              {{- end}}
              {{- range .Scenario.Metrics}}
              <li class="metric{{if .Emphasis}} emphasis{{end}}{{if .Muted}} muted{{end}}"><span class="metric-key">{{.Key}}</span><span class="metric-value">{{.Value}}</span></li>
              {{- end}}
            </ul>
            {{- end}}
          </div>
          {{- with .Scenario.Media}}{{if .Src}}
          <div class="scenario-media">
            {{- if eq .Kind "image"}}
            <img src="{{asset .Src}}" alt="{{.Alt}}">
            {{- else}}
            <video autoplay loop muted playsinline><source src="{{asset .Src}}"{{if .Type}} type="{{.Type}}"{{end}}>Your browser does not support the video tag.</video>
            {{- end}}
          </div>
          {{- end}}{{end}}
        </article>
        {{- end}}
      </div>
    </section>
    {{- end}}

    <section class="section" id="bibtex">
      <h2 class="section-title">Citation</h2>
      <div class="citation">
        <button type="button" class="copy-button" id="copy-citation" data-state="idle" data-reset-ms="{{.CopyResetMS}}" title="Copy BibTeX" aria-label="Copy BibTeX">
          <span class="copy-idle">{{icon "copy" 14}}</span><span class="copy-done">{{icon "check" 14}}</span>
        </button>
        <div class="citation-body">{{.CitationHTML}}</div>
        <p class="copy-notice" id="copy-notice" role="status" hidden></p>
        <script type="application/json" id="citation-data">{{.CitationJSON}}</script>
      </div>
    </section>

    <footer class="footer">
      {{- with .Paper.Footer}}
      {{- if or .Department .Institution}}
      <div class="footer-org">
        {{- if .Department}}<span class="footer-dept">{{.Department}}</span>{{end}}
        {{- if and .Department .Institution}} | {{end}}
        {{- .Institution}}
      </div>
      {{- end}}
      {{- end}}
      <p class="footer-copy">&copy; {{if .Paper.Footer.Year}}{{.Paper.Footer.Year}} {{end}}{{.FirstAuthor}} et al.</p>
      {{- with .Paper.Footer.Contact}}
      <p class="footer-contact">Contact: {{.}}</p>
      {{- end}}
    </footer>
  </div>
  <script src="script.js"></script>
</body>
</html>
`
