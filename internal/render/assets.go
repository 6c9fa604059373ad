package render

// Static files written next to index.html.
const (
	StylesheetName = "style.css"
	ScriptName     = "script.js"
)

// Stylesheet returns the page CSS.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the page JavaScript.
func Script() []byte { return []byte(jsContent) }

// jsContent drives the copy button and optional live reload.
//
// The copy button mirrors clipboard.Indicator: the copied state is entered
// only after the clipboard write resolves, and each copy replaces the
// pending reset so the confirmation lasts a full window from the latest
// click. A rejected write keeps the idle state and shows an inline notice.
const jsContent = `(function () {
  'use strict';

  var button = document.getElementById('copy-citation');
  var notice = document.getElementById('copy-notice');
  var source = document.getElementById('citation-data');
  var resetTimer = null;

  function setState(state) {
    if (button) button.setAttribute('data-state', state);
  }

  function showNotice(message) {
    if (!notice) return;
    notice.textContent = message;
    notice.hidden = false;
  }

  function hideNotice() {
    if (!notice) return;
    notice.hidden = true;
    notice.textContent = '';
  }

  function citationText() {
    return JSON.parse(source.textContent);
  }

  function writeClipboard(text) {
    if (navigator.clipboard && window.isSecureContext) {
      return navigator.clipboard.writeText(text);
    }
    return Promise.reject(new Error('clipboard unavailable'));
  }

  if (button && source) {
    var windowMs = parseInt(button.getAttribute('data-reset-ms'), 10) || 2000;
    button.addEventListener('click', function () {
      var text;
      try {
        text = citationText();
      } catch (err) {
        showNotice('Citation data is unreadable.');
        return;
      }
      writeClipboard(text).then(function () {
        hideNotice();
        setState('copied');
        clearTimeout(resetTimer);
        resetTimer = setTimeout(function () {
          resetTimer = null;
          setState('idle');
        }, windowMs);
      }, function () {
        showNotice('Copy failed. Select the citation and copy it manually.');
      });
    });
  }

  var reloadPath = document.body.getAttribute('data-livereload');
  if (reloadPath && window.WebSocket) {
    var connect = function () {
      var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
      var ws = new WebSocket(scheme + location.host + reloadPath);
      ws.onmessage = function (ev) {
        try {
          var msg = JSON.parse(ev.data);
          if (msg.type === 'reload') location.reload();
        } catch (err) {}
      };
      ws.onclose = function () { setTimeout(connect, 1000); };
    };
    connect();
  }
})();
`

// cssContent is the full CSS for the project page.
const cssContent = `:root {
  --primary: #003f88;
  --primary-hover: #002a5c;
  --text: #0f172a;
  --text-secondary: #334155;
  --text-muted: #64748b;
  --border: #e2e8f0;
  --panel: #f8fafc;
  --max-width: 80rem;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
  --shadow-lg: 0 10px 25px rgba(0,0,0,0.12);
}

* { box-sizing: border-box; }

html { scroll-behavior: smooth; }

body {
  margin: 0;
  background: #fff;
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  line-height: 1.6;
}

a { color: var(--primary); text-decoration: none; }
a:hover { text-decoration: underline; }

/* ============ Navigation ============ */
.topnav {
  position: fixed;
  top: 0;
  width: 100%;
  z-index: 50;
  background: rgba(255,255,255,0.95);
  backdrop-filter: blur(4px);
  border-bottom: 1px solid var(--border);
  box-shadow: var(--shadow);
}
.topnav-inner {
  max-width: var(--max-width);
  margin: 0 auto;
  padding: 0 1rem;
  height: 4rem;
  display: flex;
  align-items: center;
  justify-content: space-between;
}
.brand { display: flex; align-items: center; gap: 0.5rem; font-weight: 700; font-size: 1.25rem; color: #1e293b; }
.brand-badge { background: var(--primary); color: #fff; padding: 0.1rem 0.5rem; border-radius: 4px; font-family: Georgia, serif; }
.nav-links { display: flex; gap: 1.5rem; font-size: 0.875rem; font-weight: 500; }
.nav-links a { color: #475569; }
.nav-links a:hover { color: var(--primary); text-decoration: none; }
@media (max-width: 768px) { .nav-links { display: none; } }

/* ============ Layout ============ */
.page { max-width: var(--max-width); margin: 0 auto; padding: 7rem 1.5rem 4rem; }
.section { margin-bottom: 5rem; scroll-margin-top: 6rem; }
.section-title {
  font-size: 1.5rem;
  font-weight: 700;
  text-transform: uppercase;
  letter-spacing: 0.05em;
  color: #1e293b;
  border-bottom: 1px solid var(--border);
  padding-bottom: 0.5rem;
  margin: 0 0 2rem;
}

/* ============ Header ============ */
.hero { text-align: center; margin-bottom: 3rem; }
.title { font-size: clamp(1.875rem, 4vw, 3rem); line-height: 1.2; max-width: 72rem; margin: 0 auto 1.5rem; }
.venue { font-size: 1.25rem; color: var(--primary); font-family: Georgia, serif; margin: 0 0 2rem; }
.author-list { display: flex; flex-wrap: wrap; justify-content: center; gap: 0.5rem 2.5rem; font-size: 1.125rem; font-weight: 500; margin-bottom: 1rem; }
.affiliations { color: #475569; font-size: 0.875rem; font-style: italic; }
.buttons { display: flex; flex-wrap: wrap; justify-content: center; gap: 1rem; margin-top: 2rem; }
.button {
  display: inline-flex;
  align-items: center;
  gap: 0.5rem;
  padding: 0.625rem 1.25rem;
  border-radius: 9999px;
  background: var(--primary);
  color: #fff;
  font-size: 0.875rem;
  font-weight: 700;
  box-shadow: var(--shadow);
  transition: transform 0.15s, background 0.15s;
}
.button:hover { background: var(--primary-hover); transform: translateY(-2px); text-decoration: none; }
.button-icon { width: 1.25rem; height: 1.25rem; }

/* ============ Video ============ */
.teaser { max-width: 56rem; margin: 0 auto 4rem; scroll-margin-top: 6rem; }
.teaser-frame { width: 100%; aspect-ratio: 16 / 9; border: 1px solid var(--border); border-radius: 0.75rem; box-shadow: var(--shadow-lg); }

/* ============ Abstract ============ */
.abstract {
  max-width: 64rem;
  margin: 0 auto;
  background: var(--panel);
  padding: 2rem;
  border-radius: 0.75rem;
  border-left: 4px solid var(--primary);
  font-family: Georgia, serif;
  font-size: 1.0625rem;
  text-align: justify;
}
.abstract p { margin: 0; }

/* ============ Method ============ */
.method { display: grid; grid-template-columns: 1fr 3fr; gap: 3rem; align-items: center; max-width: 72rem; margin: 0 auto; }
.method-text h3 { font-size: 1.25rem; margin: 0 0 1rem; }
.method-text p { text-align: justify; color: var(--text-secondary); }
.highlights { list-style: none; padding: 0; margin: 0 0 1.5rem; }
.highlight { display: flex; align-items: flex-start; gap: 0.75rem; margin-bottom: 0.75rem; color: var(--text-secondary); }
.highlight .icon { color: var(--primary); flex-shrink: 0; margin-top: 0.25rem; }
.method-figure { background: #fff; border: 1px solid var(--border); border-radius: 0.75rem; padding: 0.5rem; box-shadow: var(--shadow); }
.method-figure img, .method-figure video { width: 100%; height: auto; display: block; }
@media (max-width: 768px) { .method { grid-template-columns: 1fr; } }

/* ============ Scenarios ============ */
.scenarios-intro { color: #475569; max-width: 64rem; margin-bottom: 2.5rem; text-align: justify; }
.scenarios { display: flex; flex-direction: column; gap: 4rem; }
.scenario { display: grid; grid-template-columns: 2fr 3fr; gap: 2rem; align-items: center; }
.scenario.reverse .scenario-text { order: 2; }
.scenario.reverse .scenario-media { order: 1; }
.scenario-heading { display: flex; align-items: center; gap: 0.75rem; margin-bottom: 1rem; }
.scenario-heading h3 { font-size: 1.25rem; margin: 0; }
.scenario-icon { padding: 0.5rem; border-radius: 9999px; display: inline-flex; }
.scenario-description { color: var(--text-secondary); text-align: justify; }
.metrics { list-style: none; margin: 1rem 0 0; padding: 1rem; background: var(--panel); border: 1px solid var(--border); border-radius: 0.5rem; font-size: 0.875rem; color: #475569; }
.metrics li { display: flex; justify-content: space-between; padding: 0.25rem 0; }
.metric-header { border-bottom: 1px solid var(--border); }
.metric-value { font-family: ui-monospace, SFMono-Regular, Menlo, monospace; font-weight: 700; }
.metric.muted { opacity: 0.75; }
.metric.muted .metric-value { font-weight: 400; }
.scenario-media { background: #f1f5f9; border: 1px solid #cbd5e1; border-radius: 0.75rem; overflow: hidden; box-shadow: var(--shadow); }
.scenario-media video, .scenario-media img { width: 100%; height: auto; display: block; object-fit: cover; }
.accent-blue .scenario-icon { background: #dbeafe; color: var(--primary); }
.accent-blue .metric.emphasis .metric-value { color: var(--primary); }
.accent-purple .scenario-icon { background: #f3e8ff; color: #7e22ce; }
.accent-purple .metric.emphasis .metric-value { color: #7e22ce; }
.accent-red .scenario-icon { background: #fee2e2; color: #b91c1c; }
.accent-red .metric.emphasis { color: #b91c1c; background: #fef2f2; font-weight: 700; margin: 0 -0.5rem; padding: 0.25rem 0.5rem; border-radius: 0.25rem; }
.accent-default .scenario-icon { background: #e2e8f0; color: #1e293b; }
@media (max-width: 768px) {
  .scenario { grid-template-columns: 1fr; }
  .scenario.reverse .scenario-text, .scenario.reverse .scenario-media { order: 0; }
}

/* ============ Citation ============ */
.citation {
  position: relative;
  max-width: 64rem;
  margin: 0 auto;
  background: var(--panel);
  border: 1px solid #cbd5e1;
  border-radius: 0.25rem;
  padding: 1rem;
  font-size: 0.875rem;
}
.citation-body pre { margin: 0; padding-right: 2.5rem; white-space: pre-wrap; overflow-x: auto; background: transparent !important; }
.copy-button {
  position: absolute;
  top: 0.5rem;
  right: 0.5rem;
  padding: 0.375rem;
  background: #fff;
  border: 1px solid var(--border);
  border-radius: 0.25rem;
  color: var(--text-muted);
  cursor: pointer;
  line-height: 0;
}
.copy-button:hover { background: #f1f5f9; }
.copy-button .copy-done { display: none; color: #16a34a; }
.copy-button[data-state="copied"] .copy-idle { display: none; }
.copy-button[data-state="copied"] .copy-done { display: inline; }
.copy-notice { margin: 0.75rem 0 0; color: #b45309; font-family: inherit; }

/* ============ Footer ============ */
.footer { margin-top: 6rem; padding: 2rem 0; border-top: 1px solid var(--border); text-align: center; color: var(--text-muted); font-size: 0.875rem; }
.footer-org { margin-bottom: 1rem; }
.footer-dept { font-weight: 700; color: #334155; }
.footer p { margin: 0.25rem 0; }
`
