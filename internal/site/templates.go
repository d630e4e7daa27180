package site

// pageTemplate is the Go html/template for each example page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="light">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} ({{.Version}}) | {{.SiteTitle}}</title>
  <link rel="stylesheet" href="{{.BasePath}}style.css">
</head>
<body data-version="{{.Version}}" data-identifier="{{.Identifier}}" data-format="{{.Format}}">
  <nav class="sidebar" id="sidebar">
    <div class="sidebar-header">
      <a href="{{.BasePath}}index.html" class="project-title">{{.SiteTitle}}</a>
      {{if .Tagline}}<p class="tagline">{{.Tagline}}</p>{{end}}
      <input type="text" id="search-input" placeholder="Filter examples..." autocomplete="off">
    </div>
    <ul class="version-tabs" role="tablist">
      {{range .Tabs}}<li><a href="{{.Href}}" role="tab"{{if .Active}} class="active" aria-selected="true"{{end}}>{{.Name}}</a></li>
      {{end}}
    </ul>
    <ul class="example-list" id="example-list">
      {{range .Examples}}<li><a href="{{.Href}}"{{if .Active}} class="active"{{end}}>{{.Name}}</a></li>
      {{end}}
    </ul>
    <ul class="search-results hidden" id="search-results"></ul>
  </nav>
  <div class="sidebar-overlay" id="sidebar-overlay"></div>
  <main class="content">
    <div class="top-bar">
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle filters">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
      <h1 class="example-title">{{.DisplayName}} <span class="version-badge">v{{.Version}}</span></h1>
      {{if .RepoURL}}<a class="repo-link" href="{{.RepoURL}}">GitHub</a>{{end}}
      <button class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
        <svg width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
        </svg>
      </button>
    </div>
    {{if .Intro}}<section class="intro">{{.Intro}}</section>{{end}}
    <section class="viewer format-{{.Format}}" id="viewer">
      <div class="viewer-toolbar">
        <div class="format-toggle" role="tablist">
          {{range .Blocks}}<button type="button" class="format-button{{if .Active}} active{{end}}" data-format="{{.Format}}">{{.Label}}</button>
          {{end}}
        </div>
        <div class="viewer-actions">
          {{range .Blocks}}<span class="format-only fmt-{{.Format}}">
            <a href="{{.RawURL}}">View raw</a>
            {{if .ViewerURL}}<a href="{{.ViewerURL}}">Open in API explorer</a>{{end}}
          </span>
          {{end}}
          <button type="button" class="copy-button" id="copy-button">Copy</button>
        </div>
      </div>
      {{range .Blocks}}<div class="code-block format-only fmt-{{.Format}}" data-format="{{.Format}}">
        {{.Code}}
        <textarea class="raw-source" hidden readonly>{{.Source}}</textarea>
      </div>
      {{end}}
    </section>
  </main>
  <script src="{{.BasePath}}script.js"></script>
</body>
</html>`

// cssContent is the full CSS for the example site. The chroma palette is
// appended at build time.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --bg-sidebar: #f1f3f5;
  --text: #212529;
  --text-secondary: #495057;
  --text-muted: #868e96;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --accent-light: #e7f5ff;
  --success: #2f9e44;
  --sidebar-width: 280px;
  --shadow: 0 1px 3px rgba(0,0,0,0.08);
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --bg-sidebar: #16171f;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --text-muted: #565f89;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --accent-light: #1a1b2e;
  --success: #9ece6a;
  --shadow: 0 1px 3px rgba(0,0,0,0.3);
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.6;
  display: flex;
  min-height: 100vh;
}

a { color: var(--accent); text-decoration: none; }
a:hover { color: var(--accent-hover); }
.hidden { display: none !important; }

/* ============ Sidebar ============ */
.sidebar {
  width: var(--sidebar-width);
  background: var(--bg-sidebar);
  border-right: 1px solid var(--border);
  position: fixed;
  top: 0;
  left: 0;
  bottom: 0;
  overflow-y: auto;
  z-index: 100;
}

.sidebar-header {
  padding: 20px 16px 12px;
  border-bottom: 1px solid var(--border);
}

.project-title {
  display: block;
  font-size: 1.1rem;
  font-weight: 700;
}

.tagline {
  font-size: 0.8rem;
  color: var(--text-muted);
  margin-bottom: 12px;
}

#search-input {
  width: 100%;
  padding: 8px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  font-size: 0.85rem;
  background: var(--bg);
  color: var(--text);
  outline: none;
}

#search-input:focus { border-color: var(--accent); }

.version-tabs {
  list-style: none;
  display: flex;
  gap: 4px;
  padding: 12px 16px;
  border-bottom: 1px solid var(--border);
}

.version-tabs a {
  display: block;
  padding: 4px 10px;
  border-radius: 6px;
  font-size: 0.85rem;
  color: var(--text-secondary);
}

.version-tabs a.active {
  background: var(--accent);
  color: #fff;
}

.example-list, .search-results {
  list-style: none;
  padding: 8px 0;
}

.example-list a, .search-results a {
  display: block;
  padding: 6px 16px;
  font-size: 0.9rem;
  color: var(--text-secondary);
}

.example-list a.active {
  background: var(--accent-light);
  color: var(--accent);
  font-weight: 600;
}

.search-results .result-version {
  font-size: 0.75rem;
  color: var(--text-muted);
  margin-left: 6px;
}

.sidebar-overlay { display: none; }

/* ============ Content ============ */
.content {
  margin-left: var(--sidebar-width);
  flex: 1;
  min-width: 0;
  padding: 0 32px 48px;
}

.top-bar {
  display: flex;
  align-items: center;
  gap: 12px;
  padding: 16px 0;
  border-bottom: 1px solid var(--border);
  margin-bottom: 24px;
}

.example-title {
  flex: 1;
  font-size: 1.4rem;
}

.version-badge {
  font-size: 0.75rem;
  font-weight: 500;
  padding: 2px 8px;
  border-radius: 10px;
  background: var(--accent-light);
  color: var(--accent);
  vertical-align: middle;
}

.menu-toggle, .theme-toggle {
  background: none;
  border: none;
  color: var(--text-secondary);
  cursor: pointer;
}

.menu-toggle { display: none; }

.intro { margin-bottom: 24px; color: var(--text-secondary); }

/* ============ Viewer ============ */
.viewer-toolbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  gap: 12px;
  margin-bottom: 12px;
}

.format-button {
  padding: 4px 12px;
  border: 1px solid var(--border);
  background: var(--bg-secondary);
  color: var(--text-secondary);
  cursor: pointer;
}

.format-button:first-child { border-radius: 6px 0 0 6px; }
.format-button:last-child { border-radius: 0 6px 6px 0; }

.format-button.active {
  background: var(--accent);
  border-color: var(--accent);
  color: #fff;
}

.viewer-actions {
  display: flex;
  align-items: center;
  gap: 12px;
  font-size: 0.85rem;
}

.viewer-actions a { margin-right: 8px; }

.copy-button {
  padding: 4px 12px;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-secondary);
  color: var(--text);
  cursor: pointer;
  min-width: 72px;
}

.copy-button.copied {
  border-color: var(--success);
  color: var(--success);
}

.viewer.format-json .fmt-yaml,
.viewer.format-yaml .fmt-json {
  display: none;
}

.code-block pre {
  padding: 16px;
  border-radius: 8px;
  overflow-x: auto;
  font-size: 0.85rem;
  line-height: 1.5;
  box-shadow: var(--shadow);
}

/* ============ Mobile ============ */
@media (max-width: 768px) {
  .sidebar {
    transform: translateX(-100%);
    transition: transform 0.2s;
  }
  .sidebar.open { transform: translateX(0); }
  .sidebar-overlay.visible {
    display: block;
    position: fixed;
    inset: 0;
    background: rgba(0,0,0,0.4);
    z-index: 99;
  }
  .menu-toggle { display: block; }
  .content { margin-left: 0; padding: 0 16px 32px; }
}
`

// jsContent drives the client side of the viewer: format toggle, copy
// feedback, filters drawer and sidebar filtering.
const jsContent = `(function() {
  "use strict";

  var html = document.documentElement;
  var FORMAT_KEY = "oas-examples-format";
  var COPY_FEEDBACK_MS = 800;

  // ===== Theme toggle =====
  var themeToggle = document.getElementById("theme-toggle");

  function setTheme(theme) {
    html.setAttribute("data-theme", theme);
    try { localStorage.setItem("oas-examples-theme", theme); } catch(e) {}
  }

  var storedTheme = null;
  try { storedTheme = localStorage.getItem("oas-examples-theme"); } catch(e) {}
  if (storedTheme) {
    setTheme(storedTheme);
  } else if (window.matchMedia && window.matchMedia("(prefers-color-scheme: dark)").matches) {
    setTheme("dark");
  }

  if (themeToggle) {
    themeToggle.addEventListener("click", function() {
      setTheme(html.getAttribute("data-theme") === "dark" ? "light" : "dark");
    });
  }

  // ===== Filters drawer (mobile) =====
  var menuToggle = document.getElementById("menu-toggle");
  var sidebar = document.getElementById("sidebar");
  var overlay = document.getElementById("sidebar-overlay");

  function setFiltersOpen(open) {
    sidebar.classList.toggle("open", open);
    overlay.classList.toggle("visible", open);
  }

  if (menuToggle) menuToggle.addEventListener("click", function() {
    setFiltersOpen(!sidebar.classList.contains("open"));
  });
  if (overlay) overlay.addEventListener("click", function() { setFiltersOpen(false); });
  document.querySelectorAll(".example-list a, .version-tabs a").forEach(function(link) {
    link.addEventListener("click", function() { setFiltersOpen(false); });
  });

  // ===== Format toggle =====
  // The chosen format survives navigation between examples and versions.
  var viewer = document.getElementById("viewer");

  function selectFormat(format) {
    if (format !== "json" && format !== "yaml") return;
    viewer.classList.remove("format-json", "format-yaml");
    viewer.classList.add("format-" + format);
    document.body.setAttribute("data-format", format);
    document.querySelectorAll(".format-button").forEach(function(btn) {
      btn.classList.toggle("active", btn.getAttribute("data-format") === format);
    });
    try { sessionStorage.setItem(FORMAT_KEY, format); } catch(e) {}
  }

  if (viewer) {
    var storedFormat = null;
    try { storedFormat = sessionStorage.getItem(FORMAT_KEY); } catch(e) {}
    if (storedFormat) selectFormat(storedFormat);

    document.querySelectorAll(".format-button").forEach(function(btn) {
      btn.addEventListener("click", function() {
        selectFormat(btn.getAttribute("data-format"));
      });
    });
  }

  // ===== Copy =====
  var copyButton = document.getElementById("copy-button");
  var copyTimer = null;

  function currentText() {
    var format = document.body.getAttribute("data-format");
    var block = document.querySelector(".code-block[data-format='" + format + "'] .raw-source");
    return block ? block.value : "";
  }

  if (copyButton) {
    copyButton.addEventListener("click", function() {
      var text = currentText();
      if (navigator.clipboard) {
        navigator.clipboard.writeText(text).catch(function() {});
      }
      copyButton.classList.add("copied");
      copyButton.textContent = "Copied!";
      if (copyTimer) clearTimeout(copyTimer);
      copyTimer = setTimeout(function() {
        copyButton.classList.remove("copied");
        copyButton.textContent = "Copy";
        copyTimer = null;
      }, COPY_FEEDBACK_MS);
    });
  }

  // ===== Sidebar filter (with search-index.json) =====
  var searchInput = document.getElementById("search-input");
  var exampleList = document.getElementById("example-list");
  var searchResults = document.getElementById("search-results");
  var searchIndex = null;

  function getBasePath() {
    var link = document.querySelector("link[rel=stylesheet]");
    return link ? link.getAttribute("href").replace("style.css", "") : "";
  }

  fetch(getBasePath() + "search-index.json")
    .then(function(r) { return r.json(); })
    .then(function(data) { searchIndex = data; })
    .catch(function() { searchIndex = null; });

  if (searchInput && exampleList && searchResults) {
    searchInput.addEventListener("input", function() {
      var query = this.value.toLowerCase().trim();
      if (query === "" || !searchIndex) {
        exampleList.classList.remove("hidden");
        searchResults.classList.add("hidden");
        searchResults.innerHTML = "";
        return;
      }

      var base = getBasePath();
      searchResults.innerHTML = "";
      searchIndex.forEach(function(entry) {
        var haystack = (entry.title + " " + entry.identifier + " " + entry.tab).toLowerCase();
        if (haystack.indexOf(query) === -1) return;
        var li = document.createElement("li");
        var a = document.createElement("a");
        a.href = base + entry.path;
        a.textContent = entry.title;
        var badge = document.createElement("span");
        badge.className = "result-version";
        badge.textContent = entry.tab;
        a.appendChild(badge);
        li.appendChild(a);
        searchResults.appendChild(li);
      });
      exampleList.classList.add("hidden");
      searchResults.classList.remove("hidden");
    });
  }
})();
`
