package sitegen

import (
	"fmt"
	"strings"
)

const systemPromptHtml = "You write compact, production-ready HTML/CSS/JS."

const systemPromptJs = "You write robust, minimal vanilla JS for static pages."

func indexHtmlPrompt(brief string, checks []string, attachments []string) string {
	return fmt.Sprintf(`You are a senior front-end engineer. Build a **static**, GitHub Pages-friendly
single-page app that satisfies:

Brief:
%s

Checks to consider (selectors/behaviors expected by graders):
%s

Attachments in repo (filenames):
%s

Rules:
- No build step, no bundlers, no frameworks. Plain HTML+CSS+JS.
- If checks mention Bootstrap, include its CSS from jsDelivr.
- Create elements/IDs referenced in checks (e.g., #total-sales, #product-sales).
- Parse query params if checks mention ?url= or ?token=.
- If data files are present (e.g., data.csv, rates.json), load via fetch('./data.csv').
- Include an aria-live region if instructed.
- Keep the page accessible and responsive.
- Link to style.css and script.js.

Return ONLY the HTML for index.html.
`, brief, bulletList(checks), bulletList(attachments))
}

func scriptJsPrompt(brief string, checks []string, attachments []string) string {
	return fmt.Sprintf(`Write vanilla JavaScript implementing the page logic.

Brief:
%s

Checks:
%s

Attachments available locally:
%s

Requirements:
- Implement the calculations/DOM updates implied by checks.
- If 'data.csv' exists, fetch('./data.csv') and parse CSV to compute totals.
- If 'rates.json' exists, fetch('./rates.json') and use it for conversion.
- If checks reference localStorage or aria-live, implement it.
- Populate the specific IDs referenced by checks (e.g., #github-created-at).
- Keep JS short, commented, and robust.

Return ONLY the JavaScript (no HTML).
`, brief, bulletList(checks), bulletList(attachments))
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return "- (none)"
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(it)
	}
	return b.String()
}
