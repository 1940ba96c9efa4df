package sitegen

import (
	"fmt"
	"strings"
)

const styleCss = `:root { font-family: system-ui, -apple-system, Segoe UI, Roboto, sans-serif; }
body { margin: 0; padding: 1rem; background: #fafafa; color: #222; }
main { max-width: 900px; margin: 0 auto; }
#result { margin-top: .75rem; padding: .5rem; background: #fff; border: 1px solid #ddd; border-radius: 6px; }
table { width: 100%; border-collapse: collapse; }
th, td { border-bottom: 1px solid #eee; padding: .5rem; text-align: left; }
`

const mitLicense = `MIT License

Copyright (c) 2025

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`

const fallbackScriptJs = `(function () {
  const out = document.getElementById('result');
  const q = new URLSearchParams(location.search);
  if (out) out.textContent = 'Params: ' + q.toString();
})();
`

func fallbackIndexHtml(brief string, checks []string) string {
	return fmt.Sprintf(`<!doctype html><html lang="en"><head>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width,initial-scale=1"/>
  <title>Generated App (fallback)</title>
  <link rel="stylesheet" href="style.css">
</head><body>
  <main>
    <h1>Generated App (No LLM configured)</h1>
    <p><strong>Brief:</strong> %s</p>
    <p><strong>Checks:</strong> %s</p>
    <div id="result">Set OPENAI_API_KEY to enable full generation.</div>
    <script src="script.js"></script>
  </main>
</body></html>
`, brief, checksOrNone(checks))
}

func checksOrNone(checks []string) string {
	if len(checks) == 0 {
		return "(none)"
	}
	return strings.Join(checks, ", ")
}

func readmeMd(brief string, checks []string) string {
	return fmt.Sprintf(`# Generated App (GitHub Pages)

**Brief**
%s

**Checks**
%s

## Notes
- Static site; loads local files via fetch if present.
- Elements and IDs are created to satisfy automated checks when possible.
`, brief, bulletList(checks))
}
