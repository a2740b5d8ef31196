// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package preview

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/albertocavalcante/attrscaffold/internal/markup"
)

// Section is one titled listing of a page.
type Section struct {
	Title string
	Rich  string
}

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy

	pageOnce sync.Once
	page     *pongo2.Template
	pageErr  error
)

const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
<style>
body { background: #1e1e1e; color: #d4d4d4; font-family: sans-serif; }
pre { font-family: monospace; tab-size: 4; }
.tok-keyword { color: #569cd6; font-weight: bold; }
.tok-typename { color: #4ec9b0; }
.tok-identifier { color: #9cdcfe; }
.tok-macro { color: #c586c0; }
.tok-numericliteral { color: #b5cea8; }
.tok-error { color: #f44747; text-decoration: underline wavy; }
.tok-comment { color: #6a9955; }
</style>
</head>
<body>
<h1>{{ title }}</h1>
{% for section in sections %}<h2>{{ section.title }}</h2>
<pre><code>{{ section.body|safe }}</code></pre>
{% endfor %}</body>
</html>
`

func sanitizer() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.StrictPolicy()
		p.AllowElements("span")
		p.AllowAttrs("class").Matching(regexp.MustCompile(`^tok-[a-z]+$`)).OnElements("span")
		policy = p
	})
	return policy
}

func pageTemplateOnce() (*pongo2.Template, error) {
	pageOnce.Do(func() {
		page, pageErr = pongo2.FromString(pageTemplate)
	})
	return page, pageErr
}

// Fragment renders rich text as sanitized HTML: each decorated token
// becomes a span with class "tok-<role>".
func Fragment(rich string) string {
	var b strings.Builder
	for _, seg := range markup.Parse(rich) {
		text := html.EscapeString(seg.Text)
		if seg.Role == markup.Plain {
			b.WriteString(text)
			continue
		}
		fmt.Fprintf(&b, `<span class="tok-%s">%s</span>`, seg.Role, text)
	}
	return sanitizer().Sanitize(b.String())
}

// HTML renders a standalone page with one highlighted listing per section.
func HTML(title string, sections []Section) (string, error) {
	tpl, err := pageTemplateOnce()
	if err != nil {
		return "", fmt.Errorf("parse page template: %w", err)
	}

	items := make([]map[string]any, 0, len(sections))
	for _, s := range sections {
		items = append(items, map[string]any{
			"title": s.Title,
			"body":  Fragment(s.Rich),
		})
	}
	out, err := tpl.Execute(pongo2.Context{
		"title":    title,
		"sections": items,
	})
	if err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return out, nil
}
