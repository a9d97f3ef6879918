// Package docs holds the tool's descriptive documentation, embedded in the
// binary, and renders it as markdown for the doc command.
package docs

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed content/fixinsert.md
var content string

var nonAnchorRe = regexp.MustCompile(`[^a-z0-9 _-]`)

// Source returns the embedded documentation exactly as stored.
func Source() string {
	return content
}

// Render returns the documentation under a "# title" heading.
// Headings of the source are demoted one level below the title.
// When toc is set, a bullet list linking every heading follows the title.
func Render(title string, toc bool) string {
	return render(content, title, toc)
}

type heading struct {
	level int
	text  string
}

func render(src, title string, toc bool) string {
	var body strings.Builder
	var headings []heading
	inFence := false

	for _, line := range strings.Split(strings.TrimRight(src, "\n"), "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
		}
		if !inFence {
			if level, text, ok := parseHeading(line); ok {
				headings = append(headings, heading{level: level, text: text})
				line = strings.Repeat("#", level+1) + " " + text
			}
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	var out strings.Builder
	fmt.Fprintf(&out, "# %s\n\n", title)
	if toc && len(headings) > 0 {
		for _, h := range headings {
			fmt.Fprintf(&out, "%s- [%s](#%s)\n", strings.Repeat("  ", h.level-1), h.text, Anchor(h.text))
		}
		out.WriteByte('\n')
	}
	out.WriteString(body.String())
	return out.String()
}

func parseHeading(line string) (int, string, bool) {
	level := 0
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 5 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	text := strings.TrimSpace(line[level:])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

// Anchor returns the GitHub-style fragment for a heading text.
func Anchor(text string) string {
	anchor := nonAnchorRe.ReplaceAllString(strings.ToLower(text), "")
	return strings.ReplaceAll(anchor, " ", "-")
}
