package markdown

import (
	"regexp"
	"strings"
)

// rule is one global substitution.
type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order, each to the output of the previous one.
// Bold must precede italic so "**a**" is not read as two italic spans.
var rules = []rule{
	{regexp.MustCompile(`(?m)^## (.+)$`), "<h2>${1}</h2>"},
	{regexp.MustCompile(`(?m)^# (.+)$`), "<h1>${1}</h1>"},
	{regexp.MustCompile("`(.+?)`"), "<code>${1}</code>"},
	{regexp.MustCompile(`\*\*(.+?)\*\*`), "<strong>${1}</strong>"},
	{regexp.MustCompile(`\*(.+?)\*`), "<em>${1}</em>"},
	{regexp.MustCompile(`\[(.+?)\]\((.+?)\)`), `<a href="${2}">${1}</a>`},
}

const blockSeparator = "\n\n"

// Render converts body to HTML with the minimal flavor. It never fails.
func Render(body string) string {
	text := body
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.replacement)
	}

	blocks := strings.Split(text, blockSeparator)
	out := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if isHeading(block) {
			out = append(out, block)
			continue
		}
		out = append(out, "<p>"+block+"</p>")
	}
	return strings.Join(out, blockSeparator)
}

func isHeading(block string) bool {
	return strings.HasPrefix(block, "<h1>") || strings.HasPrefix(block, "<h2>")
}

// Minimal is the Renderer for the minimal flavor.
type Minimal struct{}

// Render implements Renderer. The error is always nil.
func (Minimal) Render(body string) (string, error) {
	return Render(body), nil
}
