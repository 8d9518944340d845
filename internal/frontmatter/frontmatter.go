// Package frontmatter splits a leading "---" metadata block from a markdown
// document.
//
// The block is line based: every line holding a colon becomes a key/value
// pair split on the first colon, both sides trimmed. Values are never
// decoded further, so "title: a: b" yields the title "a: b".
package frontmatter

import (
	"errors"
	"fmt"
	"strings"
)

// Delimiter is the marker line that opens and closes a block.
const Delimiter = "---"

const separator = ":"

// ErrMissingField is returned by Require when a key is absent or empty.
var ErrMissingField = errors.New("missing required field")

// Frontmatter maps metadata keys to their raw string values.
type Frontmatter map[string]string

// Require returns the value stored under key, or an error wrapping
// ErrMissingField if the key is absent or its value is empty.
func (f Frontmatter) Require(key string) (string, error) {
	value := f[key]
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return value, nil
}

// Parse extracts the metadata block at the head of text.
//
// The block is recognized only when the first line is a delimiter and a
// closing delimiter line follows. Otherwise the returned metadata is empty
// and the whole document is the body. The body is always whitespace-trimmed.
func Parse(text string) (Frontmatter, string) {
	meta := Frontmatter{}
	if strings.TrimSpace(text) == "" {
		return meta, ""
	}

	lines := strings.Split(text, "\n")
	if strings.TrimSpace(lines[0]) != Delimiter {
		return meta, strings.TrimSpace(text)
	}

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == Delimiter {
			body := strings.Join(lines[i+1:], "\n")
			return meta, strings.TrimSpace(body)
		}
		key, value, ok := strings.Cut(line, separator)
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	// Unterminated block: nothing parsed so far is kept.
	return Frontmatter{}, strings.TrimSpace(text)
}
