// Package markdown turns post bodies into HTML fragments.
//
// Two flavors exist:
//
//   - minimal: a fixed, ordered list of regular-expression substitutions
//     (headings, inline code, bold, italic, links) followed by paragraph
//     wrapping. It is not CommonMark: there is no escaping, no nesting and
//     no lists, and unbalanced delimiters pass through as literal text.
//   - extended: goldmark with GitHub Flavored Markdown (tables,
//     strikethrough, autolinks) and chroma-highlighted fenced code blocks.
//
// Both flavors are deterministic and keep no state between calls.
package markdown
