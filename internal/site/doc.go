// Package site builds a blog: one HTML page per markdown post plus an index
// page listing every valid post, newest first.
//
// A build is a sequential batch. Each document is parsed, validated and
// rendered on its own; a problem with one document skips only that document
// and is reported as a *SkipError carrying a Level. Only conditions that
// prevent a usable site abort the build: a missing blog or templates
// directory (checked by Preflight) and a failure to produce the index page.
// Those are returned as *output.ExitError values.
//
// Every build regenerates every page. Nothing is cached between runs.
package site
