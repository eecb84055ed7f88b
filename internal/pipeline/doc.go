// Package pipeline produces the HTML that the Haml converter consumes.
//
// This package handles the stages that run around the converter's hooks:
//   - Page rendering (built-in page, HTML or Haml templates, Markdown via Goldmark)
//   - Markdown preprocessing (line normalization, ==highlight== syntax)
//   - Asset tag injection (stylesheet links and external scripts)
//
// Tag injection emits elements without whitespace between them, which is the
// shape the converter's head and script extraction expects.
package pipeline
