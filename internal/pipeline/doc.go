// Package pipeline implements the page rendering pipeline.
//
// A page goes through these stages:
//   - Markdown preprocessing (line endings, byte order mark, blank lines)
//   - Markdown to HTML conversion, with the built-in dialect or goldmark
//   - Template filling with the page title and content
//   - Base path rewriting for sites served from a sub-directory
//
// Title extraction and file discovery live with the callers. This package
// only transforms strings.
package pipeline
