// Package haml implements the Haml side of the HTML-to-Haml conversion.
//
// This package works on Haml text line by line, without building a tree:
//   - Tag translation (one flat HTML element string to one Haml tag line)
//   - Indentation normalization of %head and %body blocks
//   - Asset injection (head lines, body lines, cache manifest attribute)
//
// Every structural boundary (the %head line, the %body line, the top-level
// %html line) is found through a named predicate in boundary.go. When a
// boundary is missing, the pass returns its input unchanged.
package haml
