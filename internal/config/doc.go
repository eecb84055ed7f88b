// Package config loads and validates YAML configuration for go-html2haml.
//
// A config names the output directory, the assets linked from every
// generated file, and one entry per output target. Config files are found
// by path or by name in the current directory and ~/.config/go-html2haml/.
package config
