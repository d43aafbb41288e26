// Package internal holds the inline markup helpers shared by the converter.
package internal

import (
	"strings"

	"golang.org/x/text/width"
)

// Span classes understood by the presentation layer.
const (
	CLASS_ERROR    = "MCerror"
	CLASS_COMMAND  = "MCcommand"
	CLASS_ARGUMENT = "MCargument"
)

var entities = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the HTML special characters &, < and > with entities.
func Escape(text string) string {
	return entities.Replace(text)
}

// Span wraps already escaped text in a classed span.
func Span(class string, text string) string {
	return `<span class="` + class + `">` + text + `</span>`
}

// Width returns the number of display columns of a string.
func Width(text string) (columns int) {
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			columns += 2
		default:
			columns += 1
		}
	}
	return
}

// Blank returns spaces covering the display width of a string.
func Blank(text string) string {
	return strings.Repeat(" ", Width(text))
}
