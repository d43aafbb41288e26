package mnemonic

import (
	"fmt"
	"strings"

	"github.com/ezrec/hp15c/internal"
)

// KEYCODE_WIDTH is the width of the right aligned keycode column.
const KEYCODE_WIDTH = 11

// simulatorKeycode rewrites a dotted keycode as the decimal point key
// followed by the digit key.
func (conv *Converter) simulatorKeycode(keycode string) string {
	if !conv.opts.Simulator || len(keycode) < 2 || keycode[0] != '.' {
		return keycode
	}
	point, _ := conv.table.Root().Child(".")
	return point.Keycode() + "  " + keycode[1:]
}

// lineNumber formats a listing line number.
func lineNumber(lineno int) string {
	return fmt.Sprintf("%03d", lineno)
}

// record formats a listing line.
func (conv *Converter) record(lineno int, inst Instruction) string {
	var keycodes []string
	for _, keycode := range inst.Keycodes {
		keycodes = append(keycodes, conv.simulatorKeycode(keycode))
	}

	var text string
	if conv.opts.PrefixKey && len(inst.Prefix) != 0 {
		text = inst.Prefix + " "
	}
	text += strings.Join(inst.Path, " ") + " " + inst.Comment + " " + inst.Remarks
	text = strings.TrimRight(internal.Escape(text), " ")

	return fmt.Sprintf("%v { %*s } %v\n", lineNumber(lineno), KEYCODE_WIDTH, strings.Join(keycodes, " "), text)
}

// report formats a diagnostic: the statement, an underline below the words
// that were resolved, the error banner and the explanation.
func (conv *Converter) report(lineno int, diag *Diagnostic) string {
	var out strings.Builder

	out.WriteString(internal.Escape(strings.Join(diag.Words, " ")))
	out.WriteString("\n")
	for _, word := range diag.Words[:min(diag.Used, len(diag.Words))] {
		out.WriteString(internal.Blank(word))
		out.WriteString(" ")
	}
	out.WriteString(internal.Span(internal.CLASS_ERROR, f("⮤ Error in line %v ", lineNumber(lineno))))
	out.WriteString("\n")
	out.WriteString(diag.Markup())
	out.WriteString("\n")

	return out.String()
}
