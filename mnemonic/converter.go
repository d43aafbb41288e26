// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mnemonic

import (
	"log"
	"strings"
	"unicode"

	"github.com/ezrec/hp15c/table"
)

// Options selects how a listing is produced.
type Options struct {
	Simulator          bool `toml:"simulator"`             // Show dotted keycodes as the decimal point key.
	PrefixKey          bool `toml:"prefix_key"`            // Show the f or g shift key before the mnemonic.
	OneMnemonicPerLine bool `toml:"one_mnemonic_per_line"` // One statement per line, the rest are remarks.
}

// DefaultOptions returns the default listing options.
func DefaultOptions() Options {
	return Options{
		PrefixKey:          true,
		OneMnemonicPerLine: true,
	}
}

// Converter turns mnemonic programs into keycode listings.
type Converter struct {
	Verbose bool // If set, logs each statement resolution.

	opts  Options
	table *table.Table
}

// NewConverter creates a converter for the HP-15C with default options.
func NewConverter() *Converter {
	return NewConverterWith(table.Default(), DefaultOptions())
}

// NewConverterWith creates a converter for a command table.
func NewConverterWith(tbl *table.Table, opts Options) *Converter {
	return &Converter{
		opts:  opts,
		table: tbl,
	}
}

// Table returns the command table in use.
func (conv *Converter) Table() *table.Table {
	return conv.table
}

// Options returns the listing options.
func (conv *Converter) Options() Options {
	return conv.opts
}

// SetOptions replaces the listing options.
func (conv *Converter) SetOptions(opts Options) {
	conv.opts = opts
}

func (conv *Converter) Simulator() bool {
	return conv.opts.Simulator
}

func (conv *Converter) SetSimulator(simulator bool) {
	conv.opts.Simulator = simulator
}

func (conv *Converter) PrefixKey() bool {
	return conv.opts.PrefixKey
}

func (conv *Converter) SetPrefixKey(prefix bool) {
	conv.opts.PrefixKey = prefix
}

// OMPL returns true if each line holds a single mnemonic.
func (conv *Converter) OMPL() bool {
	return conv.opts.OneMnemonicPerLine
}

func (conv *Converter) SetOMPL(ompl bool) {
	conv.opts.OneMnemonicPerLine = ompl
}

// splitLines splits text into lines. The line ending is CRLF if one occurs
// anywhere in the text, LF otherwise.
func splitLines(text string) []string {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	if len(text) == 0 {
		return nil
	}

	sep := "\n"
	if strings.Contains(text, "\r\n") {
		sep = "\r\n"
	}

	return strings.Split(text, sep)
}

// Convert converts mnemonic text into a keycode listing.
//
// Every record of the listing, instruction or diagnostic, takes the next
// line number.
func (conv *Converter) Convert(text string) string {
	var out strings.Builder
	var lineno int

	next := func() int {
		lineno++
		return lineno
	}

	for n, line := range splitLines(text) {
		words := strings.Fields(line)

		for len(words) > 0 {
			insts, rest, err := conv.Resolve(words)
			if conv.Verbose {
				log.Printf("%v: %v => %d records, rest %v, err %v", n+1, words, len(insts), rest, err)
			}

			if diag, ok := err.(*Diagnostic); ok {
				out.WriteString(conv.report(next(), diag))
			} else if len(insts) != 0 {
				if conv.opts.OneMnemonicPerLine && len(rest) != 0 {
					insts[len(insts)-1].Remarks = strings.Join(rest, " ")
				}
				for _, inst := range insts {
					out.WriteString(conv.record(next(), inst))
				}
			}

			if conv.opts.OneMnemonicPerLine {
				break
			}

			// Always drop at least one word.
			if len(rest) >= len(words) {
				rest = words[1:]
			}
			words = rest
		}
	}

	return out.String()
}
