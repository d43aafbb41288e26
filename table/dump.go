package table

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// Format is a table dump encoding.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_JSON = Format(0) // json
	FORMAT_CBOR = Format(1) // cbor
)

// ParseFormat returns the format named by a string.
func ParseFormat(name string) (format Format, err error) {
	switch strings.ToLower(name) {
	case FORMAT_JSON.String():
		format = FORMAT_JSON
	case FORMAT_CBOR.String():
		format = FORMAT_CBOR
	default:
		err = ErrFormat(name)
	}
	return
}

// Entry is a serialized command trie node.
type Entry struct {
	Token   string  `json:"token" cbor:"token"`
	Keycode string  `json:"keycode" cbor:"keycode"`
	Comment string  `json:"comment,omitempty" cbor:"comment,omitempty"`
	Prefix  string  `json:"prefix,omitempty" cbor:"prefix,omitempty"`
	Args    []Entry `json:"args,omitempty" cbor:"args,omitempty"`
}

// Dump is a serialized table, for documentation and debugging.
type Dump struct {
	Commands  []Entry `json:"commands" cbor:"commands"`
	Aliases   []Alias `json:"aliases" cbor:"aliases"`
	Shortcuts []Alias `json:"shortcuts" cbor:"shortcuts"`
}

// entries serializes the children of a node.
func entries(node *Node) (list []Entry) {
	for token, child := range node.Children() {
		list = append(list, Entry{
			Token:   token,
			Keycode: child.Keycode(),
			Comment: child.Comment(),
			Args:    entries(child),
		})
	}
	return
}

// Dump serializes the whole table.
func (tbl *Table) Dump() (dump Dump) {
	dump.Commands = entries(tbl.root)
	for n := range dump.Commands {
		entry := &dump.Commands[n]
		if key, ok := tbl.Prefix(entry.Token); ok {
			entry.Prefix = key.String()
		}
	}

	for spelling, token := range tbl.Aliases() {
		dump.Aliases = append(dump.Aliases, Alias{Spelling: spelling, Token: token})
	}
	dump.Shortcuts = append(dump.Shortcuts, tbl.shortcuts...)

	return
}

// Encode writes the dump in the given format.
func (dump Dump) Encode(w io.Writer, format Format) (err error) {
	switch format {
	case FORMAT_JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		enc.SetEscapeHTML(false)
		err = enc.Encode(dump)
	case FORMAT_CBOR:
		err = cbor.NewEncoder(w).Encode(dump)
	default:
		err = ErrFormat(format.String())
	}
	return
}
