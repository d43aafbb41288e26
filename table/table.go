// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Table is an immutable command set: the command trie, the alias and
// shortcut tables, and the shift key of each top level command.
type Table struct {
	root *Node // Command trie.

	aliases   []Alias           // Folded aliases, in declaration order.
	alias     map[string]string // Folded spelling to canonical token.
	recombine map[string]string // Folded phrase to replacement phrase.
	shortcuts []Alias           // Folded shortcuts, in declaration order.
	prefix    map[string]Prefix // Top level token to shift key.
}

// Root returns the command trie.
func (tbl *Table) Root() *Node {
	return tbl.root
}

// Fold normalizes a word for table lookups.
func Fold(word string) string {
	return cases.Upper(language.Und).String(norm.NFC.String(word))
}

// New builds a table. Alias and shortcut spellings are folded; the first
// declaration of a spelling wins.
func New(root *Node, aliases []Alias, shortcuts []Alias, prefix map[string]Prefix) (tbl *Table) {
	tbl = &Table{
		root:      root,
		alias:     make(map[string]string, len(aliases)),
		recombine: make(map[string]string, len(shortcuts)),
		prefix:    make(map[string]Prefix, len(prefix)),
	}

	for _, alias := range aliases {
		spelling := Fold(alias.Spelling)
		if _, ok := tbl.alias[spelling]; ok {
			continue
		}
		tbl.alias[spelling] = alias.Token
		tbl.aliases = append(tbl.aliases, Alias{Spelling: spelling, Token: alias.Token})
	}

	for _, shortcut := range shortcuts {
		phrase := Fold(shortcut.Spelling)
		if _, ok := tbl.recombine[phrase]; ok {
			continue
		}
		tbl.recombine[phrase] = shortcut.Token
		tbl.shortcuts = append(tbl.shortcuts, Alias{Spelling: phrase, Token: shortcut.Token})
	}

	for token, key := range prefix {
		tbl.prefix[token] = key
	}

	return
}

// Default returns the HP-15C table. The table is shared, and safe for
// concurrent use.
var Default = sync.OnceValue(func() *Table {
	return New(hp15cCommands(), hp15cAliases(), hp15cRecombine, hp15cPrefix)
})

// Canonical returns the canonical token of a folded spelling.
func (tbl *Table) Canonical(spelling string) (token string, ok bool) {
	token, ok = tbl.alias[spelling]
	return
}

// Aliases iterates over the folded spellings and their canonical tokens.
func (tbl *Table) Aliases() iter.Seq2[string, string] {
	return func(yield func(spelling, token string) bool) {
		for _, alias := range tbl.aliases {
			if !yield(alias.Spelling, alias.Token) {
				return
			}
		}
	}
}

// Recombine rewrites a leading shortcut of a statement.
//
// The first word alone is tried before the first two words together. The
// replacement phrase is split into words in place of the shortcut. If no
// shortcut matches, the words are returned unchanged.
func (tbl *Table) Recombine(words []string) (out []string, ok bool) {
	out = words
	if len(words) == 0 {
		return
	}

	var phrase string
	var used int

	if phrase, ok = tbl.recombine[Fold(words[0])]; ok {
		used = 1
	} else if len(words) > 1 {
		if phrase, ok = tbl.recombine[Fold(words[0]+" "+words[1])]; ok {
			used = 2
		}
	}

	if !ok {
		return
	}

	out = slices.Concat(strings.Fields(phrase), words[used:])
	return
}

// Prefix returns the shift key that precedes a top level token.
func (tbl *Table) Prefix(token string) (key Prefix, ok bool) {
	key, ok = tbl.prefix[token]
	return
}

// PrefixKeycode returns the keycode of a shift key.
func (tbl *Table) PrefixKeycode(key Prefix) (keycode string) {
	node, ok := tbl.root.Child(key.String())
	if ok {
		keycode = node.Keycode()
	}
	return
}
