// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mnemonic

import (
	"log"
	"strings"

	"github.com/ezrec/hp15c/table"
)

// Instruction is one record of a keycode listing.
type Instruction struct {
	Path     []string // Canonical tokens, command first.
	Keycodes []string // Keycodes, shift key first.
	Prefix   string   // Shift key name, empty if none.
	Comment  string   // Comments of the visited nodes.
	Remarks  string   // Trailing words of the source line.
}

// descent is the state of a command trie walk.
type descent struct {
	node  *table.Node   // Current node.
	path  []string      // Canonical tokens matched.
	nodes []*table.Node // Nodes visited, one per token.
	used  int           // Words consumed.
}

// match finds the canonical token at the start of words that selects a
// child of node. Two words are tried before one.
func (conv *Converter) match(node *table.Node, words []string) (token string, span int, ok bool) {
	for span = min(2, len(words)); span > 0; span-- {
		spelling := table.Fold(strings.Join(words[:span], " "))
		token, ok = conv.table.Canonical(spelling)
		if !ok {
			continue
		}
		if _, ok = node.Child(token); ok {
			return
		}
	}

	return "", 0, false
}

// descend walks the command trie as far as the words allow.
func (conv *Converter) descend(words []string) (desc descent) {
	desc.node = conv.table.Root()

	for desc.used < len(words) {
		token, span, ok := conv.match(desc.node, words[desc.used:])
		if !ok {
			break
		}
		child, _ := desc.node.Child(token)
		desc.node = child
		desc.path = append(desc.path, token)
		desc.nodes = append(desc.nodes, child)
		desc.used += span
	}

	return
}

// instruction builds the listing record of a complete descent.
func (conv *Converter) instruction(desc descent) (inst Instruction) {
	inst.Path = desc.path

	if key, ok := conv.table.Prefix(desc.path[0]); ok {
		inst.Prefix = key.String()
		inst.Keycodes = append(inst.Keycodes, conv.table.PrefixKeycode(key))
	}

	var comments []string
	for _, node := range desc.nodes {
		inst.Keycodes = append(inst.Keycodes, node.Keycode())
		if len(node.Comment()) != 0 {
			comments = append(comments, node.Comment())
		}
	}
	inst.Comment = strings.Join(comments, " ")

	return
}

// isPrefix returns true for a manually typed shift key.
func isPrefix(word string) bool {
	word = table.Fold(word)
	for _, key := range []table.Prefix{table.PREFIX_F, table.PREFIX_G} {
		if word == table.Fold(key.String()) {
			return true
		}
	}
	return false
}

// Resolve resolves the first statement of a list of words.
//
// A leading f or g is dropped, as the shift key is derived from the
// command. On success, one record is returned per key sequence (a number
// takes one record per digit). On failure, err is a *Diagnostic.
//
// rest holds the words after the statement. After a diagnostic it starts
// after the words consumed, or after the first word if none were. An
// invalid argument word is skipped as well.
func (conv *Converter) Resolve(words []string) (insts []Instruction, rest []string, err error) {
	if len(words) > 0 && isPrefix(words[0]) {
		words = words[1:]
	}
	if len(words) == 0 {
		return
	}

	words, recombined := conv.table.Recombine(words)
	if conv.Verbose && recombined {
		log.Printf("recombined: %v", words)
	}

	desc := conv.descend(words)
	if len(desc.path) != 0 && desc.node.Complete() {
		insts = []Instruction{conv.instruction(desc)}
		rest = words[desc.used:]
		return
	}

	if desc.used == 0 {
		insts, err = conv.literal(words[0])
		if err == nil && len(insts) != 0 {
			rest = words[1:]
			return
		}
	}

	skip := max(desc.used, 1)
	if err != nil {
		err = &Diagnostic{
			Kind:  DIAG_EXPRESSION_INVALID,
			Token: words[0],
			Words: words,
			Err:   err,
		}
	} else {
		diag := conv.diagnose(words, desc)
		if diag.Kind == DIAG_ARGUMENT_INVALID {
			skip = desc.used + 1
		}
		err = diag
	}

	insts = nil
	rest = words[skip:]

	return
}
