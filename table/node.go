// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"iter"
	"slices"
)

// Node is a command trie node.
//
// A node without children is a complete instruction. A node with children
// needs one more argument token, selected from its children.
type Node struct {
	keycode string // Key press code: two characters, optionally qualified.
	comment string // Disambiguating annotation, if any.

	tokens   []string         // Child tokens, in declaration order.
	children map[string]*Node // Children by token.
}

// Arg is a child token and the node it leads to.
type Arg struct {
	Token string
	Node  *Node
}

// NewNode returns a node with the given children. A repeated token keeps
// its first position and takes the last node given for it.
func NewNode(keycode string, comment string, args ...Arg) (node *Node) {
	node = &Node{
		keycode: keycode,
		comment: comment,
	}

	for _, arg := range args {
		if node.children == nil {
			node.children = make(map[string]*Node, len(args))
		}
		_, exists := node.children[arg.Token]
		if !exists {
			node.tokens = append(node.tokens, arg.Token)
		}
		node.children[arg.Token] = arg.Node
	}

	return
}

// Leaf returns a complete node.
func Leaf(keycode string) *Node {
	return &Node{keycode: keycode}
}

// Keycode returns the key press code of the node.
func (node *Node) Keycode() string {
	return node.keycode
}

// Comment returns the disambiguating annotation of the node, if any.
func (node *Node) Comment() string {
	return node.comment
}

// Complete returns true if the node needs no further argument.
func (node *Node) Complete() bool {
	return len(node.tokens) == 0
}

// Child returns the child for a canonical token.
func (node *Node) Child(token string) (child *Node, ok bool) {
	child, ok = node.children[token]
	return
}

// Len returns the number of children.
func (node *Node) Len() int {
	return len(node.tokens)
}

// Tokens returns the child tokens in declaration order.
func (node *Node) Tokens() []string {
	return slices.Clone(node.tokens)
}

// Children iterates over the children in declaration order.
func (node *Node) Children() iter.Seq2[string, *Node] {
	return func(yield func(token string, child *Node) bool) {
		for _, token := range node.tokens {
			if !yield(token, node.children[token]) {
				return
			}
		}
	}
}

// Walk visits every node below this one, depth first, with the token path
// that leads to it.
func (node *Node) Walk(visit func(path []string, child *Node) bool) {
	var walk func(path []string, at *Node) bool
	walk = func(path []string, at *Node) bool {
		for token, child := range at.Children() {
			here := append(slices.Clip(path), token)
			if !visit(here, child) {
				return false
			}
			if !walk(here, child) {
				return false
			}
		}
		return true
	}
	walk(nil, node)
}
