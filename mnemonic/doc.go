// Package mnemonic converts HP-15C mnemonic programs into keycode listings.
//
// Each input line holds one statement (or several, when one mnemonic per
// line is off). A statement is resolved by rewriting leading shortcuts,
// folding each word onto its canonical token, and walking the command
// trie until a complete instruction is reached. Words that are not
// commands may be numeric literals, which are keyed in digit by digit, or
// constant expressions written as $(...).
//
// Statements that can not be resolved produce a diagnostic record naming
// the valid continuations; conversion itself never fails.
package mnemonic
