// Package table holds the HP-15C command set used by the mnemonic
// converter.
//
// The command trie is rooted at the instruction set; each level below a
// command is one argument (register, label, digit, sub-opcode). Every node
// carries the keycode of the key pressed for it. The alias table folds the
// many accepted spellings of a mnemonic onto one canonical token, and the
// shortcut table rewrites compact forms such as `X<=0?` or `STO+` into
// their spelled-out commands before lookup.
//
// Tables are built once and never modified.
package table
