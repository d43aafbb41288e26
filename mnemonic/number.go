package mnemonic

import (
	"regexp"
	"strings"
)

// numberRe matches a sign, a mantissa and an optional exponent, after
// separator and exponent marker normalization.
var numberRe = regexp.MustCompile(`^([+-]?)([0-9]*\.?[0-9]*)(?:E([+-]?)([0-9]+))?$`)

// exprRe matches a constant expression word.
var exprRe = regexp.MustCompile(`^\$\((.+)\)$`)

// Number is a numeric literal split into the parts keyed in.
type Number struct {
	Negative    bool   // Mantissa sign.
	Mantissa    string // Digits and decimal point, may be empty.
	Exponent    string // Exponent digits, empty if none.
	ExpNegative bool   // Exponent sign.
}

// decimalPoint rewrites the separators of a number to a single '.'.
//
// If both '.' and ',' occur, the one that occurs later is the decimal point
// and the other one groups thousands. A lone ',' is the decimal point.
func decimalPoint(word string) string {
	comma := strings.Index(word, ",")
	dot := strings.Index(word, ".")

	switch {
	case comma < 0:
		// unchanged
	case dot >= 0 && comma < dot:
		word = strings.ReplaceAll(word, ",", "")
	default:
		word = strings.ReplaceAll(word, ".", "")
		word = strings.ReplaceAll(word, ",", ".")
	}

	return word
}

// ParseNumber parses a numeric literal word.
func ParseNumber(word string) (num Number, ok bool) {
	word = decimalPoint(word)
	word = strings.NewReplacer("ᴇ", "E", "e", "E").Replace(word)

	parts := numberRe.FindStringSubmatch(word)
	if parts == nil {
		return
	}

	num = Number{
		Negative:    parts[1] == "-",
		Mantissa:    parts[2],
		ExpNegative: parts[3] == "-",
		Exponent:    parts[4],
	}

	switch {
	case strings.ContainsAny(num.Mantissa, "0123456789"):
		ok = true
	case len(parts[1]) == 0 && len(num.Mantissa) == 0 && len(num.Exponent) != 0:
		// Bare exponent, as in E-5
		ok = true
	}

	if !ok {
		num = Number{}
	}

	return
}

// key returns the record for a single key of the root command table.
func (conv *Converter) key(token string) (inst Instruction) {
	inst.Path = []string{token}
	if node, ok := conv.table.Root().Child(token); ok {
		inst.Keycodes = []string{node.Keycode()}
	}
	return
}

// Keys returns the records to key in a number.
func (conv *Converter) Keys(num Number) (insts []Instruction) {
	for _, r := range num.Mantissa {
		insts = append(insts, conv.key(string(r)))
	}
	if num.Negative {
		insts = append(insts, conv.key("CHS"))
	}

	if len(num.Exponent) != 0 {
		insts = append(insts, conv.key("EEX"))
		if num.ExpNegative {
			insts = append(insts, conv.key("CHS"))
		}
		for _, r := range num.Exponent {
			insts = append(insts, conv.key(string(r)))
		}
	}

	return
}

// literal resolves a word that is a number or a constant expression.
// A word that is neither returns no records and no error.
func (conv *Converter) literal(word string) (insts []Instruction, err error) {
	if parts := exprRe.FindStringSubmatch(word); parts != nil {
		word, err = Evaluate(parts[1])
		if err != nil {
			return
		}
	}

	num, ok := ParseNumber(word)
	if !ok {
		return
	}

	insts = conv.Keys(num)

	return
}
