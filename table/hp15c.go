// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"fmt"
	"slices"
)

// Letter keys A to E, in keypad order.
var letters = []string{"A", "B", "C", "D", "E"}

// letterCode returns the keycode of letter key n (0 for A).
func letterCode(n int) string {
	return fmt.Sprintf("1%d", n+1)
}

// digitCode returns the keycode of digit key n.
func digitCode(n int) string {
	return fmt.Sprintf(" %d", n)
}

// argDigits returns the argument set 0 to 9.
func argDigits() (args []Arg) {
	for n := range 10 {
		args = append(args, Arg{fmt.Sprint(n), Leaf(digitCode(n))})
	}
	return
}

// argDotDigits returns the argument set .0 to .9
func argDotDigits() (args []Arg) {
	for n := range 10 {
		dotted := fmt.Sprintf(".%d", n)
		args = append(args, Arg{dotted, Leaf(dotted)})
	}
	return
}

// argLetters returns the argument set A to E, with a keycode qualifier.
func argLetters(qualifier string) (args []Arg) {
	for n, letter := range letters {
		args = append(args, Arg{letter, Leaf(letterCode(n) + qualifier)})
	}
	return
}

// argLabels returns the label arguments: 0-9, .0-.9, A-E
func argLabels() []Arg {
	return slices.Concat(argDigits(), argDotDigits(), argLetters(""))
}

// argRegisters returns the storage register arguments.
func argRegisters() []Arg {
	return slices.Concat(argDigits(), argDotDigits(), []Arg{
		{"(i)", Leaf("24")},
		{"I", Leaf("25")},
	})
}

// argArithmetic returns the register arithmetic operators of STO and RCL.
func argArithmetic() []Arg {
	return []Arg{
		{"÷", NewNode("10", "", argRegisters()...)},
		{"×", NewNode("20", "", argRegisters()...)},
		{"-", NewNode("30", "", argRegisters()...)},
		{"+", NewNode("40", "", argRegisters()...)},
	}
}

// argTrigonometry returns SIN, COS and TAN.
func argTrigonometry() []Arg {
	return []Arg{
		{"SIN", Leaf("23")},
		{"COS", Leaf("24")},
		{"TAN", Leaf("25")},
	}
}

// argIndex returns the indirect I argument.
func argIndex() []Arg {
	return []Arg{{"I", Leaf("25")}}
}

// argTests returns the TEST n variants.
func argTests() (args []Arg) {
	comments := []string{
		"x!=0?", "x>0?", "x<0?", "x>=0?", "x<=0?",
		"x=y?", "x!=y?", "x>y?", "x<y?", "x>=y?",
	}
	for n, comment := range comments {
		args = append(args, Arg{fmt.Sprint(n), NewNode(digitCode(n), comment)})
	}
	return
}

// storeRecall builds the STO or RCL subtree.
func storeRecall(keycode string, dim bool) *Node {
	args := slices.Concat(
		argRegisters(),
		argLetters(""),
		argArithmetic(),
		[]Arg{
			{"RAN#", Leaf("36")},
			{"RESULT", Leaf("26")},
			{"g", NewNode("43", "", slices.Concat(
				[]Arg{{"(i)", Leaf("24")}},
				argLetters(""),
			)...)},
			{"MATRIX", NewNode("16", "", argLetters("")...)},
		},
	)
	if dim {
		args = append(args, Arg{"DIM", NewNode("23", "", slices.Concat(
			[]Arg{{"(i)", Leaf("24")}},
			argLetters(""),
		)...)})
	}

	return NewNode(keycode, "", args...)
}

// userStoreRecall builds the USER mode STO or RCL subtree.
func userStoreRecall(keycode string) *Node {
	return NewNode(keycode, "USER mode", slices.Concat(
		[]Arg{{"(i)", Leaf("25 u")}},
		argLetters(" u"),
	)...)
}

// hp15cCommands builds the HP-15C command trie.
func hp15cCommands() *Node {
	var root []Arg

	leaf := func(token, keycode string) {
		root = append(root, Arg{token, Leaf(keycode)})
	}
	branch := func(token, keycode string, args ...Arg) {
		root = append(root, Arg{token, NewNode(keycode, "", args...)})
	}

	// Unshifted keys.
	leaf("SQR", "11")
	leaf("e^x", "12")
	leaf("10^x", "13")
	leaf("y^x", "14")
	leaf("1/x", "15")
	leaf("CHS", "16")
	leaf("÷", "10")
	branch("GTO", "22", slices.Concat(argLabels(), argIndex())...)
	leaf("EEX", "26")
	leaf("×", "20")
	leaf("R/S", "31")
	branch("GSB", "32", slices.Concat(argLabels(), argIndex())...)
	leaf("R down", "33")
	leaf("x><y", "34")
	leaf("ENTER", "36")
	leaf("-", "30")
	leaf("f", "42")
	leaf("g", "43")
	root = append(root,
		Arg{"STO", storeRecall("44", false)},
		Arg{"uSTO", userStoreRecall("44")},
		Arg{"RCL", storeRecall("45", true)},
		Arg{"uRCL", userStoreRecall("45")},
	)
	leaf(".", "48")
	leaf("∑+", "49")
	leaf("+", "40")

	// f shifted keys.
	branch("MATRIX", "16", argDigits()...)
	branch("FIX", " 7", slices.Concat(argDigits(), argIndex())...)
	branch("SCI", " 8", slices.Concat(argDigits(), argIndex())...)
	branch("ENG", " 9", slices.Concat(argDigits(), argIndex())...)
	branch("SOLVE", "10", argLabels()...)
	branch("LBL", "21", argLabels()...)
	branch("HYP", "22", argTrigonometry()...)
	branch("DIM", "23", slices.Concat(
		[]Arg{{"(i)", Leaf("24")}},
		argIndex(),
		argLetters(""),
	)...)
	leaf("I", "25")
	branch("RESULT", "26", argLetters("")...)
	branch("x><", " 4", slices.Concat(argRegisters(), argLetters(""))...)
	branch("DSE", " 5", slices.Concat(argRegisters(), argLetters(""))...)
	branch("ISG", " 6", slices.Concat(argRegisters(), argLetters(""))...)
	branch("INTEGRATE", "20", argLabels()...)
	leaf("PSE", "31")
	leaf("CLEAR ∑", "32")
	leaf("CLEAR REG", "34")
	leaf("RAN#", "36")
	leaf(">R", " 1")
	leaf(">H.MS", " 2")
	leaf(">RAD", " 3")
	leaf("Re><Im", "30")
	leaf("FRAC", "44")
	leaf("x!", " 0")
	leaf("y,r", "48")
	leaf("L.R.", "49")
	leaf("Py,x", "40")

	// g shifted keys.
	leaf("x^2", "11")
	leaf("LN", "12")
	leaf("LOG", "13")
	leaf("%", "14")
	leaf("Delta%", "15")
	leaf("ABS", "16")
	leaf("DEG", " 7")
	leaf("RAD", " 8")
	leaf("GRD", " 9")
	leaf("x<=y?", "10")
	branch("HYP^-1", "22", argTrigonometry()...)
	leaf("SIN^-1", "23")
	leaf("COS^-1", "24")
	leaf("TAN^-1", "25")
	leaf("pi", "26")
	branch("SF", " 4", slices.Concat(argDigits(), argIndex())...)
	branch("CF", " 5", slices.Concat(argDigits(), argIndex())...)
	branch("F?", " 6", slices.Concat(argDigits(), argIndex())...)
	leaf("x=0?", "20")
	leaf("RTN", "32")
	leaf("R up", "33")
	leaf("RND", "34")
	leaf("CLx", "35")
	leaf("LSTx", "36")
	leaf(">P", " 1")
	leaf(">H", " 2")
	leaf(">DEG", " 3")
	branch("TEST", "30", argTests()...)
	leaf("INT", "44")
	leaf("x mean", " 0")
	leaf("s", "48")
	leaf("∑-", "49")
	leaf("Cy,x", "40")

	// Digit keys, the label keys (run as GSB) and trigonometry.
	root = append(root, argDigits()...)
	for n, letter := range letters {
		root = append(root, Arg{letter, NewNode(letterCode(n), "GSB "+letter)})
	}
	root = append(root, argTrigonometry()...)

	return NewNode("", "", root...)
}

// hp15cPrefix maps top level tokens to their shift key.
var hp15cPrefix = map[string]Prefix{
	"A":         PREFIX_F,
	"B":         PREFIX_F,
	"C":         PREFIX_F,
	"D":         PREFIX_F,
	"E":         PREFIX_F,
	"MATRIX":    PREFIX_F,
	"FIX":       PREFIX_F,
	"SCI":       PREFIX_F,
	"ENG":       PREFIX_F,
	"SOLVE":     PREFIX_F,
	"LBL":       PREFIX_F,
	"HYP":       PREFIX_F,
	"DIM":       PREFIX_F,
	"(i)":       PREFIX_F,
	"I":         PREFIX_F,
	"RESULT":    PREFIX_F,
	"x><":       PREFIX_F,
	"DSE":       PREFIX_F,
	"ISG":       PREFIX_F,
	"INTEGRATE": PREFIX_F,
	"PSE":       PREFIX_F,
	"CLEAR ∑":   PREFIX_F,
	"CLEAR REG": PREFIX_F,
	"RAN#":      PREFIX_F,
	">R":        PREFIX_F,
	">H.MS":     PREFIX_F,
	">RAD":      PREFIX_F,
	"Re><Im":    PREFIX_F,
	"FRAC":      PREFIX_F,
	"x!":        PREFIX_F,
	"y,r":       PREFIX_F,
	"L.R.":      PREFIX_F,
	"Py,x":      PREFIX_F,

	"x^2":    PREFIX_G,
	"LN":     PREFIX_G,
	"LOG":    PREFIX_G,
	"%":      PREFIX_G,
	"Delta%": PREFIX_G,
	"ABS":    PREFIX_G,
	"DEG":    PREFIX_G,
	"RAD":    PREFIX_G,
	"GRD":    PREFIX_G,
	"x<=y?":  PREFIX_G,
	"HYP^-1": PREFIX_G,
	"SIN^-1": PREFIX_G,
	"COS^-1": PREFIX_G,
	"TAN^-1": PREFIX_G,
	"pi":     PREFIX_G,
	"SF":     PREFIX_G,
	"CF":     PREFIX_G,
	"F?":     PREFIX_G,
	"x=0?":   PREFIX_G,
	"RTN":    PREFIX_G,
	"R up":   PREFIX_G,
	"RND":    PREFIX_G,
	"CLx":    PREFIX_G,
	"LSTx":   PREFIX_G,
	">P":     PREFIX_G,
	">H":     PREFIX_G,
	">DEG":   PREFIX_G,
	"TEST":   PREFIX_G,
	"INT":    PREFIX_G,
	"x mean": PREFIX_G,
	"s":      PREFIX_G,
	"∑-":     PREFIX_G,
	"Cy,x":   PREFIX_G,
}
