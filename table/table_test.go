// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package table

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
)

func TestNode(t *testing.T) {
	assert := assert.New(t)

	node := NewNode("44", "",
		Arg{"1", Leaf(" 1")},
		Arg{"2", Leaf(" 2")},
		Arg{"1", Leaf("xx")},
	)

	assert.False(node.Complete())
	assert.Equal(2, node.Len())
	assert.Equal([]string{"1", "2"}, node.Tokens())

	child, ok := node.Child("1")
	assert.True(ok)
	assert.Equal("xx", child.Keycode())
	assert.True(child.Complete())

	_, ok = node.Child("3")
	assert.False(ok)

	var visited []string
	node.Walk(func(path []string, child *Node) bool {
		visited = append(visited, strings.Join(path, " "))
		return true
	})
	assert.Equal([]string{"1", "2"}, visited)
}

func TestDefaultShared(t *testing.T) {
	assert := assert.New(t)

	tbl := Default()
	assert.Same(tbl, Default())

	sto, ok := tbl.Root().Child("STO")
	if !assert.True(ok) {
		return
	}
	tokens := sto.Tokens()
	tokens[0] = "Z"
	assert.NotEqual("Z", sto.Tokens()[0])

	_, ok = Default().Root().Child("STO")
	assert.True(ok)
	assert.Equal("44", sto.Keycode())
}

func TestFold(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Word   string
		Folded string
	}{
		{"sto", "STO"},
		{"Sqrt", "SQRT"},
		{"x≠y?", "X≠Y?"},
		{"ŷ,r", "Ŷ,R"},
		{"x=\u0338y", "X≠Y"}, // Composed by NFC.
		{"π", "Π"},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Folded, Fold(testcase.Word), testcase.Word)
	}
}

func TestAliasesReachable(t *testing.T) {
	assert := assert.New(t)

	tbl := Default()

	tokens := map[string]bool{}
	tbl.Root().Walk(func(path []string, child *Node) bool {
		tokens[path[len(path)-1]] = true
		return true
	})

	count := 0
	for spelling, token := range tbl.Aliases() {
		assert.True(tokens[token], "%v => %v", spelling, token)
		assert.Equal(Fold(spelling), spelling)
		count++
	}
	assert.Greater(count, 180)
}

func TestCanonical(t *testing.T) {
	assert := assert.New(t)

	tbl := Default()

	groups := []struct {
		Token     string
		Spellings []string
	}{
		{"SQR", []string{"SQR", "SQRT", "VX", "√X"}},
		{"x><y", []string{"X-><-Y", "X↔Y", "X⇔Y", "X><Y", "X~Y", "X-Y", "XY", "X<>Y", "X<->Y"}},
		{"R down", []string{"ROLL DOWN", "R DOWN", "RDN", "R↓", "R ↓", "R-V"}},
		{"R up", []string{"ROLL UP", "R UP", "R^", "R↑", "R⬆"}},
		{"CLEAR ∑", []string{"CLEAR SUM", "CL SUM", "SUM", "∑", "CLEAR SIGMA", "CL ∑"}},
		{">R", []string{"->R", "→R", ">R", "-R"}},
		{"Delta%", []string{"D%", "Δ%", "DELTA%", "DELTA %"}},
		{".5", []string{".5", ",5", "15"}},
		{"∑+", []string{"SUM+", "SIGMA+", "Σ+", "∑+"}},
	}

	for _, group := range groups {
		for _, spelling := range group.Spellings {
			token, ok := tbl.Canonical(spelling)
			assert.True(ok, spelling)
			assert.Equal(group.Token, token, spelling)
		}
	}

	_, ok := tbl.Canonical("FOO")
	assert.False(ok)
	_, ok = tbl.Canonical("MEM")
	assert.False(ok)
}

func TestRecombine(t *testing.T) {
	assert := assert.New(t)

	tbl := Default()

	table := []struct {
		Words    []string
		Expected []string
		Ok       bool
	}{
		{[]string{"x<=0?"}, []string{"TEST", "4"}, true},
		{[]string{"X!=Y", "loop"}, []string{"TEST", "6", "loop"}, true},
		{[]string{"X≠Y?"}, []string{"TEST", "0"}, true},
		{[]string{"sto+", "1"}, []string{"STO", "+", "1"}, true},
		{[]string{"RCL÷", "I"}, []string{"RCL", "/", "I"}, true},
		{[]string{"user", "sto", "A"}, []string{"uSTO", "A"}, true},
		{[]string{"STO", "ENTER"}, []string{"STO", "RAN#"}, true},
		{[]string{"STO", "1"}, []string{"STO", "1"}, false},
		{[]string{"TEST", "4"}, []string{"TEST", "4"}, false},
		{nil, nil, false},
	}

	for _, testcase := range table {
		out, ok := tbl.Recombine(testcase.Words)
		assert.Equal(testcase.Ok, ok, testcase.Words)
		assert.Equal(testcase.Expected, out, testcase.Words)
	}

	// Recombining a recombined phrase changes nothing.
	out, _ := tbl.Recombine([]string{"X>=Y?"})
	again, ok := tbl.Recombine(out)
	assert.False(ok)
	assert.Equal(out, again)
}

func TestPrefix(t *testing.T) {
	assert := assert.New(t)

	tbl := Default()

	key, ok := tbl.Prefix("LBL")
	assert.True(ok)
	assert.Equal(PREFIX_F, key)
	assert.Equal("42", tbl.PrefixKeycode(key))

	key, ok = tbl.Prefix("RTN")
	assert.True(ok)
	assert.Equal(PREFIX_G, key)
	assert.Equal("43", tbl.PrefixKeycode(key))

	_, ok = tbl.Prefix("STO")
	assert.False(ok)

	// Every prefixed command on the root has a node.
	for token := range tbl.prefix {
		if token == "(i)" {
			continue
		}
		_, ok := tbl.Root().Child(token)
		assert.True(ok, token)
	}
}

func TestTrie(t *testing.T) {
	assert := assert.New(t)

	root := Default().Root()

	path := func(tokens ...string) (codes []string, node *Node) {
		node = root
		for _, token := range tokens {
			child, ok := node.Child(token)
			if !assert.True(ok, tokens) {
				return
			}
			node = child
			codes = append(codes, node.Keycode())
		}
		return
	}

	table := []struct {
		Path     []string
		Keycodes []string
		Comment  string
	}{
		{[]string{"STO", "1"}, []string{"44", " 1"}, ""},
		{[]string{"STO", ".3"}, []string{"44", ".3"}, ""},
		{[]string{"STO", "+", "(i)"}, []string{"44", "40", "24"}, ""},
		{[]string{"STO", "g", "A"}, []string{"44", "43", "11"}, ""},
		{[]string{"RCL", "DIM", "(i)"}, []string{"45", "23", "24"}, ""},
		{[]string{"uSTO", "(i)"}, []string{"44", "25 u"}, ""},
		{[]string{"uRCL", "E"}, []string{"45", "15 u"}, ""},
		{[]string{"GTO", "I"}, []string{"22", "25"}, ""},
		{[]string{"LBL", "C"}, []string{"21", "13"}, ""},
		{[]string{"HYP^-1", "COS"}, []string{"22", "24"}, ""},
		{[]string{"TEST", "7"}, []string{"30", " 7"}, "x>y?"},
		{[]string{"D"}, []string{"14"}, "GSB D"},
		{[]string{"MATRIX", "5"}, []string{"16", " 5"}, ""},
	}

	for _, testcase := range table {
		codes, node := path(testcase.Path...)
		assert.Equal(testcase.Keycodes, codes, testcase.Path)
		if node != nil {
			assert.True(node.Complete(), testcase.Path)
			assert.Equal(testcase.Comment, node.Comment(), testcase.Path)
		}
	}

	// STO can not take a letter after an arithmetic operator.
	_, node := path("STO", "+")
	_, ok := node.Child("A")
	assert.False(ok)
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	format, err := ParseFormat("JSON")
	assert.NoError(err)
	assert.Equal(FORMAT_JSON, format)

	format, err = ParseFormat("cbor")
	assert.NoError(err)
	assert.Equal(FORMAT_CBOR, format)

	_, err = ParseFormat("yaml")
	assert.Equal(ErrFormat("yaml"), err)
}

func TestDump(t *testing.T) {
	assert := assert.New(t)

	dump := Default().Dump()
	assert.Equal(Default().Root().Len(), len(dump.Commands))
	assert.NotEmpty(dump.Aliases)
	assert.NotEmpty(dump.Shortcuts)

	var lbl Entry
	for _, entry := range dump.Commands {
		if entry.Token == "LBL" {
			lbl = entry
		}
	}
	assert.Equal("21", lbl.Keycode)
	assert.Equal("f", lbl.Prefix)
	assert.Len(lbl.Args, 25)

	buf := &bytes.Buffer{}
	err := dump.Encode(buf, FORMAT_JSON)
	assert.NoError(err)
	assert.True(json.Valid(buf.Bytes()))
	assert.Contains(buf.String(), `"token": "x><y"`)

	buf.Reset()
	err = dump.Encode(buf, FORMAT_CBOR)
	assert.NoError(err)

	var decoded Dump
	err = cbor.Unmarshal(buf.Bytes(), &decoded)
	assert.NoError(err)
	assert.Equal(dump, decoded)

	err = dump.Encode(buf, Format(7))
	assert.Error(err)
}
