package mnemonic

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/hp15c/table"
)

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	insts, rest, err := conv.Resolve([]string{"f", "HYP", "COS", "later"})
	assert.NoError(err)
	assert.Equal([]string{"later"}, rest)
	assert.Equal([]Instruction{{
		Path:     []string{"HYP", "COS"},
		Keycodes: []string{"42", "22", "24"},
		Prefix:   "f",
	}}, insts)

	insts, rest, err = conv.Resolve([]string{"x≠y?"})
	assert.NoError(err)
	assert.Empty(rest)
	assert.Equal([]Instruction{{
		Path:     []string{"TEST", "0"},
		Keycodes: []string{"43", "30", " 0"},
		Prefix:   "g",
		Comment:  "x!=0?",
	}}, insts)

	insts, rest, err = conv.Resolve([]string{"x!=y?"})
	assert.NoError(err)
	assert.Empty(rest)
	assert.Equal([]string{"TEST", "6"}, insts[0].Path)

	insts, rest, err = conv.Resolve(nil)
	assert.NoError(err)
	assert.Empty(insts)
	assert.Empty(rest)
}

// completePaths returns every complete command path of the trie, with the
// keycodes along it. Manually typed shift keys are left out.
func completePaths(tbl *table.Table) (paths [][]string, keycodes [][]string) {
	tbl.Root().Walk(func(path []string, child *table.Node) bool {
		if isPrefix(path[0]) {
			return true
		}
		if child.Complete() {
			paths = append(paths, path)
		}
		return true
	})

	for _, path := range paths {
		var codes []string
		if key, ok := tbl.Prefix(path[0]); ok {
			codes = append(codes, tbl.PrefixKeycode(key))
		}
		node := tbl.Root()
		for _, token := range path {
			node, _ = node.Child(token)
			codes = append(codes, node.Keycode())
		}
		keycodes = append(keycodes, codes)
	}

	return
}

func TestResolveEveryPath(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	paths, keycodes := completePaths(conv.Table())
	assert.Greater(len(paths), 500)

	for n, path := range paths {
		insts, rest, err := conv.Resolve(path)
		if !assert.NoError(err, path) {
			continue
		}
		assert.Empty(rest, path)
		if assert.Len(insts, 1, path) {
			assert.Equal(path, insts[0].Path, path)
			assert.Equal(keycodes[n], insts[0].Keycodes, path)
		}
	}
}

func TestResolveEveryAlias(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()
	tbl := conv.Table()

	paths, _ := completePaths(tbl)

	// First complete path through each token.
	type use struct {
		path  []string
		index int
	}
	uses := map[string]use{}
	for _, path := range paths {
		for index, token := range path {
			if _, ok := uses[token]; !ok {
				uses[token] = use{path, index}
			}
		}
	}

	count := 0
	for spelling, token := range tbl.Aliases() {
		at, ok := uses[token]
		if !assert.True(ok, "%v => %v", spelling, token) {
			continue
		}

		words := slices.Concat(at.path[:at.index], strings.Fields(spelling), at.path[at.index+1:])
		expected, _, err := conv.Resolve(at.path)
		assert.NoError(err, at.path)

		insts, rest, err := conv.Resolve(words)
		assert.NoError(err, words)
		assert.Empty(rest, words)
		assert.Equal(expected, insts, words)
		count++
	}
	assert.Greater(count, 180)
}

func TestResolveDiagnostic(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	table := []struct {
		Words   string
		Kind    DiagKind
		Err     error
		Token   string
		Path    []string
		Ordinal string
		Rest    []string
	}{
		{"FOO", DIAG_COMMAND_UNKNOWN, ErrCommandUnknown, "FOO", nil, "", []string{}},
		{"foo bar", DIAG_COMMAND_UNKNOWN, ErrCommandUnknown, "FOO", nil, "", []string{"bar"}},
		{"STO", DIAG_NO_ARGUMENT, ErrNoArgument, "", []string{"STO"}, "1st", []string{}},
		{"STO Z", DIAG_ARGUMENT_INVALID, ErrArgumentInvalid, "Z", []string{"STO"}, "1st", []string{}},
		{"STO G", DIAG_ARGUMENT_MISSING, ErrArgumentMissing, "", []string{"STO", "g"}, "2nd", []string{}},
		{"RCL + Q", DIAG_ARGUMENT_INVALID, ErrArgumentInvalid, "Q", []string{"RCL", "+"}, "2nd", []string{}},
		{"STO Z 1", DIAG_ARGUMENT_INVALID, ErrArgumentInvalid, "Z", []string{"STO"}, "1st", []string{"1"}},
		{"STO MATRIX", DIAG_ARGUMENT_MISSING, ErrArgumentMissing, "", []string{"STO", "MATRIX"}, "2nd", []string{}},
		{"GTO", DIAG_NO_ARGUMENT, ErrNoArgument, "", []string{"GTO"}, "1st", []string{}},
		{"$(1/0)", DIAG_EXPRESSION_INVALID, ErrExpressionInvalid, "$(1/0)", nil, "", []string{}},
	}

	for _, entry := range table {
		insts, rest, err := conv.Resolve(strings.Fields(entry.Words))
		assert.Empty(insts, entry.Words)
		assert.Equal(entry.Rest, rest, entry.Words)
		if !assert.Error(err, entry.Words) {
			continue
		}
		assert.True(errors.Is(err, entry.Err), entry.Words)

		var diag *Diagnostic
		if !assert.True(errors.As(err, &diag), entry.Words) {
			continue
		}
		assert.Equal(entry.Kind, diag.Kind, entry.Words)
		assert.Equal(entry.Token, diag.Token, entry.Words)
		assert.Equal(entry.Path, diag.Path, entry.Words)
		if len(entry.Ordinal) != 0 {
			assert.Equal(entry.Ordinal, diag.Ordinal(), entry.Words)
		}
		if diag.Kind != DIAG_EXPRESSION_INVALID {
			assert.NotEmpty(diag.Alternatives, entry.Words)
		}
	}
}

func TestDiagnosticAlternatives(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	_, _, err := conv.Resolve([]string{"FOO"})
	diag := err.(*Diagnostic)
	assert.Equal(conv.Table().Root().Len(), len(diag.Alternatives))

	_, _, err = conv.Resolve([]string{"STO", "g"})
	diag = err.(*Diagnostic)
	assert.Equal([]Alternative{
		{Token: "(i)"},
		{Token: "A"},
		{Token: "B"},
		{Token: "C"},
		{Token: "D"},
		{Token: "E"},
	}, diag.Alternatives)

	_, _, err = conv.Resolve([]string{"TEST"})
	diag = err.(*Diagnostic)
	assert.Equal(10, len(diag.Alternatives))
	assert.Equal(Alternative{Token: "7", Comment: "x>y?"}, diag.Alternatives[7])
}

func TestDiagnosticSuggestions(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	_, _, err := conv.Resolve([]string{"LST"})
	diag := err.(*Diagnostic)
	assert.Equal(DIAG_COMMAND_UNKNOWN, diag.Kind)
	if assert.NotEmpty(diag.Suggestions) {
		assert.Equal("LSTx", diag.Suggestions[0])
	}
	assert.LessOrEqual(len(diag.Suggestions), SUGGESTION_MAX)
	assert.Contains(diag.Markup(), `Did you mean <span class="MCcommand">LSTx</span>`)

	_, _, err = conv.Resolve([]string{"Q"})
	diag = err.(*Diagnostic)
	assert.Empty(diag.Suggestions)
	assert.NotContains(diag.Markup(), "Did you mean")
}

func TestDiagnosticOrdinal(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		Path    int
		Ordinal string
	}{
		{1, "1st"},
		{2, "2nd"},
		{3, "3rd"},
		{4, "4th"},
		{11, "11th"},
	}

	for _, entry := range table {
		diag := &Diagnostic{Path: make([]string, entry.Path)}
		assert.Equal(entry.Ordinal, diag.Ordinal())
	}
}

func TestDiagnosticError(t *testing.T) {
	assert := assert.New(t)

	conv := NewConverter()

	_, _, err := conv.Resolve([]string{"foo"})
	assert.Equal("command FOO unknown", err.Error())

	_, _, err = conv.Resolve([]string{"STO", "Z"})
	assert.Equal("STO: 1st argument Z invalid", err.Error())

	_, _, err = conv.Resolve([]string{"STO"})
	assert.Equal("STO: 1st argument missing", err.Error())

	_, _, err = conv.Resolve([]string{"$('x')"})
	assert.True(errors.Is(err, ErrExpressionInvalid))
	assert.True(errors.Is(err, ErrExpressionConstant))
	var expr *ErrExpression
	if assert.True(errors.As(err, &expr)) {
		assert.Equal("'x'", expr.Expr)
	}
	assert.Contains(err.(*Diagnostic).Markup(), `The expression <span class="MCargument">$('x')</span>`)

	_, _, err = conv.Resolve([]string{"$(None)"})
	assert.True(errors.Is(err, ErrExpressionType))
}
