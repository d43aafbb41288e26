// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package mnemonic

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ezrec/hp15c/internal"
	"github.com/ezrec/hp15c/table"
)

// DiagKind is the class of a resolution failure.
type DiagKind int

//go:generate go tool stringer -linecomment -type=DiagKind
const (
	DIAG_COMMAND_UNKNOWN    = DiagKind(0) // command unknown
	DIAG_NO_ARGUMENT        = DiagKind(1) // no argument
	DIAG_ARGUMENT_MISSING   = DiagKind(2) // argument missing
	DIAG_ARGUMENT_INVALID   = DiagKind(3) // argument invalid
	DIAG_EXPRESSION_INVALID = DiagKind(4) // expression invalid
)

var diagErr = map[DiagKind]error{
	DIAG_COMMAND_UNKNOWN:    ErrCommandUnknown,
	DIAG_NO_ARGUMENT:        ErrNoArgument,
	DIAG_ARGUMENT_MISSING:   ErrArgumentMissing,
	DIAG_ARGUMENT_INVALID:   ErrArgumentInvalid,
	DIAG_EXPRESSION_INVALID: ErrExpressionInvalid,
}

// SUGGESTION_MAX is the number of close commands offered for an unknown one.
const SUGGESTION_MAX = 3

// Alternative is a valid continuation at the point of failure.
type Alternative struct {
	Token   string
	Comment string
}

// Diagnostic describes a statement that could not be resolved.
type Diagnostic struct {
	Kind         DiagKind
	Token        string        // Offending word, folded. Empty if input ran out.
	Path         []string      // Canonical tokens resolved before the failure.
	Words        []string      // Words of the statement.
	Used         int           // Words consumed before the failure.
	Alternatives []Alternative // Valid continuations.
	Suggestions  []string      // Commands close to an unknown one.
	Err          error         // Cause, for expressions.
}

// Ordinal names the position of the failing argument: 1st, 2nd, 3rd, 4th...
func (diag *Diagnostic) Ordinal() string {
	switch n := len(diag.Path); n {
	case 1:
		return f("1st")
	case 2:
		return f("2nd")
	case 3:
		return f("3rd")
	default:
		return f("%vth", fmt.Sprint(n))
	}
}

func (diag *Diagnostic) Error() string {
	path := strings.Join(diag.Path, " ")

	switch diag.Kind {
	case DIAG_COMMAND_UNKNOWN:
		return f("command %v unknown", diag.Token)
	case DIAG_ARGUMENT_INVALID:
		return f("%v: %v argument %v invalid", path, diag.Ordinal(), diag.Token)
	case DIAG_EXPRESSION_INVALID:
		return f("expression %v invalid: %v", diag.Token, diag.Err)
	default:
		return f("%v: %v argument missing", path, diag.Ordinal())
	}
}

func (diag *Diagnostic) Unwrap() []error {
	errs := []error{diagErr[diag.Kind]}
	if diag.Err != nil {
		errs = append(errs, diag.Err)
	}
	return errs
}

// Markup returns the explanation with inline span markup. All user
// supplied text is escaped.
func (diag *Diagnostic) Markup() string {
	command := func(text string) string {
		return internal.Span(internal.CLASS_COMMAND, internal.Escape(text))
	}
	argument := func(text string) string {
		return internal.Span(internal.CLASS_ARGUMENT, internal.Escape(text))
	}

	var alts []string
	for _, alt := range diag.Alternatives {
		text := internal.Escape(alt.Token)
		if len(alt.Comment) != 0 {
			text += " (" + internal.Escape(alt.Comment) + ")"
		}
		alts = append(alts, internal.Span(internal.CLASS_ARGUMENT, text))
	}
	list := strings.Join(alts, ", ")
	path := strings.Join(diag.Path, " ")

	switch diag.Kind {
	case DIAG_COMMAND_UNKNOWN:
		text := f("The command %v is unknown.\n", command(diag.Token))
		if len(diag.Suggestions) != 0 {
			var names []string
			for _, name := range diag.Suggestions {
				names = append(names, command(name))
			}
			text += f("Did you mean %v?\n", strings.Join(names, f(" or ")))
		}
		return text + f("Valid commands are:\n%v\n", list)
	case DIAG_NO_ARGUMENT:
		return f("The %v argument is missing: %v can not be called with no arguments.\nValid arguments are:\n%v\n",
			diag.Ordinal(), command(path), list)
	case DIAG_ARGUMENT_MISSING:
		return f("The %v argument is missing: %v is valid only with arguments like:\n%v\n",
			diag.Ordinal(), command(path), list)
	case DIAG_ARGUMENT_INVALID:
		return f("The %v argument is invalid: %v is not a parameter of %v.\nValid parameters are:\n%v\n",
			diag.Ordinal(), argument(diag.Token), command(path), list)
	default:
		return f("The expression %v is invalid: %v\n",
			argument(diag.Token), internal.Escape(fmt.Sprint(diag.Err)))
	}
}

// alternatives lists the children of a node.
func alternatives(node *table.Node) (alts []Alternative) {
	for token, child := range node.Children() {
		alts = append(alts, Alternative{Token: token, Comment: child.Comment()})
	}
	return
}

// suggest ranks the root commands whose spellings fuzzily contain a word.
func (conv *Converter) suggest(word string) (tokens []string) {
	if utf8.RuneCountInString(word) < 2 {
		return
	}

	var spellings []string
	for spelling, token := range conv.table.Aliases() {
		if _, ok := conv.table.Root().Child(token); ok {
			spellings = append(spellings, spelling)
		}
	}

	ranks := fuzzy.RankFindFold(word, spellings)
	sort.Stable(ranks)

	seen := map[string]bool{}
	for _, rank := range ranks {
		token, _ := conv.table.Canonical(rank.Target)
		if seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
		if len(tokens) == SUGGESTION_MAX {
			break
		}
	}

	return
}

// diagnose classifies a failed descent.
func (conv *Converter) diagnose(words []string, desc descent) (diag *Diagnostic) {
	diag = &Diagnostic{
		Path:         desc.path,
		Words:        words,
		Used:         desc.used,
		Alternatives: alternatives(desc.node),
	}

	switch {
	case desc.used == 0:
		diag.Kind = DIAG_COMMAND_UNKNOWN
		diag.Token = table.Fold(words[0])
		diag.Suggestions = conv.suggest(diag.Token)
	case desc.used >= len(words) && len(desc.path) == 1:
		diag.Kind = DIAG_NO_ARGUMENT
	case desc.used >= len(words):
		diag.Kind = DIAG_ARGUMENT_MISSING
	default:
		diag.Kind = DIAG_ARGUMENT_INVALID
		diag.Token = table.Fold(words[desc.used])
	}

	return
}
