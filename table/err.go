package table

import (
	"github.com/ezrec/hp15c/translate"
)

var f = translate.From

// ErrFormat is an unknown dump format.
type ErrFormat string

func (err ErrFormat) Error() string {
	return f("'%v' is not a table format", string(err))
}
