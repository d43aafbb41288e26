package config

import (
	"errors"

	"github.com/ezrec/hp15c/translate"
)

var f = translate.From

// ErrConfigKey is a settings key that is not understood.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("'%v' is not a setting", string(err))
}

// ErrConfig is a settings file that could not be read.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}

// Is matches any ErrConfigKey when target is ErrUnknownKey.
func (err ErrConfigKey) Is(target error) bool {
	return target == ErrUnknownKey
}

// ErrUnknownKey matches every ErrConfigKey.
var ErrUnknownKey = errors.New(f("unknown setting"))
