package table

// Prefix is a shift key of the HP-15C keypad.
type Prefix int

//go:generate go tool stringer -linecomment -type=Prefix
const (
	PREFIX_F = Prefix(0) // f
	PREFIX_G = Prefix(1) // g
)
