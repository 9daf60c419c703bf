package cli

import "fmt"

// UsageError is returned when the command line has the wrong number of
// arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected %d arguments, got %d", len(argNames), e.Got)
}

// ParseError is returned when an argument is not a valid floating-point number.
type ParseError struct {
	Name  string // positional name, e.g. "o_lat_deg"
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: invalid number %q", e.Name, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
