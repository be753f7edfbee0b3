package markdown

import (
	"errors"
	"fmt"
)

// Sentinel errors for Markdown conversion.
var (
	ErrUnterminatedDelimiter   = errors.New("unterminated delimiter")
	ErrUnsupportedFragmentKind = errors.New("unsupported fragment kind")
)

// DelimiterError reports a delimiter pass that found an odd number of
// delimiters in a fragment.
type DelimiterError struct {
	Delimiter string
	Source    Fragment
}

func (e *DelimiterError) Error() string {
	return fmt.Sprintf("%s: node '%s' is missing a closing delimiter '%s'",
		ErrUnterminatedDelimiter, e.Source, e.Delimiter)
}

func (e *DelimiterError) Unwrap() error {
	return ErrUnterminatedDelimiter
}
