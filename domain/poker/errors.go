package poker

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors classifying every way hand text can be rejected.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrWrongCardCount   = errors.New("wrong card count")
	ErrMalformedCard    = errors.New("malformed card")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrInvalidCardToken = errors.New("invalid card token")
	ErrDuplicateCard    = errors.New("duplicate card")
)

// ParseError reports a rejected card or hand. Kind is one of the sentinel
// errors above, Token the offending input (if any) and Err the nested cause.
type ParseError struct {
	Kind  error
	Token string
	Msg   string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Msg
	if msg == "" && e.Kind != nil {
		msg = e.Kind.Error()
	}
	if msg == "" {
		msg = "parse error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause so errors.Is matches either.
func (e *ParseError) Unwrap() []error {
	if e == nil {
		return nil
	}
	var errs []error
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// quoteSymbol renders a single symbol byte as it appeared in the input:
// 'X' for ASCII, '\xNN' for anything else.
func quoteSymbol(b byte) string {
	if b < utf8.RuneSelf {
		return fmt.Sprintf("%q", b)
	}
	return fmt.Sprintf(`'\x%02x'`, b)
}

// invalidSymbol reports a rank or suit symbol that is not a single ASCII
// character. sym is quoted as written, e.g. "♥" or "\xff".
func invalidSymbol(domain, sym string) error {
	if len(sym) == 1 {
		return parseErrorf(ErrInvalidSymbol, sym, "invalid %s symbol %s", domain, quoteSymbol(sym[0]))
	}
	return parseErrorf(ErrInvalidSymbol, sym, "invalid %s symbol %q", domain, sym)
}

func parseErrorf(kind error, token string, format string, args ...any) error {
	return &ParseError{Kind: kind, Token: token, Msg: fmt.Sprintf(format, args...)}
}
