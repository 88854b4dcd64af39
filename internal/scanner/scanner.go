// Package scanner converts JSON text into a forward-only stream of tokens.
//
// The scanner is lazy: each call to Next advances just far enough to produce
// one token. Whitespace between tokens is skipped and never emitted. End of
// input is reported as a token.EOF token, not an error.
package scanner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/jtree/internal/errors"
	"github.com/mcncl/jtree/internal/token"
)

// Scanner holds the full input and a cursor into it.
type Scanner struct {
	input []rune
	pos   int
}

// New creates a Scanner over the given document text.
func New(input string) *Scanner {
	return &Scanner{input: []rune(input)}
}

// peek returns the next character without consuming it.
func (s *Scanner) peek() (rune, bool) {
	if s.pos >= len(s.input) {
		return 0, false
	}
	return s.input[s.pos], true
}

// read consumes and returns the next character.
func (s *Scanner) read() (rune, bool) {
	c, ok := s.peek()
	if ok {
		s.pos++
	}
	return c, ok
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isSign(c rune) bool {
	return c == '-' || c == '+'
}

func isASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Next produces the next token. After the input is exhausted it keeps
// returning a token.EOF token. Any lexical violation is returned as a fatal
// error; the scanner should not be used after an error.
func (s *Scanner) Next() (token.Token, error) {
	for {
		c, ok := s.peek()
		if !ok {
			return token.Token{Kind: token.EOF}, nil
		}

		switch {
		case c == ' ' || c == '\t' || c == '\n':
			s.read()
			continue
		case c == '{':
			s.read()
			return token.Token{Kind: token.LeftBrace}, nil
		case c == '}':
			s.read()
			return token.Token{Kind: token.RightBrace}, nil
		case c == '[':
			s.read()
			return token.Token{Kind: token.LeftBracket}, nil
		case c == ']':
			s.read()
			return token.Token{Kind: token.RightBracket}, nil
		case c == ':':
			s.read()
			return token.Token{Kind: token.Colon}, nil
		case c == ',':
			s.read()
			return token.Token{Kind: token.Comma}, nil
		case c == '"':
			return s.scanString()
		case isDigit(c) || isSign(c) || c == '.':
			return s.scanNumber()
		case isASCIILetter(c):
			return s.scanKeyword()
		default:
			return token.Token{}, errors.NewLexError(
				fmt.Sprintf("cannot scan input at %q", c),
				errors.ErrUnexpectedCharacter,
			)
		}
	}
}

// scanString consumes the opening quote and copies characters verbatim until
// the closing quote. Backslash sequences are not decoded; they are stored as
// literal characters.
func (s *Scanner) scanString() (token.Token, error) {
	s.read() // opening quote

	var sb strings.Builder
	for {
		c, ok := s.read()
		if !ok {
			return token.Token{}, errors.NewLexError(
				"input ended inside a string literal",
				errors.ErrUnterminatedString,
			)
		}
		if c == '"' {
			break
		}
		sb.WriteRune(c)
	}
	return token.Token{Kind: token.String, Str: sb.String()}, nil
}

// scanInt consumes an optional leading sign followed by digits and parses
// them as a signed integer. An unparseable integer part yields 0, a lenient
// fallback inherited from the reference grammar rather than an error.
func (s *Scanner) scanInt() (int64, error) {
	var sb strings.Builder
	for {
		c, ok := s.peek()
		switch {
		case ok && isSign(c):
			if sb.Len() > 0 {
				return 0, errors.NewLexError(
					fmt.Sprintf("unexpected %q after digits", c),
					errors.ErrMisplacedSign,
				)
			}
			s.read()
			sb.WriteRune(c)
		case ok && isDigit(c):
			s.read()
			sb.WriteRune(c)
		default:
			n, err := strconv.ParseInt(sb.String(), 10, 64)
			if err != nil {
				return 0, nil
			}
			return n, nil
		}
	}
}

// scanFrac consumes a '.' and the digits after it, parsed together as a
// fractional magnitude in [0, 1). Reports absent if there is no '.' or the
// accumulated text does not parse.
func (s *Scanner) scanFrac() (float64, bool) {
	if c, ok := s.peek(); !ok || c != '.' {
		return 0, false
	}
	s.read()

	var sb strings.Builder
	sb.WriteByte('.')
	for {
		c, ok := s.peek()
		if !ok || !isDigit(c) {
			break
		}
		s.read()
		sb.WriteRune(c)
	}

	f, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// scanExp consumes an 'e' or 'E', an optional sign in first position, and
// digits, parsed as a signed integer exponent. Reports absent if there is no
// exponent marker or the accumulated text does not parse.
func (s *Scanner) scanExp() (int64, bool, error) {
	if c, ok := s.peek(); !ok || (c != 'e' && c != 'E') {
		return 0, false, nil
	}
	s.read()

	var sb strings.Builder
	for {
		c, ok := s.peek()
		switch {
		case ok && isSign(c):
			if sb.Len() > 0 {
				return 0, false, errors.NewLexError(
					fmt.Sprintf("unexpected %q in exponent", c),
					errors.ErrMisplacedSign,
				)
			}
			s.read()
			sb.WriteRune(c)
		case ok && isDigit(c):
			s.read()
			sb.WriteRune(c)
		default:
			n, err := strconv.ParseInt(sb.String(), 10, 64)
			if err != nil {
				return 0, false, nil
			}
			return n, true, nil
		}
	}
}

// scanNumber runs the three sequential sub-phases of the number grammar.
// Each phase decides presence by lookahead before consuming, so the scan
// always produces some number; worst case every field defaults.
func (s *Scanner) scanNumber() (token.Token, error) {
	n, err := s.scanInt()
	if err != nil {
		return token.Token{}, err
	}
	frac, hasFrac := s.scanFrac()
	exp, hasExp, err := s.scanExp()
	if err != nil {
		return token.Token{}, err
	}

	return token.Token{Kind: token.Number, Num: token.Num{
		Int:     n,
		Frac:    frac,
		HasFrac: hasFrac,
		Exp:     exp,
		HasExp:  hasExp,
	}}, nil
}

// scanKeyword consumes consecutive lowercase ASCII letters and matches them
// against the three literal keywords.
func (s *Scanner) scanKeyword() (token.Token, error) {
	var sb strings.Builder
	for {
		c, ok := s.peek()
		if !ok || c < 'a' || c > 'z' {
			break
		}
		s.read()
		sb.WriteRune(c)
	}

	switch sb.String() {
	case "null":
		return token.Token{Kind: token.Null}, nil
	case "true":
		return token.Token{Kind: token.Bool, Bool: true}, nil
	case "false":
		return token.Token{Kind: token.Bool, Bool: false}, nil
	default:
		return token.Token{}, errors.NewLexError(
			fmt.Sprintf("invalid keyword %q", sb.String()),
			errors.ErrInvalidKeyword,
		)
	}
}
