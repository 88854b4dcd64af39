// Package parser builds a value tree from the scanner's token stream using
// recursive descent with one token of lookahead.
package parser

import (
	"fmt"
	"os"
	"strings"

	"github.com/mcncl/jtree/internal/errors"
	"github.com/mcncl/jtree/internal/scanner"
	"github.com/mcncl/jtree/internal/token"
	"github.com/mcncl/jtree/internal/value"
)

// Parser consumes tokens one lookahead at a time and recursively constructs
// the value tree. Each Parser owns its own scanner, so every parse call is
// independent; a Parser is good for a single Parse.
type Parser struct {
	sc     *scanner.Scanner
	peeked *token.Token

	// depth tracks container nesting. maxDepth 0 means unlimited.
	depth    int
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits container nesting. Inputs nested deeper than n fail
// with a syntax error instead of exhausting the call stack. n <= 0 leaves
// nesting unbounded.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		p.maxDepth = n
	}
}

// New creates a Parser over the given document text.
func New(input string, opts ...Option) *Parser {
	p := &Parser{sc: scanner.New(input)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// peek returns the next token without consuming it.
func (p *Parser) peek() (token.Token, error) {
	if p.peeked == nil {
		tk, err := p.sc.Next()
		if err != nil {
			return token.Token{}, err
		}
		p.peeked = &tk
	}
	return *p.peeked, nil
}

// next consumes and returns the next token.
func (p *Parser) next() (token.Token, error) {
	tk, err := p.peek()
	if err != nil {
		return token.Token{}, err
	}
	p.peeked = nil
	return tk, nil
}

// Parse parses the document and returns the root of the value tree. The
// first token must open an object or array; a bare scalar document is
// rejected.
func (p *Parser) Parse() (value.Value, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tk.Kind {
	case token.LeftBrace:
		return p.parseObject()
	case token.LeftBracket:
		return p.parseArray()
	default:
		return nil, errors.NewSyntaxError(
			fmt.Sprintf("expected '{' or '[' at document start, got %s", tk),
			errors.ErrNotADocument,
		)
	}
}

// parseValue dispatches on the lookahead token at a value position. Scalars
// are consumed directly; '{' and '[' recurse into their container parsers.
func (p *Parser) parseValue() (value.Value, error) {
	tk, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch tk.Kind {
	case token.Null:
		p.next()
		return value.Null{}, nil
	case token.Bool:
		p.next()
		return value.Bool(tk.Bool), nil
	case token.String:
		p.next()
		return value.String(tk.Str), nil
	case token.Number:
		p.next()
		return value.Number{Num: tk.Num}, nil
	case token.LeftBrace:
		return p.parseObject()
	case token.LeftBracket:
		return p.parseArray()
	default:
		return nil, errors.NewSyntaxError(
			fmt.Sprintf("expected a value, got %s", tk), nil,
		)
	}
}

func (p *Parser) enter() error {
	p.depth++
	if p.maxDepth > 0 && p.depth > p.maxDepth {
		return errors.NewSyntaxError(
			fmt.Sprintf("input is nested deeper than %d levels", p.maxDepth),
			errors.ErrDepthExceeded,
		)
	}
	return nil
}

func (p *Parser) parseObject() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if _, err := p.next(); err != nil { // consume '{'
		return nil, err
	}

	obj := value.NewObject()
	if tk, err := p.peek(); err != nil {
		return nil, err
	} else if tk.Kind == token.RightBrace {
		p.next()
		return obj, nil
	}

	for {
		key, err := p.next()
		if err != nil {
			return nil, err
		}
		if key.Kind != token.String {
			return nil, errors.NewSyntaxError(
				fmt.Sprintf("expected object key, got %s", key), nil,
			)
		}
		colon, err := p.next()
		if err != nil {
			return nil, err
		}
		if colon.Kind != token.Colon {
			return nil, errors.NewSyntaxError(
				fmt.Sprintf("expected ':' after key %q, got %s", key.Str, colon), nil,
			)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Set(key.Str, val)

		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		if sep.Kind == token.RightBrace {
			return obj, nil
		}
		if sep.Kind != token.Comma {
			return nil, errors.NewSyntaxError(
				fmt.Sprintf("expected ',' or '}' after value for key %q, got %s", key.Str, sep), nil,
			)
		}
		// a comma commits the loop to another key/value pair
	}
}

func (p *Parser) parseArray() (value.Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer func() { p.depth-- }()

	if _, err := p.next(); err != nil { // consume '['
		return nil, err
	}

	arr := value.Array{}
	if tk, err := p.peek(); err != nil {
		return nil, err
	} else if tk.Kind == token.RightBracket {
		p.next()
		return arr, nil
	}

	for {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		if sep.Kind == token.RightBracket {
			return arr, nil
		}
		if sep.Kind != token.Comma {
			return nil, errors.NewSyntaxError(
				fmt.Sprintf("expected ',' or ']' after array element, got %s", sep), nil,
			)
		}
	}
}

// ParseString parses a JSON document held in a string
func ParseString(jsonString string, opts ...Option) (value.Value, error) {
	if strings.TrimSpace(jsonString) == "" {
		return nil, errors.NewInputError("input string is empty", errors.ErrEmptyInput)
	}
	return New(jsonString, opts...).Parse()
}

// ParseFile parses a JSON document from a file path
func ParseFile(filePath string, opts ...Option) (value.Value, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to read file '%s'", filePath),
			err,
		)
	}
	if len(data) == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return ParseString(string(data), opts...)
}
