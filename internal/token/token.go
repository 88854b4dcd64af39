// Package token defines the lexical units produced by the scanner.
package token

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies the type of a token.
type Kind int

const (
	// EOF marks the end of the input. It is a sentinel, never part of a
	// document.
	EOF Kind = iota

	LeftBrace    // {
	RightBrace   // }
	LeftBracket  // [
	RightBracket // ]
	Colon        // :
	Comma        // ,

	Null   // null
	Bool   // true, false
	Number // 123.456e+7
	String // "string"
)

var kindNames = map[Kind]string{
	EOF:          "end of input",
	LeftBrace:    "'{'",
	RightBrace:   "'}'",
	LeftBracket:  "'['",
	RightBracket: "']'",
	Colon:        "':'",
	Comma:        "','",
	Null:         "null",
	Bool:         "boolean",
	Number:       "number",
	String:       "string",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexical unit. Only the field matching Kind is meaningful:
// Bool for Bool tokens, Str for String tokens, Num for Number tokens.
type Token struct {
	Kind Kind
	Bool bool
	Str  string
	Num  Num
}

func (t Token) String() string {
	switch t.Kind {
	case Bool:
		return strconv.FormatBool(t.Bool)
	case String:
		return strconv.Quote(t.Str)
	case Number:
		return t.Num.Render()
	default:
		return t.Kind.String()
	}
}

// Num is the literal-preserving representation of a JSON number. Instead of
// collapsing the literal into one float, the integer part, fractional part
// and exponent are kept separate so the lexical shape can be reconstructed.
//
// The represented value is Int plus Frac when Int is non-negative, Int minus
// Frac otherwise, scaled by 10^Exp when an exponent is present. Frac is a
// magnitude in [0, 1); its sign is carried by Int.
type Num struct {
	Int     int64
	Frac    float64
	HasFrac bool
	Exp     int64
	HasExp  bool
}

// combined folds Int and Frac into a single value. The fractional magnitude
// moves away from zero, in the direction of Int's sign.
func (n Num) combined() float64 {
	if n.Int >= 0 {
		return float64(n.Int) + n.Frac
	}
	return float64(n.Int) - n.Frac
}

// Float returns the numeric value of the literal, exponent applied.
func (n Num) Float() float64 {
	v := n.combined()
	if n.HasExp {
		v *= math.Pow(10, float64(n.Exp))
	}
	return v
}

// Render reconstructs the literal's lexical form from its components. The
// exponent letter is normalized to an uppercase 'E' with an explicit sign.
func (n Num) Render() string {
	switch {
	case n.HasFrac && n.HasExp:
		return strconv.FormatFloat(n.combined(), 'f', -1, 64) + fmt.Sprintf("E%+d", n.Exp)
	case n.HasFrac:
		return strconv.FormatFloat(n.combined(), 'f', -1, 64)
	case n.HasExp:
		return fmt.Sprintf("%dE%+d", n.Int, n.Exp)
	default:
		return strconv.FormatInt(n.Int, 10)
	}
}

func (n Num) String() string {
	return n.Render()
}
