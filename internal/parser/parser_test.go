package parser

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	stderrors "errors"

	"github.com/mcncl/jtree/internal/errors"
	"github.com/mcncl/jtree/internal/token"
	"github.com/mcncl/jtree/internal/value"
)

func obj(pairs ...value.Member) *value.Object {
	o := value.NewObject()
	for _, p := range pairs {
		o.Set(p.Key, p.Value)
	}
	return o
}

func member(k string, v value.Value) value.Member {
	return value.Member{Key: k, Value: v}
}

func num(n token.Num) value.Number {
	return value.Number{Num: n}
}

func TestParse_EmptyObject(t *testing.T) {
	got, err := ParseString("{}")
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if !reflect.DeepEqual(got, obj()) {
		t.Errorf("ParseString() = %#v, want empty object", got)
	}
}

func TestParse_EmptyArray(t *testing.T) {
	got, err := ParseString("[]")
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	if !reflect.DeepEqual(got, value.Array{}) {
		t.Errorf("ParseString() = %#v, want empty array", got)
	}
}

func TestParse_SimpleObject(t *testing.T) {
	got, err := ParseString(`{"foo": "bar"}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	want := obj(member("foo", value.String("bar")))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseString() = %#v, want %#v", got, want)
	}
}

func TestParse_ObjectWithMultipleKeys(t *testing.T) {
	got, err := ParseString(`{"foo": "bar", "active": true, "arr": [1, 2, 3]}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	want := obj(
		member("foo", value.String("bar")),
		member("active", value.Bool(true)),
		member("arr", value.Array{
			num(token.Num{Int: 1}),
			num(token.Num{Int: 2}),
			num(token.Num{Int: 3}),
		}),
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseString() = %#v, want %#v", got, want)
	}
}

func TestParse_NestedObject(t *testing.T) {
	got, err := ParseString(`{"foo": { "bar": true, "arr": [1, 2, 3]}}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	want := obj(
		member("foo", value.Value(obj(
			member("bar", value.Bool(true)),
			member("arr", value.Array{
				num(token.Num{Int: 1}),
				num(token.Num{Int: 2}),
				num(token.Num{Int: 3}),
			}),
		))),
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseString() = %#v, want %#v", got, want)
	}
}

func TestParse_ScalarsInArray(t *testing.T) {
	got, err := ParseString(`[null, true, false, "s", -2.5]`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	want := value.Array{
		value.Null{},
		value.Bool(true),
		value.Bool(false),
		value.String("s"),
		num(token.Num{Int: -2, Frac: 0.5, HasFrac: true}),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseString() = %#v, want %#v", got, want)
	}
}

func TestParse_KeyOrderPreserved(t *testing.T) {
	got, err := ParseString(`{"z": 1, "a": 2, "m": 3, "b": 4}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	o, ok := got.(*value.Object)
	if !ok {
		t.Fatalf("ParseString() root is %T, want *value.Object", got)
	}
	wantKeys := []string{"z", "a", "m", "b"}
	if !reflect.DeepEqual(o.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", o.Keys(), wantKeys)
	}
}

func TestParse_DuplicateKeyLastWriteWins(t *testing.T) {
	got, err := ParseString(`{"a": 1, "b": 2, "a": 3}`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	o := got.(*value.Object)

	if o.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", o.Len())
	}
	// "a" keeps its first-occurrence position but holds the last value.
	wantKeys := []string{"a", "b"}
	if !reflect.DeepEqual(o.Keys(), wantKeys) {
		t.Errorf("Keys() = %v, want %v", o.Keys(), wantKeys)
	}
	v, ok := o.Get("a")
	if !ok {
		t.Fatal(`Get("a") reported missing key`)
	}
	if want := value.Value(num(token.Num{Int: 3})); !reflect.DeepEqual(v, want) {
		t.Errorf(`Get("a") = %#v, want %#v`, v, want)
	}
}

func TestParse_NumberDecomposition(t *testing.T) {
	got, err := ParseString(`[-123.456e+3]`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	n := got.(value.Array)[0].(value.Number)
	want := token.Num{Int: -123, Frac: 0.456, HasFrac: true, Exp: 3, HasExp: true}
	if n.Num != want {
		t.Errorf("number = %+v, want %+v", n.Num, want)
	}
	if r := n.Render(); r != "-123.456E+3" {
		t.Errorf("Render() = %q, want %q", r, "-123.456E+3")
	}
}

func TestParse_LenientBareFraction(t *testing.T) {
	got, err := ParseString(`[.123]`)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	n := got.(value.Array)[0].(value.Number)
	want := token.Num{Int: 0, Frac: 0.123, HasFrac: true}
	if n.Num != want {
		t.Errorf("number = %+v, want %+v", n.Num, want)
	}
}

func TestParse_DeeplyNested(t *testing.T) {
	input := strings.Repeat("[", 50) + strings.Repeat("]", 50)
	got, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString() error = %v, wantErr nil", err)
	}
	depth := 0
	for v := got; v != nil; {
		arr, ok := v.(value.Array)
		if !ok {
			t.Fatalf("level %d is %T, want array", depth, v)
		}
		depth++
		if len(arr) == 0 {
			break
		}
		v = arr[0]
	}
	if depth != 50 {
		t.Errorf("nesting depth = %d, want 50", depth)
	}
}

func TestParse_MaxDepthExceeded(t *testing.T) {
	input := strings.Repeat("[", 10) + strings.Repeat("]", 10)
	_, err := ParseString(input, WithMaxDepth(5))
	if !stderrors.Is(err, errors.ErrDepthExceeded) {
		t.Fatalf("error = %v, want ErrDepthExceeded", err)
	}

	if _, err := ParseString(input, WithMaxDepth(10)); err != nil {
		t.Fatalf("ParseString() at the limit error = %v, wantErr nil", err)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"bare scalar document", `"text"`},
		{"bare number document", `42`},
		{"empty document", `   `},
		{"missing value", `{"a":}`},
		{"missing colon", `{"a" 1}`},
		{"missing key", `{: 1}`},
		{"non-string key", `{1: 2}`},
		{"trailing comma in array", `[1,]`},
		{"trailing comma in object", `{"a": 1,}`},
		{"missing separator", `[1 2]`},
		{"unterminated string", `"abc`},
		{"unterminated object", `{"a": 1`},
		{"unterminated array", `[1, 2`},
		{"colon in array", `[1: 2]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("ParseString(%q) = %#v, want an error", tt.input, got)
			}
		})
	}
}

func TestParse_ErrorTaxonomy(t *testing.T) {
	if _, err := ParseString(`[1,]`); !errors.IsSyntaxError(err) {
		t.Errorf("trailing comma: error = %v, want a syntax error", err)
	}
	if _, err := ParseString(`"top"`); !errors.IsSyntaxError(err) {
		t.Errorf("bare scalar: error = %v, want a syntax error", err)
	}
	if _, err := ParseString(`["abc]`); !errors.IsLexError(err) {
		t.Errorf("unterminated string: error = %v, want a lex error", err)
	}
	if _, err := ParseString(`[nil]`); !errors.IsLexError(err) {
		t.Errorf("invalid keyword: error = %v, want a lex error", err)
	}
}

func TestParseString_EmptyInput(t *testing.T) {
	_, err := ParseString("   \n\t ")
	if !stderrors.Is(err, errors.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"ok": true}`), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v, wantErr nil", err)
	}
	want := obj(member("ok", value.Bool(true)))
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFile() = %#v, want %#v", got, want)
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.json"))
	if !stderrors.Is(err, errors.ErrFileNotFound) {
		t.Fatalf("error = %v, want ErrFileNotFound", err)
	}
}

func TestParseFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ParseFile(path)
	if !stderrors.Is(err, errors.ErrFileEmpty) {
		t.Fatalf("error = %v, want ErrFileEmpty", err)
	}
}

func TestParseFile_EmptyPath(t *testing.T) {
	_, err := ParseFile("  ")
	if !stderrors.Is(err, errors.ErrInvalidFilePath) {
		t.Fatalf("error = %v, want ErrInvalidFilePath", err)
	}
}
