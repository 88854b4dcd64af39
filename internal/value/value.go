// Package value defines the tree a parsed JSON document is built into.
//
// A Value is one of Null, Bool, String, Number, Array or Object. Ownership is
// strictly tree shaped: every element of an Array or Object belongs solely to
// its parent, so the tree carries no cycles and no references back into the
// parser or scanner that produced it.
package value

import "github.com/mcncl/jtree/internal/token"

// Value is one node of the parsed tree.
type Value interface {
	jsonValue()
}

// Null represents the null literal.
type Null struct{}

// Bool represents true or false.
type Bool bool

// String carries the character content of a string literal, taken verbatim
// from the source (no escape decoding).
type String string

// Number carries the decomposed numeric literal.
type Number struct {
	token.Num
}

// Array is an ordered sequence of values.
type Array []Value

func (Null) jsonValue()    {}
func (Bool) jsonValue()    {}
func (String) jsonValue()  {}
func (Number) jsonValue()  {}
func (Array) jsonValue()   {}
func (*Object) jsonValue() {}

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered mapping from string keys to values. Keys are unique;
// setting an existing key overwrites its value in place, keeping the key at
// its original insertion position. A member slice preserves the order and a
// hash index gives O(1) average lookup.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Set inserts or overwrites the value for key. Insertion order follows the
// key's first occurrence.
func (o *Object) Set(key string, v Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = v
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: v})
}

// Get returns the value for key and whether the key is present.
func (o *Object) Get(key string) (Value, bool) {
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.members[i].Value, true
}

// Len returns the number of members.
func (o *Object) Len() int {
	return len(o.members)
}

// At returns the member at position i in insertion order.
func (o *Object) At(i int) Member {
	return o.members[i]
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// Members returns the key/value pairs in insertion order. The returned slice
// is the object's own backing storage; callers must not modify it.
func (o *Object) Members() []Member {
	return o.members
}
