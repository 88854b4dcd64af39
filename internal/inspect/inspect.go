// Package inspect walks a parsed value tree and summarizes its shape.
package inspect

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mcncl/jtree/internal/value"
)

// Report summarizes one value tree.
type Report struct {
	Objects int
	Arrays  int
	Strings int
	Numbers int
	Bools   int
	Nulls   int

	// Keys counts object members across the whole tree.
	Keys int
	// MaxDepth is the deepest container nesting level; a bare "{}" is 1.
	MaxDepth int

	// Detected string formats
	UUIDs      int
	Timestamps int
}

// Inspect walks the tree rooted at v and builds a Report.
func Inspect(v value.Value) Report {
	var r Report
	walk(v, 0, &r)
	return r
}

func walk(v value.Value, depth int, r *Report) {
	switch tv := v.(type) {
	case value.Null:
		r.Nulls++
	case value.Bool:
		r.Bools++
	case value.Number:
		r.Numbers++
	case value.String:
		r.Strings++
		classifyString(string(tv), r)
	case value.Array:
		r.Arrays++
		if depth+1 > r.MaxDepth {
			r.MaxDepth = depth + 1
		}
		for _, elem := range tv {
			walk(elem, depth+1, r)
		}
	case *value.Object:
		r.Objects++
		if depth+1 > r.MaxDepth {
			r.MaxDepth = depth + 1
		}
		r.Keys += tv.Len()
		for _, m := range tv.Members() {
			walk(m.Value, depth+1, r)
		}
	}
}

// classifyString detects well-known scalar formats inside string values.
func classifyString(s string, r *Report) {
	if _, err := uuid.Parse(s); err == nil && len(s) == 36 {
		r.UUIDs++
		return
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		r.Timestamps++
	}
}

// Values returns the total number of values in the tree.
func (r Report) Values() int {
	return r.Objects + r.Arrays + r.Strings + r.Numbers + r.Bools + r.Nulls
}

// Summary renders the report as a short human-readable block.
func (r Report) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "values:     %d\n", r.Values())
	fmt.Fprintf(&sb, "objects:    %d (%d keys)\n", r.Objects, r.Keys)
	fmt.Fprintf(&sb, "arrays:     %d\n", r.Arrays)
	fmt.Fprintf(&sb, "strings:    %d\n", r.Strings)
	fmt.Fprintf(&sb, "numbers:    %d\n", r.Numbers)
	fmt.Fprintf(&sb, "booleans:   %d\n", r.Bools)
	fmt.Fprintf(&sb, "nulls:      %d\n", r.Nulls)
	fmt.Fprintf(&sb, "max depth:  %d\n", r.MaxDepth)
	if r.UUIDs > 0 {
		fmt.Fprintf(&sb, "uuids:      %d\n", r.UUIDs)
	}
	if r.Timestamps > 0 {
		fmt.Fprintf(&sb, "timestamps: %d\n", r.Timestamps)
	}
	return sb.String()
}
