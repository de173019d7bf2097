// Package kprint implements the external printing contract spec.md §6
// describes: `print(value)` writes a human-readable form plus a trailing
// newline. Grounded on the teacher's objects.go ToString/ToObject string
// conversion idiom and on original_source/repl.c's kobj_to_string/
// vector_to_string/print_inline/print functions for the specific layout
// rules (leading comma on a singleton vector, column-aligned matrices,
// one `key|value` line per Dict entry).
package kprint

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gomix-k/gomix-k/value"
	"github.com/gomix-k/gomix-k/verbs"
)

// Print writes v's human-readable form followed by a newline to w.
func Print(w io.Writer, v value.Value) error {
	_, err := fmt.Fprintln(w, Sprint(v))
	return err
}

// PrintError writes a Kerr's tag followed by a newline — the REPL and
// script runner's uniform error-reporting path, `^kind\n` with nothing
// else, per spec.md §7.
func PrintError(w io.Writer, err *verbs.Kerr) error {
	_, werr := fmt.Fprintf(w, "%s\n", err.Error())
	return werr
}

// Sprint renders v with no trailing newline — the piece Print, the REPL's
// and RunFile's result lines, and the `\v`/`\w` dumps build on.
func Sprint(v value.Value) string {
	switch t := v.(type) {
	case value.Nil:
		return ""
	case *value.Vector:
		return formatVector(t)
	case *value.Dict:
		return formatDict(t)
	case value.Verb:
		return formatVerb(t)
	case value.Adverb:
		return Sprint(t.Child) + adverbSuffix(t)
	case *value.Lambda:
		return "{lambda}"
	case *value.Projection:
		return "{projection}"
	default:
		return formatAtom(v)
	}
}

// formatAtom renders a scalar: integers plain, floats via Go's shortest
// round-tripping form, a Char as its bare byte, and ±infinity spelled the
// way the lexer reads them back (`0w`/`-0w`), per spec.md §6's literal
// illustration.
func formatAtom(v value.Value) string {
	switch t := v.(type) {
	case value.Int:
		return strconv.FormatInt(t.I, 10)
	case value.Float:
		return strconv.FormatFloat(t.F, 'g', -1, 64)
	case value.Char:
		return string(t.C)
	case value.PInf:
		return "0w"
	case value.NInf:
		return "-0w"
	case value.Sym:
		return "`" + t.Name
	default:
		return ""
	}
}

func formatVerb(v value.Verb) string {
	return "<verb>"
}

func adverbSuffix(a value.Adverb) string {
	switch {
	case a.EachRight:
		return "/:"
	case a.EachLeft:
		return "\\:"
	default:
		return ""
	}
}

// formatVector implements the three vector print shapes spec.md §6 names:
// a char vector prints as the plain string it represents; a singleton
// vector gets a leading comma (`,5`) to mark it as a one-element vector
// rather than a bare atom; a vector of equal-length vectors (a matrix)
// prints column-aligned; everything else is space-joined atom reprs.
func formatVector(v *value.Vector) string {
	if value.IsCharVector(v) {
		return value.AsGoString(v)
	}
	if len(v.Items) == 0 {
		return "!0"
	}
	if len(v.Items) == 1 {
		return "," + Sprint(v.Items[0])
	}
	if rows, ok := asMatrix(v); ok {
		return formatMatrix(rows)
	}
	parts := make([]string, len(v.Items))
	for i, it := range v.Items {
		parts[i] = Sprint(it)
	}
	return strings.Join(parts, " ")
}

// asMatrix reports whether every element of v is itself a Vector of the
// same length — the shape that triggers column alignment rather than a
// flat space-joined list.
func asMatrix(v *value.Vector) ([]*value.Vector, bool) {
	rows := make([]*value.Vector, len(v.Items))
	width := -1
	for i, it := range v.Items {
		row, ok := it.(*value.Vector)
		if !ok {
			return nil, false
		}
		if width == -1 {
			width = len(row.Items)
		} else if len(row.Items) != width {
			return nil, false
		}
		rows[i] = row
	}
	return rows, width >= 0
}

func formatMatrix(rows []*value.Vector) string {
	if len(rows) == 0 {
		return ""
	}
	width := len(rows[0].Items)
	colWidth := make([]int, width)
	cells := make([][]string, len(rows))
	for r, row := range rows {
		cells[r] = make([]string, width)
		for c, it := range row.Items {
			s := Sprint(it)
			cells[r][c] = s
			if len(s) > colWidth[c] {
				colWidth[c] = len(s)
			}
		}
	}
	lines := make([]string, len(rows))
	for r, rowCells := range cells {
		parts := make([]string, width)
		for c, s := range rowCells {
			parts[c] = strings.Repeat(" ", colWidth[c]-len(s)) + s
		}
		lines[r] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

// formatDict prints one `key|value` line per entry, the layout spec.md §6
// calls out as the Dict-specific rule.
func formatDict(d *value.Dict) string {
	lines := make([]string, len(d.Keys.Items))
	for i := range d.Keys.Items {
		lines[i] = Sprint(d.Keys.Items[i]) + "|" + Sprint(d.Values.Items[i])
	}
	return strings.Join(lines, "\n")
}
