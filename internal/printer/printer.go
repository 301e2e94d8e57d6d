// Package printer renders value trees in the canonical indented form.
//
// The output mirrors the parser's dialect: strings carry only the
// escapes \" \n and \\, object members sit one per line behind tab
// indentation, and array elements are indented to twice their
// container's depth with no separating commas. Round-trips through
// the parser are exact only for strings confined to that escape
// alphabet.
package printer

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/value"
)

// Fprint writes the canonical rendering of v to w. A nil value
// renders as null.
func Fprint(w io.Writer, v *value.Value) error {
	p := &printer{w: w}
	p.writeValue(v, 0)
	return p.err
}

// Sprint renders v to a string.
func Sprint(v *value.Value) string {
	var sb strings.Builder
	_ = Fprint(&sb, v)
	return sb.String()
}

// WriteFile renders v into the file at path, replacing any previous
// content. An unwritable path is a hard failure, unlike the parser's
// soft handling of an unreadable one.
func WriteFile(path string, v *value.Value) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.NewIOError(fmt.Sprintf("could not write to file %s", path), err)
	}
	if err := Fprint(file, v); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return errors.NewIOError(fmt.Sprintf("could not write to file %s", path), err)
	}
	return nil
}

// printer tracks the destination and the first write failure, so the
// recursive walk does not thread an error return through every level.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(s string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.w, s); err != nil {
		p.err = errors.NewOutputError("failed to write output", err)
	}
}

// indent writes one tab per depth level.
func (p *printer) indent(depth int) {
	for i := 0; i < depth; i++ {
		p.print("\t")
	}
}

func (p *printer) writeValue(v *value.Value, depth int) {
	switch v.Kind() {
	case value.String:
		s, _ := v.StringValue()
		p.writeString(s)
	case value.Number:
		f, _ := v.Float64()
		p.print(strconv.FormatFloat(f, 'g', -1, 64))
	case value.Bool:
		if b, _ := v.Bool(); b {
			p.print("true")
		} else {
			p.print("false")
		}
	case value.Array:
		elems, _ := v.Array()
		p.writeArray(elems, depth)
	case value.Object:
		members, _ := v.Object()
		p.writeObject(members, depth)
	default:
		p.print("null")
	}
}

// writeString quotes s with the same narrow escape set the parser
// reads: '"', newline and backslash. Every other byte is copied
// verbatim, control characters included.
func (p *printer) writeString(s string) {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteByte(s[i])
		}
	}
	b.WriteByte('"')
	p.print(b.String())
}

// writeObject lays out members one per line at depth+1, keys quoted
// like string values. Members render in sorted key order so repeated
// runs over the same tree produce identical text; the map behind the
// object stays unordered.
func (p *printer) writeObject(members map[string]*value.Value, depth int) {
	if len(members) == 0 {
		p.print("{}")
		return
	}

	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	p.print("{\n")
	for i, key := range keys {
		if i > 0 {
			p.print(",\n")
		}
		p.indent(depth + 1)
		p.writeString(key)
		p.print(": ")
		p.writeValue(members[key], depth+1)
	}
	p.print("\n")
	p.indent(depth)
	p.print("}")
}

// writeArray lays out elements one per line with no separating commas,
// indented to twice the array's own depth. A root-level array renders
// its elements flush left.
func (p *printer) writeArray(elems []*value.Value, depth int) {
	p.print("[")
	if len(elems) == 0 {
		p.print("]")
		return
	}
	for _, elem := range elems {
		p.print("\n")
		p.indent(2 * depth)
		p.writeValue(elem, depth+1)
	}
	p.print("\n")
	p.indent(depth)
	p.print("]")
}
