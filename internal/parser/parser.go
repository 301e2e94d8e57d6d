// Package parser reads a permissive JSON dialect into value trees.
//
// The dialect is deliberately looser than encoding/json. Commas are
// insignificant filler anywhere in the input, so `{,"a": 1,}` and
// `{"a": 1}` parse to the same object. Arrays admit only object
// elements; the first non-object byte ends the element scan. Strings
// recognize the escapes \" \n and \\ and drop every other escaped
// byte. Parsing stops after the first value and ignores whatever
// follows it.
package parser

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mcncl/jsonfmt/internal/errors"
	"github.com/mcncl/jsonfmt/internal/value"
)

// Parse reads all of r and parses the first value of the input.
// Content after the first value is ignored. Empty input yields a
// null value rather than an error.
func Parse(r io.Reader) (*value.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return ParseBytes(data)
}

// ParseBytes parses the first value in data.
func ParseBytes(data []byte) (*value.Value, error) {
	s := &scanner{src: data}
	return s.parseValue()
}

// ParseString parses the first value in input.
func ParseString(input string) (*value.Value, error) {
	return ParseBytes([]byte(input))
}

// ParseFile parses the file at path. A path that cannot be opened is
// a soft failure: the result is a null value and a nil error. Content
// errors in a file that did open are reported as usual.
func ParseFile(path string) (*value.Value, error) {
	file, err := os.Open(path)
	if err != nil {
		return value.NewNull(), nil
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	return Parse(file)
}

// scanner walks the input byte by byte with an explicit cursor, so a
// consumed terminator can be handed back with unread instead of
// relying on reader push-back.
type scanner struct {
	src []byte
	pos int
}

// next returns the byte under the cursor and advances past it. ok is
// false at end of input.
func (s *scanner) next() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	c := s.src[s.pos]
	s.pos++
	return c, true
}

// unread steps the cursor back one byte, so the next call to next
// re-reads it.
func (s *scanner) unread() {
	if s.pos > 0 {
		s.pos--
	}
}

// skipFiller discards spaces, tabs, newlines and commas, then returns
// the first significant byte. Treating the comma as filler is what
// makes separators optional and repeatable throughout the dialect.
func (s *scanner) skipFiller() (byte, bool) {
	for {
		c, ok := s.next()
		if !ok {
			return 0, false
		}
		switch c {
		case ' ', '\t', '\n', ',':
			continue
		}
		return c, true
	}
}

// parseValue dispatches on the first significant byte. End of input
// and a NUL byte both stand for "nothing here" and yield null.
func (s *scanner) parseValue() (*value.Value, error) {
	c, ok := s.skipFiller()
	if !ok || c == 0 {
		return value.NewNull(), nil
	}

	switch {
	case c == '"':
		return value.NewString(s.readString()), nil
	case c == 't':
		if !s.expect("rue") {
			return nil, errors.NewMalformedLiteralError("true")
		}
		return value.NewBool(true), nil
	case c == 'f':
		if !s.expect("alse") {
			return nil, errors.NewMalformedLiteralError("false")
		}
		return value.NewBool(false), nil
	case c == 'n':
		if !s.expect("ull") {
			return nil, errors.NewMalformedLiteralError("null")
		}
		return value.NewNull(), nil
	case c == '-' || isDigit(c):
		return value.NewNumber(s.readNumber(c)), nil
	case c == '{':
		return s.parseObject()
	case c == '[':
		return s.parseArray()
	default:
		return nil, errors.NewUnexpectedCharacterError(c)
	}
}

// expect consumes the remaining bytes of a keyword, byte for byte.
// The first mismatch stops consuming and reports failure.
func (s *scanner) expect(rest string) bool {
	for i := 0; i < len(rest); i++ {
		c, ok := s.next()
		if !ok || c != rest[i] {
			return false
		}
	}
	return true
}

// readString consumes a quoted string after its opening '"' has been
// read. A backslash takes the next byte: '"', 'n' and '\\' map to
// their usual meanings, anything else is dropped. End of input ends
// the scan, yielding whatever was collected so far.
func (s *scanner) readString() string {
	var buf []byte
	for {
		c, ok := s.next()
		if !ok || c == '"' {
			return string(buf)
		}
		if c == '\\' {
			esc, ok := s.next()
			if !ok {
				return string(buf)
			}
			switch esc {
			case '"':
				buf = append(buf, '"')
			case 'n':
				buf = append(buf, '\n')
			case '\\':
				buf = append(buf, '\\')
			}
			continue
		}
		buf = append(buf, c)
	}
}

// readNumber consumes a numeric literal whose first byte has already
// been read. The scan is greedy over digits, '-', '.', 'e', 'E' and
// ','; the byte that ends it is appended to the text and then pushed
// back for the caller. Conversion takes the longest prefix of the
// text that parses as a float, so the appended terminator and any
// stray scan-set bytes are ignored.
func (s *scanner) readNumber(first byte) float64 {
	buf := []byte{first}
	for {
		c, ok := s.next()
		if !ok {
			break
		}
		buf = append(buf, c)
		if !isNumberByte(c) {
			s.unread()
			break
		}
	}
	return leadingFloat(string(buf))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNumberByte(c byte) bool {
	return isDigit(c) || c == '-' || c == '.' || c == 'e' || c == 'E' || c == ','
}

// leadingFloat converts the longest prefix of text that strconv
// accepts as a float, the way strtod tolerates trailing junk. Text
// with no usable prefix converts to 0.
func leadingFloat(text string) float64 {
	for len(text) > 0 {
		f, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return f
		}
		text = text[:len(text)-1]
	}
	return 0
}

// parseObject consumes object members after the opening '{'. Each
// member is a quoted key, a ':' and a value; duplicate keys keep the
// last value. Any significant byte other than a key's opening quote
// ends the member scan, '}' included, so a missing closing brace is
// tolerated.
func (s *scanner) parseObject() (*value.Value, error) {
	obj := value.NewObject()
	members, _ := obj.Object()

	for {
		c, ok := s.skipFiller()
		if !ok || c != '"' {
			return obj, nil
		}
		key := s.readString()

		sep, _ := s.skipFiller()
		if sep != ':' {
			return nil, errors.NewExpectedColonError(sep)
		}

		elem, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		members[key] = elem
	}
}

// parseArray consumes array elements after the opening '['. Only
// objects are admitted: a '{' is pushed back and parsed as a value,
// and any other significant byte ends the element scan, ']' included.
func (s *scanner) parseArray() (*value.Value, error) {
	arr := value.NewArray()

	for {
		c, ok := s.skipFiller()
		if !ok || c != '{' {
			return arr, nil
		}
		s.unread()

		elem, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		_ = arr.Append(elem)
	}
}
