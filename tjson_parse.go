// Package tjson parses JSON text into an immutable in-memory tree of typed values.
// Created by dhawalhost (2026-08-23 10:02:41)
package tjson

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
	"unsafe"
)

//------------------------------------------------------------------------------
// PUBLIC ENTRY POINTS
//------------------------------------------------------------------------------

// Parse decodes the first JSON value in data and returns it as a Value tree.
//
// Leading whitespace is skipped; content after the decoded value is not
// examined. Every string in the returned tree is copied out of data, so the
// caller may reuse the buffer once Parse returns. Failures are reported as
// *ParseError values.
func Parse(data []byte) (Value, error) {
	return ParseString(bytesToString(data))
}

// ParseString is like Parse but accepts a string input.
func ParseString(s string) (Value, error) {
	c := cursor{input: s}
	return c.parseValue()
}

//------------------------------------------------------------------------------
// CURSOR
//------------------------------------------------------------------------------

// cursor is a forward-only view over the input's Unicode scalar values with
// one rune of lookahead. It is purely positional state: the production
// handlers copy all decoded data out of the input, so a cursor owns nothing
// beyond its offset. Each parse gets its own cursor, which keeps independent
// parses safe to run concurrently.
type cursor struct {
	input string
	pos   int // byte offset of the next unconsumed rune
}

// peek returns the next unconsumed rune without advancing.
func (c *cursor) peek() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, true
}

// advance consumes and returns the next rune.
func (c *cursor) advance() (rune, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	c.pos += size
	return r, true
}

// skipWhitespace consumes a maximal run of Unicode whitespace.
func (c *cursor) skipWhitespace() {
	for {
		r, ok := c.peek()
		if !ok || !unicode.IsSpace(r) {
			return
		}
		c.advance()
	}
}

// expect consumes the next rune and checks that it is want.
func (c *cursor) expect(want rune, in string) error {
	ch, ok := c.advance()
	if !ok {
		return c.errorf(CodeUnexpectedEOF, "unexpected end of input in %s, expected %q", in, want)
	}
	if ch != want {
		return c.errorf(CodeExpectedToken, "expected %q in %s, found %q", want, in, ch)
	}
	return nil
}

//------------------------------------------------------------------------------
// DISPATCHER
//------------------------------------------------------------------------------

// parseValue skips leading whitespace and routes to the handler for the
// production starting at the next character. It is the shared recursive entry
// point: the container handlers call it for every nested value, and any JSON
// value is a valid top-level document.
func (c *cursor) parseValue() (Value, error) {
	c.skipWhitespace()
	ch, ok := c.peek()
	if !ok {
		return Value{}, c.errorf(CodeUnexpectedEOF, "unexpected end of input looking for a value")
	}
	switch {
	case ch == '{':
		return c.parseObject()
	case ch == '"':
		return c.parseString()
	case ch == '[':
		return c.parseArray()
	case ch == '-' || (ch >= '0' && ch <= '9'):
		return c.parseNumber()
	case ch == 't' || ch == 'f':
		return c.parseBool()
	case ch == 'n':
		return c.parseNull()
	default:
		return Value{}, c.errorf(CodeUnexpectedChar, "unexpected character %q looking for a value", ch)
	}
}

//------------------------------------------------------------------------------
// STRING HANDLER
//------------------------------------------------------------------------------

// parseString consumes one string production, decoding every escape so the
// result carries no residual backslash sequences.
func (c *cursor) parseString() (Value, error) {
	if err := c.expect('"', "string literal"); err != nil {
		return Value{}, err
	}
	var sb strings.Builder
	for {
		ch, ok := c.advance()
		if !ok {
			return Value{}, c.errorf(CodeUnterminatedString, "unterminated string")
		}
		switch ch {
		case '"':
			return Value{Type: TypeString, Str: sb.String()}, nil
		case '\\':
			esc, ok := c.advance()
			if !ok {
				return Value{}, c.errorf(CodeUnexpectedEOF, "unexpected end of input after '\\' in string")
			}
			switch esc {
			case '"', '\\', '/':
				sb.WriteRune(esc)
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				r, err := c.parseUnicodeEscape()
				if err != nil {
					return Value{}, err
				}
				sb.WriteRune(r)
			default:
				return Value{}, c.errorf(CodeInvalidEscape, "invalid escape sequence '\\%c'", esc)
			}
		default:
			sb.WriteRune(ch)
		}
	}
}

// parseUnicodeEscape decodes the four hex digits that follow a \u escape.
// Escapes are decoded independently: a UTF-16 surrogate code unit is not a
// Unicode scalar value and is rejected rather than combined with a partner
// escape.
func (c *cursor) parseUnicodeEscape() (rune, error) {
	start := c.pos
	for i := 0; i < 4; i++ {
		if _, ok := c.advance(); !ok {
			return 0, c.errorf(CodeUnexpectedEOF, "unexpected end of input in unicode escape")
		}
	}
	digits := c.input[start:c.pos]
	code, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, c.errorAt(start, CodeInvalidHexDigits, "invalid hex digits %q in unicode escape", digits)
	}
	r := rune(code)
	if utf16.IsSurrogate(r) {
		return 0, c.errorAt(start, CodeInvalidUnicodeEscape, "\\u%s is not a valid Unicode scalar value", digits)
	}
	return r, nil
}

//------------------------------------------------------------------------------
// NUMBER HANDLER
//------------------------------------------------------------------------------

// isNumberChar reports whether ch may appear in a JSON number literal.
func isNumberChar(ch rune) bool {
	switch ch {
	case '.', '-', '+', 'e', 'E':
		return true
	default:
		return ch >= '0' && ch <= '9'
	}
}

// parseNumber accumulates a maximal run of number characters and parses it as
// a 64-bit float. Validity is float-literal validity: an out-of-range literal
// saturates to an infinity instead of failing.
func (c *cursor) parseNumber() (Value, error) {
	start := c.pos
	for {
		ch, ok := c.peek()
		if !ok || !isNumberChar(ch) {
			break
		}
		c.advance()
	}
	text := c.input[start:c.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
			return Value{}, c.errorAt(start, CodeInvalidNumber, "invalid number %q", text)
		}
	}
	return Value{Type: TypeNumber, Num: n}, nil
}

//------------------------------------------------------------------------------
// BOOLEAN AND NULL HANDLERS
//------------------------------------------------------------------------------

// parseBool accumulates a maximal run of letters and matches it against the
// two boolean literals.
func (c *cursor) parseBool() (Value, error) {
	start := c.pos
	for {
		ch, ok := c.peek()
		if !ok || !unicode.IsLetter(ch) {
			break
		}
		c.advance()
	}
	switch lit := c.input[start:c.pos]; lit {
	case "true":
		return Value{Type: TypeBoolean, Boolean: true}, nil
	case "false":
		return Value{Type: TypeBoolean, Boolean: false}, nil
	default:
		return Value{}, c.errorAt(start, CodeInvalidLiteral, `expected "true" or "false", found %q`, lit)
	}
}

// parseNull consumes the null literal character by character; each character
// is matched before the next is examined, with no backtracking.
func (c *cursor) parseNull() (Value, error) {
	for _, want := range "null" {
		if err := c.expect(want, "null literal"); err != nil {
			return Value{}, err
		}
	}
	return Value{Type: TypeNull}, nil
}

//------------------------------------------------------------------------------
// ARRAY HANDLER
//------------------------------------------------------------------------------

// parseArray consumes one array production. The separator after an element
// must follow it immediately; the element itself may be padded with
// whitespace because the dispatcher skips it.
func (c *cursor) parseArray() (Value, error) {
	if err := c.expect('[', "array"); err != nil {
		return Value{}, err
	}
	items := make([]Value, 0, 4)
	c.skipWhitespace()
	if ch, ok := c.peek(); ok && ch == ']' {
		c.advance()
		return Value{Type: TypeArray, Items: items}, nil
	}
	for {
		c.skipWhitespace()
		item, err := c.parseValue()
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)

		ch, ok := c.advance()
		if !ok {
			return Value{}, c.errorf(CodeUnexpectedEOF, "unexpected end of input inside array")
		}
		switch ch {
		case ']':
			return Value{Type: TypeArray, Items: items}, nil
		case ',':
			// next element
		default:
			return Value{}, c.errorf(CodeUnexpectedChar, "expected ',' or ']' in array, found %q", ch)
		}
	}
}

//------------------------------------------------------------------------------
// OBJECT HANDLER
//------------------------------------------------------------------------------

// parseObject consumes one object production. Keys are parsed by the string
// handler directly, so a non-string key cannot be constructed; duplicate keys
// resolve last write wins.
func (c *cursor) parseObject() (Value, error) {
	if err := c.expect('{', "object"); err != nil {
		return Value{}, err
	}
	fields := make(map[string]Value)
	c.skipWhitespace()
	if ch, ok := c.peek(); ok && ch == '}' {
		c.advance()
		return Value{Type: TypeObject, Fields: fields}, nil
	}
	for {
		c.skipWhitespace()
		key, err := c.parseString()
		if err != nil {
			return Value{}, err
		}
		if key.Type != TypeString {
			return Value{}, c.errorf(CodeInvalidKey, "object key is not a string")
		}
		c.skipWhitespace()
		if err := c.expect(':', "object"); err != nil {
			return Value{}, err
		}
		c.skipWhitespace()
		value, err := c.parseValue()
		if err != nil {
			return Value{}, err
		}
		fields[key.Str] = value

		c.skipWhitespace()
		ch, ok := c.advance()
		if !ok {
			return Value{}, c.errorf(CodeUnexpectedEOF, "unexpected end of input inside object")
		}
		switch ch {
		case '}':
			return Value{Type: TypeObject, Fields: fields}, nil
		case ',':
			// next member
		default:
			return Value{}, c.errorf(CodeUnexpectedChar, "expected ',' or '}' in object, found %q", ch)
		}
	}
}

//------------------------------------------------------------------------------
// ERROR TYPE
//------------------------------------------------------------------------------

// ErrorCode identifies the kind of parse failure.
type ErrorCode uint8

const (
	CodeUnexpectedEOF ErrorCode = iota + 1
	CodeUnexpectedChar
	CodeExpectedToken
	CodeInvalidEscape
	CodeInvalidHexDigits
	CodeInvalidUnicodeEscape
	CodeUnterminatedString
	CodeInvalidNumber
	CodeInvalidLiteral
	CodeInvalidKey
)

// String returns the name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case CodeUnexpectedEOF:
		return "unexpected EOF"
	case CodeUnexpectedChar:
		return "unexpected character"
	case CodeExpectedToken:
		return "expected token"
	case CodeInvalidEscape:
		return "invalid escape sequence"
	case CodeInvalidHexDigits:
		return "invalid hex digits"
	case CodeInvalidUnicodeEscape:
		return "invalid unicode escape"
	case CodeUnterminatedString:
		return "unterminated string"
	case CodeInvalidNumber:
		return "invalid number"
	case CodeInvalidLiteral:
		return "invalid literal"
	case CodeInvalidKey:
		return "invalid key"
	default:
		return "unknown"
	}
}

// ParseError describes a terminal parse failure. Failures propagate unchanged
// to the caller: there is no recovery, resynchronization, or multi-error
// collection inside the parser.
type ParseError struct {
	Code    ErrorCode // which failure
	Offset  int       // byte offset at which the failure was detected
	Message string    // human-readable description, includes offending text
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Offset, e.Message)
}

// errorf builds a ParseError at the cursor's current position.
func (c *cursor) errorf(code ErrorCode, format string, args ...interface{}) *ParseError {
	return c.errorAt(c.pos, code, format, args...)
}

// errorAt builds a ParseError at a specific byte offset.
func (c *cursor) errorAt(offset int, code ErrorCode, format string, args ...interface{}) *ParseError {
	return &ParseError{Code: code, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

//------------------------------------------------------------------------------
// HELPER FUNCTIONS
//------------------------------------------------------------------------------

// bytesToString converts a byte slice to a string without allocation. The
// handlers copy everything they keep, so the view never outlives the call.
func bytesToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
