// Created by dhawalhost (2026-08-23 11:05:52)
package tjson

//------------------------------------------------------------------------------
// FORMATTING ENTRY POINTS
//------------------------------------------------------------------------------

// Pretty reformats data with two-space indentation. The input must be a
// single valid document; token bytes pass through untouched, so number and
// string spellings are preserved exactly.
func Pretty(data []byte) ([]byte, error) {
	return PrettyWithOptions(data, nil)
}

// PrettyWithOptions reformats data according to opts. A nil opts uses the
// defaults: two-space indentation with keys left in document order. An empty
// indent minifies instead. SortKeys rebuilds the document from its parsed
// form with object keys in sorted order, which also normalizes number and
// string spellings.
func PrettyWithOptions(data []byte, opts *FormatOptions) ([]byte, error) {
	doc, err := parseDocument(bytesToString(data))
	if err != nil {
		return nil, err
	}
	if opts == nil {
		return prettify(data, "  "), nil
	}
	if opts.Indent == "" {
		if opts.SortKeys {
			return doc.appendJSON(nil), nil
		}
		return uglify(data), nil
	}
	if opts.SortKeys {
		return appendPretty(nil, doc, opts.Indent, 0), nil
	}
	return prettify(data, opts.Indent), nil
}

// Ugly removes all whitespace outside string literals. The input must be a
// single valid document.
func Ugly(data []byte) ([]byte, error) {
	if _, err := parseDocument(bytesToString(data)); err != nil {
		return nil, err
	}
	return uglify(data), nil
}

// Valid reports whether data is one complete JSON value, optionally
// surrounded by whitespace.
func Valid(data []byte) bool {
	return ValidString(bytesToString(data))
}

// ValidString is like Valid but accepts a string input.
func ValidString(s string) bool {
	_, err := parseDocument(s)
	return err == nil
}

//------------------------------------------------------------------------------
// DOCUMENT VALIDATION
//------------------------------------------------------------------------------

// parseDocument parses s as one complete JSON value with nothing but
// whitespace after it. Parse itself stops at the end of the first value;
// the formatting functions hold the whole input to this stricter rule.
func parseDocument(s string) (Value, error) {
	c := cursor{input: s}
	v, err := c.parseValue()
	if err != nil {
		return Value{}, err
	}
	c.skipWhitespace()
	if ch, ok := c.peek(); ok {
		return Value{}, c.errorf(CodeUnexpectedChar, "unexpected character %q after top-level value", ch)
	}
	return v, nil
}

//------------------------------------------------------------------------------
// PRETTIFY
//------------------------------------------------------------------------------

// prettify rewrites the whitespace of a validated document, one indent level
// per container depth. Bytes inside string literals pass through untouched.
func prettify(data []byte, indent string) []byte {
	out := make([]byte, 0, len(data)*2)
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		ch := data[i]

		if inString {
			out = append(out, ch)
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			out = append(out, ch)
			inString = true
		case '{', '[':
			out = append(out, ch)
			depth++
			// Empty containers stay on one line.
			if c := nextNonSpace(data, i+1); c != 0 && c != '}' && c != ']' {
				out = append(out, '\n')
				out = appendIndent(out, indent, depth)
			}
		case '}', ']':
			depth--
			if c := lastNonSpace(out); c != '{' && c != '[' {
				out = append(out, '\n')
				out = appendIndent(out, indent, depth)
			}
			out = append(out, ch)
		case ',':
			out = append(out, ',', '\n')
			out = appendIndent(out, indent, depth)
		case ':':
			out = append(out, ':', ' ')
		case ' ', '\t', '\n', '\r':
			// Input whitespace is dropped and rebuilt.
		default:
			out = append(out, ch)
		}
	}
	return out
}

//------------------------------------------------------------------------------
// UGLIFY
//------------------------------------------------------------------------------

// uglify strips all whitespace outside string literals.
func uglify(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		ch := data[i]

		if inString {
			out = append(out, ch)
			if escaped {
				escaped = false
			} else if ch == '\\' {
				escaped = true
			} else if ch == '"' {
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			out = append(out, ch)
			inString = true
		case ' ', '\t', '\n', '\r':
		default:
			out = append(out, ch)
		}
	}
	return out
}

//------------------------------------------------------------------------------
// TREE RENDERING
//------------------------------------------------------------------------------

// appendPretty renders v with indentation and sorted object keys.
func appendPretty(dst []byte, v Value, indent string, depth int) []byte {
	switch v.Type {
	case TypeArray:
		if len(v.Items) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[', '\n')
		for i, item := range v.Items {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}
			dst = appendIndent(dst, indent, depth+1)
			dst = appendPretty(dst, item, indent, depth+1)
		}
		dst = append(dst, '\n')
		dst = appendIndent(dst, indent, depth)
		return append(dst, ']')
	case TypeObject:
		if len(v.Fields) == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{', '\n')
		for i, k := range v.sortedKeys() {
			if i > 0 {
				dst = append(dst, ',', '\n')
			}
			dst = appendIndent(dst, indent, depth+1)
			dst = appendQuoted(dst, k)
			dst = append(dst, ':', ' ')
			dst = appendPretty(dst, v.Fields[k], indent, depth+1)
		}
		dst = append(dst, '\n')
		dst = appendIndent(dst, indent, depth)
		return append(dst, '}')
	default:
		return v.appendJSON(dst)
	}
}

//------------------------------------------------------------------------------
// HELPER FUNCTIONS
//------------------------------------------------------------------------------

// nextNonSpace returns the first byte at or after i that is not ASCII
// whitespace, or 0 when none remains.
func nextNonSpace(data []byte, i int) byte {
	for ; i < len(data); i++ {
		switch data[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return data[i]
		}
	}
	return 0
}

// lastNonSpace returns the last byte of out that is not ASCII whitespace, or
// 0 when out holds nothing else.
func lastNonSpace(out []byte) byte {
	for i := len(out) - 1; i >= 0; i-- {
		switch out[i] {
		case ' ', '\t', '\n', '\r':
		default:
			return out[i]
		}
	}
	return 0
}

// appendIndent appends depth copies of the indent unit.
func appendIndent(out []byte, indent string, depth int) []byte {
	for i := 0; i < depth; i++ {
		out = append(out, indent...)
	}
	return out
}

//------------------------------------------------------------------------------
// FORMAT OPTIONS
//------------------------------------------------------------------------------

// FormatOptions configures PrettyWithOptions.
type FormatOptions struct {
	// Indent is the indentation unit, such as "  " or "\t". Empty minifies.
	Indent string
	// SortKeys rebuilds the document from its parsed form with object keys
	// in sorted order.
	SortKeys bool
}
