package tjson

import (
	"errors"
	"math"
	"strings"
	"testing"
)

// TestParseBasicTypes tests one value of each type at the top level
func TestParseBasicTypes(t *testing.T) {
	// Null
	v, err := ParseString(`null`)
	if err != nil {
		t.Fatalf("Parse(null) failed: %v", err)
	}
	if v.Type != TypeNull || !v.IsNull() {
		t.Errorf("Expected TypeNull, got %v", v.Type)
	}

	// Booleans
	v, err = ParseString(`true`)
	if err != nil {
		t.Fatalf("Parse(true) failed: %v", err)
	}
	if v.Type != TypeBoolean || !v.Boolean {
		t.Errorf("Expected true, got %v", v)
	}
	v, err = ParseString(`false`)
	if err != nil {
		t.Fatalf("Parse(false) failed: %v", err)
	}
	if v.Type != TypeBoolean || v.Boolean {
		t.Errorf("Expected false, got %v", v)
	}

	// Number
	v, err = ParseString(`42`)
	if err != nil {
		t.Fatalf("Parse(42) failed: %v", err)
	}
	if v.Type != TypeNumber || v.Num != 42 {
		t.Errorf("Expected 42, got %v", v.Num)
	}

	// String
	v, err = ParseString(`"hello"`)
	if err != nil {
		t.Fatalf("Parse(string) failed: %v", err)
	}
	if v.Type != TypeString || v.Str != "hello" {
		t.Errorf("Expected 'hello', got %q", v.Str)
	}

	// Array
	v, err = ParseString(`[1,2]`)
	if err != nil {
		t.Fatalf("Parse(array) failed: %v", err)
	}
	if v.Type != TypeArray || v.Len() != 2 {
		t.Errorf("Expected 2-element array, got %v", v)
	}

	// Object
	v, err = ParseString(`{"a":1}`)
	if err != nil {
		t.Fatalf("Parse(object) failed: %v", err)
	}
	if v.Type != TypeObject || v.Len() != 1 {
		t.Errorf("Expected 1-member object, got %v", v)
	}
}

// TestParseLeadingWhitespace tests that any Unicode whitespace may precede a value
func TestParseLeadingWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Spaces", "   42"},
		{"Tabs And Newlines", "\t\n\r 42"},
		{"No Whitespace", "42"},
		{"NonBreaking Space", " 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if v.Num != 42 {
				t.Errorf("Expected 42, got %v", v.Num)
			}
		})
	}
}

// TestParseFirstValueOnly tests that content after the first value is not examined
func TestParseFirstValueOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(v Value) bool
	}{
		{"Trailing Whitespace", `null   `, func(v Value) bool { return v.IsNull() }},
		{"Second Literal", `true false`, func(v Value) bool { return v.Bool() }},
		{"Garbage After Number", `123abc`, func(v Value) bool { return v.Num == 123 }},
		{"Second Document", `{"a":1}{"b":2}`, func(v Value) bool { return v.Get("a").Int() == 1 }},
		{"Garbage After Array", `[1]]]`, func(v Value) bool { return v.Len() == 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if !tt.check(v) {
				t.Errorf("Parse(%q) decoded the wrong first value: %v", tt.input, v)
			}
		})
	}
}

// TestParseNumbers tests the float-literal number grammar
func TestParseNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"42", 42},
		{"-7", -7},
		{"3.14", 3.14},
		{"-0.5", -0.5},
		{"2.5e3", 2500},
		{"2E10", 2e10},
		{"-1E-2", -0.01},
		{"1e+2", 100},
		{"1e0", 1},
		// Float-literal leniency: these are not strict JSON but parse fine.
		{"01", 1},
		{"1.", 1},
		{"-0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := ParseString(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.input, err)
			}
			if v.Type != TypeNumber {
				t.Fatalf("Expected TypeNumber, got %v", v.Type)
			}
			if v.Num != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, v.Num, tt.want)
			}
		})
	}
}

// TestParseNegativeZero tests that the sign of a negative zero survives decoding
func TestParseNegativeZero(t *testing.T) {
	v, err := ParseString(`-0`)
	if err != nil {
		t.Fatalf("Parse(-0) failed: %v", err)
	}
	if v.Num != 0 {
		t.Errorf("Expected -0 to compare equal to 0, got %v", v.Num)
	}
	if !math.Signbit(v.Num) {
		t.Error("Expected the sign bit of -0 to be preserved")
	}
}

// TestParseNumberRange tests that out-of-range literals saturate instead of failing
func TestParseNumberRange(t *testing.T) {
	v, err := ParseString(`1e999`)
	if err != nil {
		t.Fatalf("Parse(1e999) failed: %v", err)
	}
	if !math.IsInf(v.Num, 1) {
		t.Errorf("Expected +Inf, got %v", v.Num)
	}

	v, err = ParseString(`-1e999`)
	if err != nil {
		t.Fatalf("Parse(-1e999) failed: %v", err)
	}
	if !math.IsInf(v.Num, -1) {
		t.Errorf("Expected -Inf, got %v", v.Num)
	}

	v, err = ParseString(`1e-999`)
	if err != nil {
		t.Fatalf("Parse(1e-999) failed: %v", err)
	}
	if v.Num != 0 {
		t.Errorf("Expected underflow to 0, got %v", v.Num)
	}
}

// TestParseNumberErrors tests literals that fail the float grammar
func TestParseNumberErrors(t *testing.T) {
	inputs := []string{"-", "--1", "1e", "1e+", "1.2.3", "1ee1", "1-2", "-e5"}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			_, err := ParseString(input)
			if err == nil {
				t.Fatalf("Expected Parse(%q) to fail", input)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Code != CodeInvalidNumber {
				t.Errorf("Expected CodeInvalidNumber, got %v", pe.Code)
			}
			if pe.Offset != 0 {
				t.Errorf("Expected offset 0, got %d", pe.Offset)
			}
		})
	}
}

// TestParseBooleanErrors tests runs of letters that are not boolean literals
func TestParseBooleanErrors(t *testing.T) {
	tests := []struct {
		input string
		found string
	}{
		{"truex", "truex"},
		{"fals", "fals"},
		{"t", "t"},
		{"falsetto", "falsetto"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("Expected Parse(%q) to fail", tt.input)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Code != CodeInvalidLiteral {
				t.Errorf("Expected CodeInvalidLiteral, got %v", pe.Code)
			}
			if !strings.Contains(pe.Message, tt.found) {
				t.Errorf("Expected message to name %q, got %q", tt.found, pe.Message)
			}
		})
	}
}

// TestParseNullErrors tests the character-by-character null match
func TestParseNullErrors(t *testing.T) {
	// Truncated literal
	_, err := ParseString(`nul`)
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if pe.Code != CodeUnexpectedEOF {
		t.Errorf("Expected CodeUnexpectedEOF, got %v", pe.Code)
	}

	// Wrong character mid-literal
	_, err = ParseString(`nulL`)
	pe, ok = err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if pe.Code != CodeExpectedToken {
		t.Errorf("Expected CodeExpectedToken, got %v", pe.Code)
	}
	if pe.Message != `expected 'l' in null literal, found 'L'` {
		t.Errorf("Unexpected message: %q", pe.Message)
	}

	// The mismatch is found one character in, with no backtracking.
	_, err = ParseString(`nil`)
	pe, ok = err.(*ParseError)
	if !ok {
		t.Fatalf("Expected *ParseError, got %T", err)
	}
	if pe.Code != CodeExpectedToken {
		t.Errorf("Expected CodeExpectedToken, got %v", pe.Code)
	}
	if pe.Message != `expected 'u' in null literal, found 'i'` {
		t.Errorf("Unexpected message: %q", pe.Message)
	}
}

// TestParseDispatcherErrors tests characters that open no production
func TestParseDispatcherErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{"Empty Input", "", CodeUnexpectedEOF},
		{"Whitespace Only", " \t\n ", CodeUnexpectedEOF},
		{"Stray Close Bracket", "]", CodeUnexpectedChar},
		{"Stray Close Brace", "}", CodeUnexpectedChar},
		{"Stray Colon", ":", CodeUnexpectedChar},
		{"Uppercase Literal", "TRUE", CodeUnexpectedChar},
		{"Leading Dot", ".5", CodeUnexpectedChar},
		{"Leading Plus", "+1", CodeUnexpectedChar},
		{"Unquoted Word", "hello", CodeUnexpectedChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseString(tt.input)
			if err == nil {
				t.Fatalf("Expected Parse(%q) to fail", tt.input)
			}
			pe, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Expected *ParseError, got %T", err)
			}
			if pe.Code != tt.code {
				t.Errorf("Expected %v, got %v", tt.code, pe.Code)
			}
		})
	}
}

// TestParseBytesAndString tests that the two entry points agree
func TestParseBytesAndString(t *testing.T) {
	input := `{"name":"Ada","tags":["a","b"],"n":3.5}`

	fromBytes, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	fromString, err := ParseString(input)
	if err != nil {
		t.Fatalf("ParseString failed: %v", err)
	}
	if !fromBytes.Equal(fromString) {
		t.Error("Expected Parse and ParseString to produce equal trees")
	}
}

// TestParseBufferReuse tests that the tree does not alias the input buffer
func TestParseBufferReuse(t *testing.T) {
	buf := []byte(`{"name":"Ada"}`)
	v, err := Parse(buf)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	// Clobber the buffer after the parse returns.
	for i := range buf {
		buf[i] = 'x'
	}

	if got := v.Get("name").Str; got != "Ada" {
		t.Errorf("Expected 'Ada' to survive buffer reuse, got %q", got)
	}
}

// TestParseDeepNesting tests that recursion handles deeply nested documents
func TestParseDeepNesting(t *testing.T) {
	const depth = 1000

	arrays := strings.Repeat("[", depth) + strings.Repeat("]", depth)
	v, err := ParseString(arrays)
	if err != nil {
		t.Fatalf("Parse of %d-deep arrays failed: %v", depth, err)
	}
	for i := 0; i < depth-1; i++ {
		if v.Type != TypeArray || v.Len() != 1 {
			t.Fatalf("Expected single-element array at depth %d, got %v", i, v.Type)
		}
		v = v.Index(0)
	}
	if v.Type != TypeArray || v.Len() != 0 {
		t.Errorf("Expected empty array at the bottom, got %v", v)
	}

	objects := strings.Repeat(`{"a":`, depth) + "1" + strings.Repeat("}", depth)
	v, err = ParseString(objects)
	if err != nil {
		t.Fatalf("Parse of %d-deep objects failed: %v", depth, err)
	}
	for i := 0; i < depth; i++ {
		v = v.Get("a")
	}
	if v.Num != 1 {
		t.Errorf("Expected 1 at the bottom, got %v", v)
	}
}

// TestParseConcurrent tests that independent parses share no state
func TestParseConcurrent(t *testing.T) {
	input := `{"id":7,"tags":["x","y"],"ok":true}`
	done := make(chan error, 16)

	for g := 0; g < 16; g++ {
		go func() {
			for i := 0; i < 100; i++ {
				v, err := ParseString(input)
				if err != nil {
					done <- err
					return
				}
				if v.Get("id").Int() != 7 {
					done <- errors.New("wrong id from concurrent parse")
					return
				}
			}
			done <- nil
		}()
	}

	for g := 0; g < 16; g++ {
		if err := <-done; err != nil {
			t.Fatalf("Concurrent parse failed: %v", err)
		}
	}
}

//------------------------------------------------------------------------------
// BENCHMARKS
//------------------------------------------------------------------------------

var benchSmall = []byte(`{"name":"John","age":30,"active":true}`)

var benchMedium = []byte(`{"name":"John Smith","age":35,"address":{"street":"123 Main St","city":"San Francisco","state":"CA","zip":"94103"},"phones":[{"type":"home","number":"555-1234"},{"type":"work","number":"555-5678"}],"email":"john@example.com","active":true,"scores":[95,87,92,78,85]}`)

func BenchmarkParseSmall(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchSmall); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMedium(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchMedium)))
	for i := 0; i < b.N; i++ {
		if _, err := Parse(benchMedium); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkValid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if !Valid(benchMedium) {
			b.Fatal("expected valid document")
		}
	}
}
