package manifest

import "strconv"

// Kind identifies the type held by a Scalar.
type Kind uint8

const (
	// KindNone marks an absent value.
	KindNone Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
)

// Scalar is an attribute or text value: a string, boolean, integer or float.
// The zero Scalar is absent.
type Scalar struct {
	kind Kind
	s    string
	b    bool
	i    int64
	f    float64
}

// String returns a string scalar.
func String(s string) Scalar { return Scalar{kind: KindString, s: s} }

// Bool returns a boolean scalar.
func Bool(b bool) Scalar { return Scalar{kind: KindBool, b: b} }

// Int returns an integer scalar.
func Int(i int) Scalar { return Scalar{kind: KindInt, i: int64(i)} }

// Float returns a floating-point scalar.
func Float(f float64) Scalar { return Scalar{kind: KindFloat, f: f} }

// Kind returns the held type.
func (s Scalar) Kind() Kind { return s.kind }

// IsSet reports whether the scalar holds a value.
func (s Scalar) IsSet() bool { return s.kind != KindNone }

// Text renders the value: booleans as true/false, integers in decimal and
// floats in their shortest decimal form (0.8, not 0.80).
func (s Scalar) Text() string {
	switch s.kind {
	case KindString:
		return s.s
	case KindBool:
		return strconv.FormatBool(s.b)
	case KindInt:
		return strconv.FormatInt(s.i, 10)
	case KindFloat:
		return strconv.FormatFloat(s.f, 'f', -1, 64)
	default:
		return ""
	}
}

// Stringified returns the scalar converted to a string scalar with the same text.
// Absent scalars stay absent.
func (s Scalar) Stringified() Scalar {
	if !s.IsSet() {
		return s
	}
	return String(s.Text())
}
