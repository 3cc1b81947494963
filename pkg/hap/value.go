package hap

import (
	"math"
	"strconv"
)

// Kind is the type carried by a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindFloat
	KindInt
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	default:
		return "invalid"
	}
}

// Value is a tagged characteristic value.
// The zero Value has KindInvalid.
type Value struct {
	kind Kind
	text string
	f    float32
	i    int32
}

// TextValue returns a text Value.
func TextValue(s string) Value { return Value{kind: KindText, text: s} }

// FloatValue returns a float Value.
func FloatValue(f float32) Value { return Value{kind: KindFloat, f: f} }

// IntValue returns an int Value. v is clamped to the int32 range the host
// carries.
func IntValue(v int) Value {
	switch {
	case v > math.MaxInt32:
		v = math.MaxInt32
	case v < math.MinInt32:
		v = math.MinInt32
	}
	return Value{kind: KindInt, i: int32(v)}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v carries a value.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// Text returns the value as text. Numbers are formatted.
func (v Value) Text() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindFloat:
		return strconv.FormatFloat(float64(v.f), 'f', -1, 32)
	case KindInt:
		return strconv.Itoa(int(v.i))
	default:
		return ""
	}
}

// Float returns the value as a float32. Text parses or yields 0.
func (v Value) Float() float32 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float32(v.i)
	case KindText:
		f, err := strconv.ParseFloat(v.text, 32)
		if err != nil {
			return 0
		}
		return float32(f)
	default:
		return 0
	}
}

// Int returns the value as an int. Floats round to nearest.
func (v Value) Int() int {
	switch v.kind {
	case KindInt:
		return int(v.i)
	case KindFloat:
		return int(math.Round(float64(v.f)))
	case KindText:
		n, err := strconv.Atoi(v.text)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// Convert returns v as kind k.
func (v Value) Convert(k Kind) Value {
	if v.kind == k {
		return v
	}
	switch k {
	case KindText:
		return TextValue(v.Text())
	case KindFloat:
		return FloatValue(v.Float())
	case KindInt:
		return IntValue(v.Int())
	default:
		return Value{}
	}
}

// Any returns the underlying Go value (string, float32 or int32), or nil.
func (v Value) Any() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindFloat:
		return v.f
	case KindInt:
		return v.i
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	if v.kind == KindText {
		return strconv.Quote(v.text)
	}
	if v.kind == KindInvalid {
		return "<invalid>"
	}
	return v.Text()
}
