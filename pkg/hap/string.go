package hap

import "github.com/hapbridge/hap-go/pkg/host"

// StringAccessor is the typed behavior behind a StringCharacteristic.
type StringAccessor interface {
	CanRead() bool
	ReadString() string
	CanWrite() bool
	WriteString(s string)
}

// StringCharacteristic is a text characteristic.
//
// Over the host boundary a read yields the address of the characteristic's
// own NUL-terminated copy of the text, valid until the next read. Host writes
// are bounded by the reported length and cut at the first NUL.
type StringCharacteristic struct {
	*Base
	acc StringAccessor
}

// NewString creates a text characteristic backed by acc.
func NewString(typ host.CharacteristicType, acc StringAccessor) *StringCharacteristic {
	c := &StringCharacteristic{acc: acc}
	c.Base = newBase(typ, KindText, c, func(v Value) { acc.WriteString(v.Text()) })
	return c
}

// NewStringFunction creates a text characteristic from closures.
// Either closure may be nil.
func NewStringFunction(typ host.CharacteristicType, read func() string, write func(string)) *StringCharacteristic {
	return NewString(typ, &StringFunc{Read: read, Write: write})
}

func (c *StringCharacteristic) CanRead() bool  { return c.acc.CanRead() }
func (c *StringCharacteristic) CanWrite() bool { return c.acc.CanWrite() }

// Read returns the current text.
func (c *StringCharacteristic) Read() Value { return TextValue(c.acc.ReadString()) }

// ReadString returns the current text.
func (c *StringCharacteristic) ReadString() string { return c.acc.ReadString() }

// WriteString writes s and reports the change.
func (c *StringCharacteristic) WriteString(s string) { c.Write(TextValue(s)) }
