package hap

import "github.com/hapbridge/hap-go/pkg/host"

// IntAccessor is the typed behavior behind an IntCharacteristic.
// It may also implement MaxIntProvider, MinIntProvider and
// ValidValuesProvider.
type IntAccessor interface {
	CanRead() bool
	ReadInt() int
	CanWrite() bool
	WriteInt(v int)
}

// IntCharacteristic is an integer characteristic. Values are passed to the
// host unscaled as 32-bit integers.
type IntCharacteristic struct {
	*Base
	acc IntAccessor
}

// NewInt creates an integer characteristic backed by acc.
func NewInt(typ host.CharacteristicType, acc IntAccessor) *IntCharacteristic {
	c := &IntCharacteristic{acc: acc}
	c.Base = newBase(typ, KindInt, c, func(v Value) { acc.WriteInt(v.Int()) })
	return c
}

// NewIntFunction creates an integer characteristic from closures.
// Either closure may be nil. Values outside the int32 range are clamped
// before they reach the host or the write closure.
func NewIntFunction(typ host.CharacteristicType, read func() int, write func(int), opts ...IntOption) *IntCharacteristic {
	f := &IntFunc{Read: read, Write: write}
	for _, opt := range opts {
		opt(f)
	}
	return NewInt(typ, f)
}

func (c *IntCharacteristic) CanRead() bool  { return c.acc.CanRead() }
func (c *IntCharacteristic) CanWrite() bool { return c.acc.CanWrite() }

// Read returns the current value.
func (c *IntCharacteristic) Read() Value { return IntValue(c.acc.ReadInt()) }

// ReadInt returns the current value.
func (c *IntCharacteristic) ReadInt() int { return c.acc.ReadInt() }

// WriteInt writes v and reports the change.
func (c *IntCharacteristic) WriteInt(v int) { c.Write(IntValue(v)) }

// MaxValueOverride returns the accessor's maximum, if any.
func (c *IntCharacteristic) MaxValueOverride() (Value, bool) {
	if p, ok := c.acc.(MaxIntProvider); ok {
		v, set := p.MaxInt()
		return IntValue(v), set
	}
	return IntValue(0), false
}

// MinValueOverride returns the accessor's minimum, if any.
func (c *IntCharacteristic) MinValueOverride() (Value, bool) {
	if p, ok := c.acc.(MinIntProvider); ok {
		v, set := p.MinInt()
		return IntValue(v), set
	}
	return IntValue(0), false
}

// ValidValuesOverride returns the accessor's valid-value set, if any.
func (c *IntCharacteristic) ValidValuesOverride() ([]int, bool) {
	if p, ok := c.acc.(ValidValuesProvider); ok {
		return p.ValidValues()
	}
	return nil, false
}
