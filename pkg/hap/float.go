package hap

import "github.com/hapbridge/hap-go/pkg/host"

// FloatAccessor is the typed behavior behind a FloatCharacteristic.
// It may also implement MaxFloatProvider and MinFloatProvider.
type FloatAccessor interface {
	CanRead() bool
	ReadFloat() float32
	CanWrite() bool
	WriteFloat(v float32)
}

// FloatCharacteristic is a float characteristic. Values and range overrides
// cross the host boundary as fixed-point integers with 0.01 resolution.
// Float characteristics never override the valid-value set.
type FloatCharacteristic struct {
	*Base
	acc FloatAccessor
}

// NewFloat creates a float characteristic backed by acc.
func NewFloat(typ host.CharacteristicType, acc FloatAccessor) *FloatCharacteristic {
	c := &FloatCharacteristic{acc: acc}
	c.Base = newBase(typ, KindFloat, c, func(v Value) { acc.WriteFloat(v.Float()) })
	return c
}

// NewFloatFunction creates a float characteristic from closures.
// Either closure may be nil.
func NewFloatFunction(typ host.CharacteristicType, read func() float32, write func(float32), opts ...FloatOption) *FloatCharacteristic {
	f := &FloatFunc{Read: read, Write: write}
	for _, opt := range opts {
		opt(f)
	}
	return NewFloat(typ, f)
}

func (c *FloatCharacteristic) CanRead() bool  { return c.acc.CanRead() }
func (c *FloatCharacteristic) CanWrite() bool { return c.acc.CanWrite() }

// Read returns the current value.
func (c *FloatCharacteristic) Read() Value { return FloatValue(c.acc.ReadFloat()) }

// ReadFloat returns the current value.
func (c *FloatCharacteristic) ReadFloat() float32 { return c.acc.ReadFloat() }

// WriteFloat writes v and reports the change.
func (c *FloatCharacteristic) WriteFloat(v float32) { c.Write(FloatValue(v)) }

// MaxValueOverride widens the accessor's maximum, if any.
func (c *FloatCharacteristic) MaxValueOverride() (Value, bool) {
	if p, ok := c.acc.(MaxFloatProvider); ok {
		v, set := p.MaxFloat()
		return FloatValue(v), set
	}
	return FloatValue(0), false
}

// MinValueOverride widens the accessor's minimum, if any.
func (c *FloatCharacteristic) MinValueOverride() (Value, bool) {
	if p, ok := c.acc.(MinFloatProvider); ok {
		v, set := p.MinFloat()
		return FloatValue(v), set
	}
	return FloatValue(0), false
}
