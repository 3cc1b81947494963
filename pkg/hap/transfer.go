package hap

import (
	"fmt"

	"github.com/hapbridge/hap-go/pkg/host"
)

// batch holds the transfer structures of one AddService call together with
// the valid-value arrays they borrow from the allocator.
type batch struct {
	alloc    host.Allocator
	chars    []host.CharacteristicEx
	owned    [][]int32
	released bool
}

// initialValue is the value placed in a transfer structure.
func initialValue(c Characteristic) Value {
	if c.CanRead() {
		return c.Read()
	}
	return zeroValue(c.Kind())
}

// callbacks returns the erased functions for c. A missing capability
// leaves the corresponding function nil so the host never calls it.
func (hc *HostContext) callbacks(c Characteristic) (host.ReadFunc, host.WriteFunc, host.EventFunc) {
	var (
		read  host.ReadFunc
		write host.WriteFunc
	)
	if c.CanRead() {
		read = hc.readCharacteristic
	}
	if c.CanWrite() {
		write = hc.writeCharacteristic
	}
	return read, write, hc.setEvent
}

// basic converts c into the basic transfer structure.
func (hc *HostContext) basic(c Characteristic) host.Characteristic {
	b := c.base()
	read, write, event := hc.callbacks(c)
	return host.Characteristic{
		Type:     c.Type(),
		Value:    encodePayload(initialValue(c), &b.readText),
		Context:  b.ctx,
		Read:     read,
		Write:    write,
		SetEvent: event,
	}
}

// newBatch returns an empty batch drawing on the context allocator.
// Callers defer release before calling add, so arrays copied before a
// fatal allocation are still returned.
func (hc *HostContext) newBatch(n int) *batch {
	return &batch{
		alloc: hc.alloc,
		chars: make([]host.CharacteristicEx, 0, n),
	}
}

// add converts chars into extended transfer structures.
func (bt *batch) add(hc *HostContext, chars []Characteristic) {
	for _, c := range chars {
		bt.chars = append(bt.chars, bt.extended(hc, c))
	}
}

func (bt *batch) extended(hc *HostContext, c Characteristic) host.CharacteristicEx {
	b := c.base()
	read, write, event := hc.callbacks(c)
	ex := host.CharacteristicEx{
		Type:     c.Type(),
		Value:    encodePayload(initialValue(c), &b.readText),
		Context:  b.ctx,
		Read:     read,
		Write:    write,
		SetEvent: event,
	}
	if v, ok := c.MaxValueOverride(); ok {
		ex.OverrideMaxValue = true
		ex.MaxValue = encodeScalar(v.Convert(c.Kind()))
	}
	if v, ok := c.MinValueOverride(); ok {
		ex.OverrideMinValue = true
		ex.MinValue = encodeScalar(v.Convert(c.Kind()))
	}
	if values, ok := c.ValidValuesOverride(); ok {
		ex.OverrideValidValues = true
		ex.ValidValuesCount = len(values)
		ex.ValidValues = bt.copyValid(values)
	}
	return ex
}

// copyValid copies values into an allocator-owned array.
// A short allocation is unrecoverable.
func (bt *batch) copyValid(values []int) []int32 {
	dst := bt.alloc.AllocValidValues(len(values))
	if len(dst) < len(values) {
		panic(fmt.Errorf("%w: want %d values, got %d", ErrAllocation, len(values), len(dst)))
	}
	dst = dst[:len(values)]
	for i, v := range values {
		dst[i] = int32(v)
	}
	bt.owned = append(bt.owned, dst)
	return dst
}

// release returns every valid-value array to the allocator. It runs once;
// later calls do nothing.
func (bt *batch) release() {
	if bt.released {
		return
	}
	bt.released = true
	for _, arr := range bt.owned {
		bt.alloc.FreeValidValues(arr)
	}
	for i := range bt.chars {
		bt.chars[i].ValidValues = nil
	}
}

// arrays returns how many valid-value copies the batch allocated.
func (bt *batch) arrays() int { return len(bt.owned) }
