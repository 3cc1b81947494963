package hap

import (
	"github.com/hapbridge/hap-go/pkg/codec"
	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// Characteristic is a typed, observable property of an accessory.
//
// Read and Write must only be called when CanRead and CanWrite report
// true. Write on a non-writable characteristic is ignored.
type Characteristic interface {
	// Type returns the characteristic type tag.
	Type() host.CharacteristicType

	// Kind returns the kind of values this characteristic carries.
	Kind() Kind

	Read() Value
	CanRead() bool
	Write(v Value)
	CanWrite() bool

	// MaxValueOverride returns the maximum value, if overridden.
	MaxValueOverride() (Value, bool)

	// MinValueOverride returns the minimum value, if overridden.
	MinValueOverride() (Value, bool)

	// ValidValuesOverride returns the valid-value set, if overridden.
	ValidValuesOverride() ([]int, bool)

	// Notify reports the current value as changed. No-op if not readable.
	Notify()

	// RegisterForNotifications adds a listener called after every value change.
	RegisterForNotifications(fn func(Characteristic))

	base() *Base
}

// Base holds the state shared by all characteristics: type tag, the
// accessory back-reference, the host event handle and local listeners.
// Typed characteristics embed *Base.
type Base struct {
	typ  host.CharacteristicType
	kind Kind
	self Characteristic

	// apply stores a value through the typed accessor without notifying.
	apply func(Value)

	hc          *HostContext
	accessory   host.AccessoryHandle
	accessoryID string
	ctx         host.Context
	event       host.EventHandle

	listeners []func(Characteristic)

	// readText backs text payloads returned by reads and stays untouched
	// until the next read. notifyText backs payloads of locally
	// originated change events.
	readText   codec.TextBuffer
	notifyText codec.TextBuffer
}

func newBase(typ host.CharacteristicType, kind Kind, self Characteristic, apply func(Value)) *Base {
	return &Base{
		typ:   typ,
		kind:  kind,
		self:  self,
		apply: apply,
	}
}

// Type returns the characteristic type tag.
func (b *Base) Type() host.CharacteristicType { return b.typ }

// Kind returns the value kind.
func (b *Base) Kind() Kind { return b.kind }

// MaxValueOverride reports no maximum override.
func (b *Base) MaxValueOverride() (Value, bool) { return Value{}, false }

// MinValueOverride reports no minimum override.
func (b *Base) MinValueOverride() (Value, bool) { return Value{}, false }

// ValidValuesOverride reports no valid-value override.
func (b *Base) ValidValuesOverride() ([]int, bool) { return nil, false }

// Bound reports whether the characteristic has been added to an accessory.
func (b *Base) Bound() bool { return b.accessory != 0 }

// AccessoryHandle returns the owning accessory's host handle, or zero.
func (b *Base) AccessoryHandle() host.AccessoryHandle { return b.accessory }

// EventHandle returns the host event handle, or zero if eventing is off.
func (b *Base) EventHandle() host.EventHandle { return b.event }

// RegisterForNotifications adds a listener called after every value change.
func (b *Base) RegisterForNotifications(fn func(Characteristic)) {
	b.listeners = append(b.listeners, fn)
}

// Write stores v and reports the change. v is converted to the
// characteristic's kind.
func (b *Base) Write(v Value) {
	if !b.self.CanWrite() {
		return
	}
	v = v.Convert(b.kind)
	b.store(v, encodePayload(v, &b.notifyText))
}

// Notify reports the current value to the host and listeners.
func (b *Base) Notify() {
	if !b.self.CanRead() {
		return
	}
	v := b.self.Read()
	b.valueChanged(encodePayload(v, &b.notifyText), v)
}

// store applies v and dispatches exactly one change notification,
// whether or not the value differs from the previous one.
func (b *Base) store(v Value, p host.Payload) {
	b.apply(v)
	b.valueChanged(p, v)
}

// valueChanged forwards p to the host if eventing is enabled, then calls
// every listener in registration order.
func (b *Base) valueChanged(p host.Payload, v Value) {
	if b.event != 0 {
		b.hc.host.EmitEvent(b.accessory, b.event, p)
		b.hc.emit(log.Event{
			Direction:   log.DirectionOut,
			Layer:       log.LayerCharacteristic,
			Category:    log.CategoryNotification,
			AccessoryID: b.accessoryID,
			Access: &log.AccessEvent{
				Op:                 log.AccessEmit,
				CharacteristicType: uint16(b.typ),
				Payload:            uint64(p),
				Value:              v.Any(),
			},
		})
	}

	for _, fn := range b.listeners {
		if fn != nil {
			fn(b.self)
		}
	}
}

// bind assigns the accessory back-reference and the host context handle.
func (b *Base) bind(hc *HostContext, handle host.AccessoryHandle, accessoryID string) error {
	if b.accessory != 0 && b.accessory != handle {
		return ErrCharacteristicBound
	}
	b.hc = hc
	b.accessory = handle
	b.accessoryID = accessoryID
	if b.ctx == 0 {
		b.ctx = hc.register(b.self)
	}
	return nil
}

func (b *Base) setEventHandle(handle host.EventHandle, enable bool) {
	if enable {
		b.event = handle
		return
	}
	b.event = 0
}

func (b *Base) base() *Base { return b }
