// Package hostsim is an in-memory accessory host.
//
// It records registrations and services, queues registration callbacks
// until RunCallbacks, and drives characteristics through the erased
// functions they were registered with, the way a real host would.
package hostsim

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/hapbridge/hap-go/pkg/codec"
	"github.com/hapbridge/hap-go/pkg/host"
)

// Errors returned by the simulator's access helpers.
var (
	ErrUnknownAccessory = errors.New("unknown accessory handle")
	ErrNotReadable      = errors.New("characteristic has no read function")
	ErrNotWritable      = errors.New("characteristic has no write function")
	ErrNotFound         = errors.New("characteristic not found")
)

// Characteristic is the simulator's copy of one transfer structure.
type Characteristic struct {
	Type     host.CharacteristicType
	Value    host.Payload
	Context  host.Context
	Read     host.ReadFunc
	Write    host.WriteFunc
	SetEvent host.EventFunc

	OverrideMaxValue    bool
	MaxValue            host.Payload
	OverrideMinValue    bool
	MinValue            host.Payload
	OverrideValidValues bool

	// ValidValues is a copy; the transfer array is released by the bridge.
	ValidValues []int32

	// Event is the handle issued by EnableEvents, zero when disabled.
	Event host.EventHandle

	accessory host.AccessoryHandle
}

// Service is a registered service.
type Service struct {
	Type            host.ServiceType
	Extended        bool
	Characteristics []*Characteristic
}

// Accessory is a registered accessory.
type Accessory struct {
	Registration host.Registration
	Handle       host.AccessoryHandle
	Object       host.AccessoryObject
	Services     []*Service
}

// Emitted is one EmitEvent call.
type Emitted struct {
	Accessory host.AccessoryHandle
	Event     host.EventHandle
	Value     host.Payload
}

// Options control failure injection and callback timing.
type Options struct {
	// Reentrant invokes the registration callback from inside
	// RegisterAccessory instead of queueing it.
	Reentrant bool

	InitErr               error
	RegisterErr           error
	AddAccessoryErr       error
	AddCharacteristicsErr error

	// ShortAlloc makes AllocValidValues return nil.
	ShortAlloc bool
}

// Host is an in-memory host.Host and host.Allocator.
// It is not safe for concurrent use.
type Host struct {
	opts Options

	initCalls   int
	accessories []*Accessory
	pending     []host.Registration
	emitted     []Emitted
	nextEvent   host.EventHandle

	allocs     int
	frees      int
	doubleFree int
	live       map[*int32]bool
}

var (
	_ host.Host      = (*Host)(nil)
	_ host.Allocator = (*Host)(nil)
)

// New creates a simulator.
func New(opts Options) *Host {
	return &Host{
		opts: opts,
		live: make(map[*int32]bool),
	}
}

// Init counts global initializations.
func (h *Host) Init() error {
	h.initCalls++
	return h.opts.InitErr
}

// RegisterAccessory records reg and queues its callback.
func (h *Host) RegisterAccessory(reg host.Registration) (host.AccessoryHandle, error) {
	if h.opts.RegisterErr != nil {
		return 0, h.opts.RegisterErr
	}
	a := &Accessory{
		Registration: reg,
		Handle:       host.AccessoryHandle(len(h.accessories) + 1),
	}
	h.accessories = append(h.accessories, a)
	if h.opts.Reentrant {
		reg.Callback(reg.Context)
	} else {
		h.pending = append(h.pending, reg)
	}
	return a.Handle, nil
}

// AddAccessory assigns the accessory object.
func (h *Host) AddAccessory(handle host.AccessoryHandle) (host.AccessoryObject, error) {
	if h.opts.AddAccessoryErr != nil {
		return 0, h.opts.AddAccessoryErr
	}
	a, err := h.accessory(handle)
	if err != nil {
		return 0, err
	}
	if a.Object == 0 {
		a.Object = host.AccessoryObject(0x1000 + uintptr(handle))
	}
	return a.Object, nil
}

// AddCharacteristics records a service built from basic transfer structures.
func (h *Host) AddCharacteristics(handle host.AccessoryHandle, object host.AccessoryObject, service host.ServiceType, chars []host.Characteristic) error {
	a, err := h.checkObject(handle, object)
	if err != nil {
		return err
	}
	if h.opts.AddCharacteristicsErr != nil {
		return h.opts.AddCharacteristicsErr
	}
	svc := &Service{Type: service}
	for _, c := range chars {
		svc.Characteristics = append(svc.Characteristics, &Characteristic{
			Type:      c.Type,
			Value:     c.Value,
			Context:   c.Context,
			Read:      c.Read,
			Write:     c.Write,
			SetEvent:  c.SetEvent,
			accessory: handle,
		})
	}
	a.Services = append(a.Services, svc)
	return nil
}

// AddCharacteristicsEx records a service built from extended transfer
// structures, copying valid-value arrays.
func (h *Host) AddCharacteristicsEx(handle host.AccessoryHandle, object host.AccessoryObject, service host.ServiceType, chars []host.CharacteristicEx) error {
	a, err := h.checkObject(handle, object)
	if err != nil {
		return err
	}
	if h.opts.AddCharacteristicsErr != nil {
		return h.opts.AddCharacteristicsErr
	}
	svc := &Service{Type: service, Extended: true}
	for _, c := range chars {
		sc := &Characteristic{
			Type:                c.Type,
			Value:               c.Value,
			Context:             c.Context,
			Read:                c.Read,
			Write:               c.Write,
			SetEvent:            c.SetEvent,
			OverrideMaxValue:    c.OverrideMaxValue,
			MaxValue:            c.MaxValue,
			OverrideMinValue:    c.OverrideMinValue,
			MinValue:            c.MinValue,
			OverrideValidValues: c.OverrideValidValues,
			accessory:           handle,
		}
		if c.OverrideValidValues {
			if c.ValidValuesCount > len(c.ValidValues) {
				return fmt.Errorf("valid-value count %d exceeds array length %d", c.ValidValuesCount, len(c.ValidValues))
			}
			sc.ValidValues = append([]int32{}, c.ValidValues[:c.ValidValuesCount]...)
		}
		svc.Characteristics = append(svc.Characteristics, sc)
	}
	a.Services = append(a.Services, svc)
	return nil
}

// EmitEvent records the event.
func (h *Host) EmitEvent(handle host.AccessoryHandle, event host.EventHandle, value host.Payload) {
	h.emitted = append(h.emitted, Emitted{Accessory: handle, Event: event, Value: value})
}

// AllocValidValues returns a fresh array of n values.
func (h *Host) AllocValidValues(n int) []int32 {
	if h.opts.ShortAlloc {
		return nil
	}
	h.allocs++
	// One spare element gives zero-length arrays a distinct address.
	arr := make([]int32, n, n+1)
	h.live[&arr[:1][0]] = true
	return arr
}

// FreeValidValues releases an array from AllocValidValues.
func (h *Host) FreeValidValues(values []int32) {
	h.frees++
	if cap(values) == 0 {
		h.doubleFree++
		return
	}
	key := &values[:1][0]
	if !h.live[key] {
		h.doubleFree++
		return
	}
	delete(h.live, key)
}

// RunCallbacks invokes queued registration callbacks in order, including
// any queued while running. It returns how many ran.
func (h *Host) RunCallbacks() int {
	n := 0
	for len(h.pending) > 0 {
		reg := h.pending[0]
		h.pending = h.pending[1:]
		reg.Callback(reg.Context)
		n++
	}
	return n
}

// InitCalls returns how many times Init ran.
func (h *Host) InitCalls() int { return h.initCalls }

// Pending returns the number of queued callbacks.
func (h *Host) Pending() int { return len(h.pending) }

// Accessories returns the registered accessories in order.
func (h *Host) Accessories() []*Accessory { return h.accessories }

// Accessory returns the accessory for handle.
func (h *Host) Accessory(handle host.AccessoryHandle) (*Accessory, error) {
	return h.accessory(handle)
}

// Emitted returns the recorded EmitEvent calls.
func (h *Host) Emitted() []Emitted { return h.emitted }

// Allocs returns how many valid-value arrays were allocated.
func (h *Host) Allocs() int { return h.allocs }

// Frees returns how many valid-value arrays were released.
func (h *Host) Frees() int { return h.frees }

// Outstanding returns how many allocated arrays have not been released.
func (h *Host) Outstanding() int { return len(h.live) }

// DoubleFrees returns how many releases did not match a live allocation.
func (h *Host) DoubleFrees() int { return h.doubleFree }

// Find returns the first characteristic of type typ in service.
func (h *Host) Find(handle host.AccessoryHandle, service host.ServiceType, typ host.CharacteristicType) (*Characteristic, error) {
	a, err := h.accessory(handle)
	if err != nil {
		return nil, err
	}
	for _, svc := range a.Services {
		if svc.Type != service {
			continue
		}
		for _, c := range svc.Characteristics {
			if c.Type == typ {
				return c, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, service, typ)
}

// Read calls the characteristic's read function.
func (h *Host) Read(c *Characteristic) (host.Payload, error) {
	if c.Read == nil {
		return 0, ErrNotReadable
	}
	return c.Read(c.Context), nil
}

// ReadText reads a text characteristic.
func (h *Host) ReadText(c *Characteristic) (string, error) {
	p, err := h.Read(c)
	if err != nil {
		return "", err
	}
	return codec.DecodeCString(p), nil
}

// Write calls the characteristic's write function.
func (h *Host) Write(c *Characteristic, value host.Payload, n int) error {
	if c.Write == nil {
		return ErrNotWritable
	}
	c.Write(c.Context, value, n)
	return nil
}

// WriteText writes s as a NUL-terminated payload of length len(s).
func (h *Host) WriteText(c *Characteristic, s string) error {
	var buf codec.TextBuffer
	err := h.Write(c, buf.Stage(s), len(s))
	runtime.KeepAlive(&buf)
	return err
}

// WriteBytes writes raw as-is with length n. raw is not NUL-terminated
// unless the caller adds it.
func (h *Host) WriteBytes(c *Characteristic, raw []byte, n int) error {
	err := h.Write(c, codec.BytesPayload(raw), n)
	runtime.KeepAlive(raw)
	return err
}

// EnableEvents issues a fresh event handle to the characteristic.
func (h *Host) EnableEvents(c *Characteristic) host.EventHandle {
	h.nextEvent++
	c.Event = h.nextEvent
	c.SetEvent(c.Context, c.Event, true)
	return c.Event
}

// DisableEvents turns eventing off.
func (h *Host) DisableEvents(c *Characteristic) {
	c.SetEvent(c.Context, c.Event, false)
	c.Event = 0
}

func (h *Host) accessory(handle host.AccessoryHandle) (*Accessory, error) {
	if handle == 0 || int(handle) > len(h.accessories) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAccessory, handle)
	}
	return h.accessories[handle-1], nil
}

func (h *Host) checkObject(handle host.AccessoryHandle, object host.AccessoryObject) (*Accessory, error) {
	a, err := h.accessory(handle)
	if err != nil {
		return nil, err
	}
	if a.Object == 0 || a.Object != object {
		return nil, fmt.Errorf("accessory %d: object %#x not assigned", handle, uintptr(object))
	}
	return a, nil
}
