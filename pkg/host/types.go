package host

// Payload is the pointer-sized value slot exchanged with the host.
// Scalars are encoded directly into the slot. Text is the address of a
// NUL-terminated buffer owned by whoever produced the payload.
type Payload uintptr

// AccessoryHandle identifies a registered accessory. Zero is invalid.
type AccessoryHandle uintptr

// AccessoryObject is the host-side accessory object assigned after registration.
type AccessoryObject uintptr

// EventHandle is the token the host hands out when eventing is enabled.
// Zero means eventing is disabled.
type EventHandle uintptr

// Context is the opaque value the host passes back to erased callbacks.
type Context uintptr

// ReadFunc returns the current value of the characteristic identified by ctx.
type ReadFunc func(ctx Context) Payload

// WriteFunc applies a new value to the characteristic identified by ctx.
// n is the length of the value in bytes as reported by the host.
type WriteFunc func(ctx Context, value Payload, n int)

// EventFunc enables or disables eventing for the characteristic identified by ctx.
type EventFunc func(ctx Context, handle EventHandle, enable bool)

// AccessoryCallback is invoked by the host once it has accepted a registration.
type AccessoryCallback func(ctx Context)

// Characteristic is the basic transfer structure.
type Characteristic struct {
	Type     CharacteristicType
	Value    Payload
	Context  Context
	Read     ReadFunc
	Write    WriteFunc
	SetEvent EventFunc
}

// CharacteristicEx is the extended transfer structure carrying override facets.
type CharacteristicEx struct {
	Type     CharacteristicType
	Value    Payload
	Context  Context
	Read     ReadFunc
	Write    WriteFunc
	SetEvent EventFunc

	OverrideMaxValue bool
	MaxValue         Payload
	OverrideMinValue bool
	MinValue         Payload

	// Reserved fields are always false/zero.
	Reserved        bool
	ReservedPointer Payload

	OverrideValidValues bool
	ValidValuesCount    int
	ValidValues         []int32
}

// Registration carries the arguments of RegisterAccessory.
type Registration struct {
	Name          string
	ID            string
	SetupCode     string
	Manufacturer  string
	Category      Category
	Port          int
	ConfigVersion int
	Context       Context
	Callback      AccessoryCallback
}
