package host

// Host is the accessory-control runtime consumed by the bridge.
//
// All methods are called synchronously from the bridge. Failures are
// reported by the host; the bridge only propagates them.
type Host interface {
	// Init runs the host's global one-time initialization.
	Init() error

	// RegisterAccessory requests an accessory handle. The host invokes
	// reg.Callback with reg.Context later, never from inside this call.
	RegisterAccessory(reg Registration) (AccessoryHandle, error)

	// AddAccessory returns the accessory object for an accepted registration.
	AddAccessory(handle AccessoryHandle) (AccessoryObject, error)

	// AddCharacteristics registers a service using basic transfer structures.
	AddCharacteristics(handle AccessoryHandle, object AccessoryObject, service ServiceType, chars []Characteristic) error

	// AddCharacteristicsEx registers a service using extended transfer structures.
	AddCharacteristicsEx(handle AccessoryHandle, object AccessoryObject, service ServiceType, chars []CharacteristicEx) error

	// EmitEvent reports a value change on an enabled event handle.
	EmitEvent(handle AccessoryHandle, event EventHandle, value Payload)
}

// Allocator is implemented by hosts that need valid-value arrays in
// host-owned memory. Every array returned by AllocValidValues is handed
// back to FreeValidValues exactly once.
type Allocator interface {
	AllocValidValues(n int) []int32
	FreeValidValues(values []int32)
}
