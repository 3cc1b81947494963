// Package host defines the boundary to the accessory-control host runtime.
//
// The host only understands pointer-sized values (Payload), opaque handles
// and tables of erased callbacks. Everything in this package mirrors that
// shape; typed values never appear here.
//
// # Operations
//
// A host implementation provides:
//   - Init: one-time global initialization
//   - RegisterAccessory: returns an accessory handle and later invokes the
//     registered callback from its own execution context
//   - AddAccessory: returns the accessory object for a handle
//   - AddCharacteristics / AddCharacteristicsEx: registers a service
//   - EmitEvent: reports a value change for an enabled event handle
//
// # Transfer structures
//
// Characteristic (basic) and CharacteristicEx (extended) are built right
// before an add call. Hosts must copy anything they keep: the valid-value
// array of a CharacteristicEx is released as soon as the call returns.
package host
