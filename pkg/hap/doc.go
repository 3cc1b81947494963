// Package hap bridges typed device properties into an accessory-control host.
//
// # Model
//
//	HostContext (one per process)
//	└── Accessory (identity, category, port, config version)
//	    ├── AccessoryInformation service (installed at bring-up)
//	    └── user services
//	        └── Characteristic (String, Float or Int)
//
// A Characteristic exposes capability probes (CanRead, CanWrite), typed
// Read/Write on Value, and three optional override facets (maximum,
// minimum, valid values). Capabilities are derived from the behavior a
// characteristic was built with: a functional characteristic without a
// write closure is read-only, without a read closure write-only.
//
// # Host boundary
//
// The host only sees pointer-sized payloads and erased callbacks. Values
// are converted with package codec at exactly two places: the erased
// read/write/event callbacks and the transfer structures built by
// AddService. Callbacks carry a context handle, never a Go pointer.
//
// # Bring-up
//
// Accessory registration is two-phase:
//
//	Unregistered -> Registering -> AwaitingCallback -> Ready
//
// Register runs the host's global init once per HostContext, obtains an
// accessory handle and returns. When the host later invokes the callback,
// the accessory object is fetched, the six mandatory information
// characteristics are installed, the state becomes Ready and the
// InitFunc runs to add user services.
//
// # Concurrency
//
// The host drives every entry point synchronously. Nothing in this package
// locks; serializing calls across execution contexts is up to the host.
package hap
