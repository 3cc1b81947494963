package log

import (
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// Event files are only ever written by this package, so decoding is
// strict: duplicate keys or indefinite-length items mean a corrupt file.
// Integers decode signed so access values keep the sign of the int32
// they were logged from.
var (
	eventEnc = mustEncMode(cbor.EncOptions{
		Sort:        cbor.SortCoreDeterministic,
		IndefLength: cbor.IndefLengthForbidden,
		Time:        cbor.TimeRFC3339Nano,
	})
	eventDec = mustDecMode(cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		IntDec:      cbor.IntDecConvertSigned,
	})
)

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("event CBOR encoder: %v", err))
	}
	return em
}

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("event CBOR decoder: %v", err))
	}
	return dm
}

// EncodeEvent encodes an Event to CBOR.
func EncodeEvent(event Event) ([]byte, error) {
	return eventEnc.Marshal(event)
}

// DecodeEvent decodes a single CBOR-encoded Event.
func DecodeEvent(data []byte) (Event, error) {
	var event Event
	err := eventDec.Unmarshal(data, &event)
	return event, err
}

// NewEncoder returns a stream encoder for events.
func NewEncoder(w io.Writer) *cbor.Encoder { return eventEnc.NewEncoder(w) }

// NewDecoder returns a stream decoder for events.
func NewDecoder(r io.Reader) *cbor.Decoder { return eventDec.NewDecoder(r) }

// Event is a bridge event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the host context that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction is relative to the bridge: In from the host, Out to it.
	Direction Direction `cbor:"3,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"4,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"5,keyasint"`

	// AccessoryID is the accessory identifier, if known.
	AccessoryID string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Access      *AccessEvent      `cbor:"10,keyasint,omitempty"`
	Service     *ServiceEvent     `cbor:"11,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"12,keyasint,omitempty"`
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"`
}

// Direction indicates which way a call crossed the host boundary.
type Direction uint8

const (
	// DirectionIn is a call from the host into the bridge.
	DirectionIn Direction = 0
	// DirectionOut is a call from the bridge into the host.
	DirectionOut Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which part of the bridge captured the event.
type Layer uint8

const (
	// LayerHost is the erased callback boundary.
	LayerHost Layer = 0
	// LayerCharacteristic is the capability and notification layer.
	LayerCharacteristic Layer = 1
	// LayerAccessory is service composition and bring-up.
	LayerAccessory Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerHost:
		return "HOST"
	case LayerCharacteristic:
		return "CHARACTERISTIC"
	case LayerAccessory:
		return "ACCESSORY"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryAccess is a read, write or event-enable call.
	CategoryAccess Category = 0
	// CategoryNotification is a value-changed event sent to the host.
	CategoryNotification Category = 1
	// CategoryRegistration is accessory or service registration.
	CategoryRegistration Category = 2
	// CategoryState is a state change.
	CategoryState Category = 3
	// CategoryError is an error event.
	CategoryError Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryAccess:
		return "ACCESS"
	case CategoryNotification:
		return "NOTIFICATION"
	case CategoryRegistration:
		return "REGISTRATION"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// AccessOp is the kind of characteristic access.
type AccessOp uint8

const (
	AccessRead          AccessOp = 0
	AccessWrite         AccessOp = 1
	AccessEnableEvents  AccessOp = 2
	AccessDisableEvents AccessOp = 3
	AccessEmit          AccessOp = 4
)

// String returns the operation name.
func (o AccessOp) String() string {
	switch o {
	case AccessRead:
		return "READ"
	case AccessWrite:
		return "WRITE"
	case AccessEnableEvents:
		return "EVENTS_ON"
	case AccessDisableEvents:
		return "EVENTS_OFF"
	case AccessEmit:
		return "EMIT"
	default:
		return "UNKNOWN"
	}
}

// AccessEvent captures one characteristic access.
type AccessEvent struct {
	// Op is the access kind.
	Op AccessOp `cbor:"1,keyasint"`

	// CharacteristicType is the HAP short type ID.
	CharacteristicType uint16 `cbor:"2,keyasint"`

	// Payload is the raw slot value exchanged with the host.
	Payload uint64 `cbor:"3,keyasint"`

	// Length is the host-reported length for writes.
	Length int `cbor:"4,keyasint,omitempty"`

	// Value is the decoded value (string, float32 or int32).
	Value any `cbor:"5,keyasint,omitempty"`
}

// ServiceEvent captures a service registration batch.
type ServiceEvent struct {
	// ServiceType is the HAP short type ID.
	ServiceType uint16 `cbor:"1,keyasint"`

	// Characteristics is the batch size.
	Characteristics int `cbor:"2,keyasint"`

	// ValidValueArrays is how many valid-value copies were allocated and released.
	ValidValueArrays int `cbor:"3,keyasint,omitempty"`

	// Extended is true when the extended transfer structure was used.
	Extended bool `cbor:"4,keyasint,omitempty"`
}

// StateChangeEvent captures lifecycle transitions.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntityHost is the process-wide host initialization.
	StateEntityHost StateEntity = 0
	// StateEntityAccessory is an accessory bring-up state machine.
	StateEntityAccessory StateEntity = 1
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntityHost:
		return "HOST"
	case StateEntityAccessory:
		return "ACCESSORY"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Layer where the error occurred.
	Layer Layer `cbor:"1,keyasint"`

	// Message is the error message.
	Message string `cbor:"2,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"3,keyasint,omitempty"`
}
