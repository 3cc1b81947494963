package hap

import (
	"fmt"
	"slices"

	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// Identity holds the accessory's identifying strings. The accessory keeps
// the pointer; the information service reads the fields on every request.
type Identity struct {
	Name            string
	ID              string
	SetupCode       string
	Manufacturer    string
	FirmwareVersion string
	Model           string
	SerialNumber    string
}

// Params are the registration parameters besides identity.
type Params struct {
	Category host.Category

	// Port is the TCP port the host should announce (0 lets the host pick).
	Port int

	// ConfigVersion must be bumped whenever the characteristic set changes.
	ConfigVersion int
}

// InitFunc adds user services once the accessory is Ready.
type InitFunc func(a *Accessory) error

// State is the accessory bring-up state.
type State uint8

const (
	StateUnregistered State = iota
	StateRegistering
	StateAwaitingCallback
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnregistered:
		return "UNREGISTERED"
	case StateRegistering:
		return "REGISTERING"
	case StateAwaitingCallback:
		return "AWAITING_CALLBACK"
	case StateReady:
		return "READY"
	default:
		return "UNKNOWN"
	}
}

// Accessory is a device registered with the host and composed of services.
// Characteristics added to it are referenced, not owned.
type Accessory struct {
	hc       *HostContext
	identity *Identity
	params   Params
	init     InitFunc

	state  State
	ctx    host.Context
	handle host.AccessoryHandle
	object host.AccessoryObject

	// callbackPending is set when the host calls back before Register
	// has stored the handle.
	callbackPending bool

	info     []Characteristic
	services []host.ServiceType
	err      error
}

// NewAccessory creates an unregistered accessory. init may be nil.
func NewAccessory(hc *HostContext, identity *Identity, params Params, init InitFunc) *Accessory {
	a := &Accessory{
		hc:       hc,
		identity: identity,
		params:   params,
		init:     init,
	}
	a.info = a.informationCharacteristics()
	return a
}

// State returns the bring-up state.
func (a *Accessory) State() State { return a.state }

// Handle returns the host accessory handle, or zero before registration.
func (a *Accessory) Handle() host.AccessoryHandle { return a.handle }

// Object returns the host accessory object, or zero before the callback.
func (a *Accessory) Object() host.AccessoryObject { return a.object }

// Err returns the last error recorded during bring-up.
func (a *Accessory) Err() error { return a.err }

// Identity returns the identity the accessory was created with.
func (a *Accessory) Identity() *Identity { return a.identity }

// Services returns the service types added so far, in order.
func (a *Accessory) Services() []host.ServiceType { return slices.Clone(a.services) }

// Information returns the mandatory characteristics of the accessory
// information service.
func (a *Accessory) Information() []Characteristic { return slices.Clone(a.info) }

// Register runs the host's global init if needed and requests an accessory
// handle. Bring-up completes when the host invokes the registration
// callback.
func (a *Accessory) Register() error {
	if a.state != StateUnregistered {
		return ErrAlreadyRegistered
	}
	if a.identity == nil {
		return ErrNilIdentity
	}
	if err := a.hc.ensureInit(); err != nil {
		return fmt.Errorf("host init: %w", err)
	}

	a.setState(StateRegistering, "register")
	if a.ctx == 0 {
		a.ctx = a.hc.register(a)
	}

	handle, err := a.hc.host.RegisterAccessory(host.Registration{
		Name:          a.identity.Name,
		ID:            a.identity.ID,
		SetupCode:     a.identity.SetupCode,
		Manufacturer:  a.identity.Manufacturer,
		Category:      a.params.Category,
		Port:          a.params.Port,
		ConfigVersion: a.params.ConfigVersion,
		Context:       a.ctx,
		Callback:      a.hc.accessoryCallback,
	})
	if err == nil && handle == 0 {
		err = ErrInvalidHandle
	}
	if err != nil {
		a.callbackPending = false
		a.setState(StateUnregistered, err.Error())
		a.recordError("register", err)
		return fmt.Errorf("register accessory %q: %w", a.identity.Name, err)
	}

	a.handle = handle
	a.hc.emit(log.Event{
		Direction:   log.DirectionOut,
		Layer:       log.LayerAccessory,
		Category:    log.CategoryRegistration,
		AccessoryID: a.identity.ID,
	})
	a.setState(StateAwaitingCallback, "handle assigned")

	if a.callbackPending {
		a.callbackPending = false
		a.bringUp()
	}
	return nil
}

// callback handles the host's post-registration call.
func (a *Accessory) callback() {
	switch a.state {
	case StateAwaitingCallback:
		a.bringUp()
	case StateRegistering:
		a.callbackPending = true
	default:
		a.recordError("callback", fmt.Errorf("%w in state %s", ErrUnexpectedCallback, a.state))
	}
}

func (a *Accessory) bringUp() {
	object, err := a.hc.host.AddAccessory(a.handle)
	if err == nil && object == 0 {
		err = ErrInvalidHandle
	}
	if err != nil {
		a.recordError("add accessory", err)
		return
	}
	a.object = object

	if err := a.addInformationService(); err != nil {
		a.recordError("information service", err)
		return
	}
	a.setState(StateReady, "information service installed")

	if a.init == nil {
		return
	}
	if err := a.init(a); err != nil {
		a.recordError("init", err)
	}
}

func (a *Accessory) informationCharacteristics() []Characteristic {
	id := a.identity
	text := func(typ host.CharacteristicType, field func(*Identity) string) Characteristic {
		return NewStringFunction(typ, func() string {
			if id == nil {
				return ""
			}
			return field(id)
		}, nil)
	}
	return []Characteristic{
		NewIntFunction(host.CharacteristicIdentify, func() int { return 1 }, nil),
		text(host.CharacteristicManufacturer, func(i *Identity) string { return i.Manufacturer }),
		text(host.CharacteristicModel, func(i *Identity) string { return i.Model }),
		text(host.CharacteristicName, func(i *Identity) string { return i.Name }),
		text(host.CharacteristicSerialNumber, func(i *Identity) string { return i.SerialNumber }),
		text(host.CharacteristicFirmwareRevision, func(i *Identity) string { return i.FirmwareVersion }),
	}
}

// addInformationService installs the mandatory information service using
// the basic transfer structures.
func (a *Accessory) addInformationService() error {
	chars := make([]host.Characteristic, 0, len(a.info))
	for _, c := range a.info {
		if err := c.base().bind(a.hc, a.handle, a.identity.ID); err != nil {
			return err
		}
		chars = append(chars, a.hc.basic(c))
	}

	err := a.hc.host.AddCharacteristics(a.handle, a.object, host.ServiceAccessoryInformation, chars)
	a.serviceEvent(host.ServiceAccessoryInformation, len(chars), 0, false)
	if err != nil {
		return fmt.Errorf("add service %s: %w", host.ServiceAccessoryInformation, err)
	}
	a.services = append(a.services, host.ServiceAccessoryInformation)
	return nil
}

// AddService registers a service made of chars with the host. It may be
// called once per service after the accessory is Ready.
//
// Valid-value copies made for the transfer are released when AddService
// returns, whether or not the host accepted the service.
func (a *Accessory) AddService(service host.ServiceType, chars ...Characteristic) error {
	if a.state != StateReady {
		return ErrNotReady
	}
	for _, c := range chars {
		if c == nil {
			return ErrNilCharacteristic
		}
		if b := c.base(); b.accessory != 0 && b.accessory != a.handle {
			return ErrCharacteristicBound
		}
	}
	for _, c := range chars {
		if err := c.base().bind(a.hc, a.handle, a.identity.ID); err != nil {
			return err
		}
	}

	bt := a.hc.newBatch(len(chars))
	defer bt.release()
	bt.add(a.hc, chars)

	err := a.hc.host.AddCharacteristicsEx(a.handle, a.object, service, bt.chars)
	a.serviceEvent(service, len(chars), bt.arrays(), true)
	if err != nil {
		a.hc.errorLog("add service failed", "service", service.String(), "error", err)
		return fmt.Errorf("add service %s: %w", service, err)
	}
	a.services = append(a.services, service)
	a.hc.debugLog("service added", "accessory", a.identity.ID, "service", service.String(), "characteristics", len(chars))
	return nil
}

func (a *Accessory) serviceEvent(service host.ServiceType, n, arrays int, extended bool) {
	a.hc.emit(log.Event{
		Direction:   log.DirectionOut,
		Layer:       log.LayerAccessory,
		Category:    log.CategoryRegistration,
		AccessoryID: a.identity.ID,
		Service: &log.ServiceEvent{
			ServiceType:      uint16(service),
			Characteristics:  n,
			ValidValueArrays: arrays,
			Extended:         extended,
		},
	})
}

func (a *Accessory) setState(s State, reason string) {
	old := a.state
	a.state = s
	a.hc.debugLog("accessory state", "accessory", a.identity.ID, "from", old.String(), "to", s.String())
	a.hc.emit(log.Event{
		Direction:   log.DirectionIn,
		Layer:       log.LayerAccessory,
		Category:    log.CategoryState,
		AccessoryID: a.identity.ID,
		StateChange: &log.StateChangeEvent{
			Entity:   log.StateEntityAccessory,
			OldState: old.String(),
			NewState: s.String(),
			Reason:   reason,
		},
	})
}

// recordError keeps err as the bring-up error and reports it.
func (a *Accessory) recordError(op string, err error) {
	a.err = err
	id := ""
	if a.identity != nil {
		id = a.identity.ID
	}
	a.hc.errorLog("accessory "+op+" failed", "accessory", id, "error", err)
	a.hc.emit(log.Event{
		Direction:   log.DirectionIn,
		Layer:       log.LayerAccessory,
		Category:    log.CategoryError,
		AccessoryID: id,
		Error: &log.ErrorEventData{
			Layer:   log.LayerAccessory,
			Message: err.Error(),
			Context: op,
		},
	})
}
