package hap

import "errors"

// Bridge errors.
var (
	ErrAlreadyRegistered   = errors.New("accessory already registered")
	ErrNotReady            = errors.New("accessory not ready")
	ErrInvalidHandle       = errors.New("host returned an invalid handle")
	ErrUnexpectedCallback  = errors.New("unexpected accessory callback")
	ErrNilCharacteristic   = errors.New("nil characteristic")
	ErrCharacteristicBound = errors.New("characteristic bound to another accessory")
	ErrNilIdentity         = errors.New("accessory identity is nil")

	// ErrAllocation is fatal: a valid-value copy could not be allocated.
	ErrAllocation = errors.New("valid-value allocation failed")
)
