// Package mocks provides testify mocks for the host interfaces.
package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/hapbridge/hap-go/pkg/host"
)

// Host is a testify mock of host.Host.
//
// Transfer structures hold func values, which never compare equal, so
// match slice arguments with mock.Anything or mock.MatchedBy.
type Host struct{ mock.Mock }

var _ host.Host = (*Host)(nil)

func (h *Host) Init() error { return h.Called().Error(0) }

func (h *Host) RegisterAccessory(reg host.Registration) (host.AccessoryHandle, error) {
	ret := h.Called(reg)
	return ret.Get(0).(host.AccessoryHandle), ret.Error(1)
}

func (h *Host) AddAccessory(handle host.AccessoryHandle) (host.AccessoryObject, error) {
	ret := h.Called(handle)
	return ret.Get(0).(host.AccessoryObject), ret.Error(1)
}

func (h *Host) AddCharacteristics(handle host.AccessoryHandle, object host.AccessoryObject, service host.ServiceType, chars []host.Characteristic) error {
	return h.Called(handle, object, service, chars).Error(0)
}

func (h *Host) AddCharacteristicsEx(handle host.AccessoryHandle, object host.AccessoryObject, service host.ServiceType, chars []host.CharacteristicEx) error {
	return h.Called(handle, object, service, chars).Error(0)
}

func (h *Host) EmitEvent(handle host.AccessoryHandle, event host.EventHandle, value host.Payload) {
	h.Called(handle, event, value)
}

// Allocator is a testify mock of host.Allocator.
type Allocator struct{ mock.Mock }

var _ host.Allocator = (*Allocator)(nil)

func (a *Allocator) AllocValidValues(n int) []int32 {
	ret := a.Called(n)
	if ret.Get(0) == nil {
		return nil
	}
	return ret.Get(0).([]int32)
}

func (a *Allocator) FreeValidValues(values []int32) { a.Called(values) }
