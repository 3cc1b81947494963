package hostsim

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapbridge/hap-go/pkg/codec"
	"github.com/hapbridge/hap-go/pkg/host"
)

func register(t *testing.T, h *Host, cb host.AccessoryCallback) host.AccessoryHandle {
	t.Helper()
	handle, err := h.RegisterAccessory(host.Registration{Name: "Lamp", ID: "AA:BB:CC:DD:EE:FF", Context: 7, Callback: cb})
	require.NoError(t, err)
	return handle
}

func TestRegisterQueuesCallback(t *testing.T) {
	h := New(Options{})

	var got []host.Context
	handle := register(t, h, func(ctx host.Context) { got = append(got, ctx) })

	assert.Equal(t, host.AccessoryHandle(1), handle)
	assert.Empty(t, got, "callback must not run inside RegisterAccessory")
	assert.Equal(t, 1, h.Pending())

	assert.Equal(t, 1, h.RunCallbacks())
	assert.Equal(t, []host.Context{7}, got)
	assert.Zero(t, h.Pending())
}

func TestRegisterReentrant(t *testing.T) {
	h := New(Options{Reentrant: true})

	called := false
	register(t, h, func(host.Context) { called = true })

	assert.True(t, called)
	assert.Zero(t, h.Pending())
}

func TestAddCharacteristicsRequiresObject(t *testing.T) {
	h := New(Options{})
	handle := register(t, h, func(host.Context) {})

	err := h.AddCharacteristics(handle, 1, host.ServiceLightbulb, nil)
	assert.Error(t, err)

	obj, err := h.AddAccessory(handle)
	require.NoError(t, err)
	require.NotZero(t, obj)

	require.NoError(t, h.AddCharacteristics(handle, obj, host.ServiceLightbulb, nil))
	a, err := h.Accessory(handle)
	require.NoError(t, err)
	require.Len(t, a.Services, 1)
	assert.False(t, a.Services[0].Extended)
}

func TestAddCharacteristicsExCopiesValidValues(t *testing.T) {
	h := New(Options{})
	handle := register(t, h, func(host.Context) {})
	obj, err := h.AddAccessory(handle)
	require.NoError(t, err)

	arr := h.AllocValidValues(3)
	copy(arr, []int32{0, 1, 3})
	err = h.AddCharacteristicsEx(handle, obj, host.ServiceThermostat, []host.CharacteristicEx{{
		Type:                host.CharacteristicTargetHeatingCoolingState,
		OverrideValidValues: true,
		ValidValuesCount:    3,
		ValidValues:         arr,
	}})
	require.NoError(t, err)
	h.FreeValidValues(arr)
	arr[0] = 99

	c, err := h.Find(handle, host.ServiceThermostat, host.CharacteristicTargetHeatingCoolingState)
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 3}, c.ValidValues)
	assert.Equal(t, 1, h.Allocs())
	assert.Equal(t, 1, h.Frees())
	assert.Zero(t, h.Outstanding())
}

func TestFreeValidValuesDetectsDoubleFree(t *testing.T) {
	h := New(Options{})

	arr := h.AllocValidValues(0)
	h.FreeValidValues(arr)
	h.FreeValidValues(arr)

	assert.Equal(t, 1, h.DoubleFrees())
	assert.Zero(t, h.Outstanding())
}

func TestShortAlloc(t *testing.T) {
	h := New(Options{ShortAlloc: true})
	assert.Nil(t, h.AllocValidValues(4))
	assert.Zero(t, h.Allocs())
}

func TestAccessHelpers(t *testing.T) {
	h := New(Options{})

	var (
		written string
		events  []host.EventHandle
	)
	label := codec.TextBuffer{}
	c := &Characteristic{
		Context: 3,
		Read: func(ctx host.Context) host.Payload {
			return label.Stage("Kitchen")
		},
		Write: func(ctx host.Context, p host.Payload, n int) {
			written = codec.DecodeText(p, n)
		},
		SetEvent: func(ctx host.Context, e host.EventHandle, enable bool) {
			if enable {
				events = append(events, e)
			} else {
				events = append(events, 0)
			}
		},
	}

	s, err := h.ReadText(c)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", s)

	require.NoError(t, h.WriteText(c, "Hall"))
	assert.Equal(t, "Hall", written)

	require.NoError(t, h.WriteBytes(c, []byte("Porch\x00junk"), 10))
	assert.Equal(t, "Porch", written)

	e := h.EnableEvents(c)
	assert.NotZero(t, e)
	h.DisableEvents(c)
	assert.Equal(t, []host.EventHandle{e, 0}, events)
	assert.Zero(t, c.Event)

	_, err = h.Read(&Characteristic{})
	assert.True(t, errors.Is(err, ErrNotReadable))
	assert.True(t, errors.Is(h.Write(&Characteristic{}, 0, 0), ErrNotWritable))
}

func TestInjectedErrors(t *testing.T) {
	boom := errors.New("boom")
	h := New(Options{InitErr: boom, RegisterErr: boom})

	assert.ErrorIs(t, h.Init(), boom)
	assert.Equal(t, 1, h.InitCalls())

	_, err := h.RegisterAccessory(host.Registration{})
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, h.Accessories())
}
