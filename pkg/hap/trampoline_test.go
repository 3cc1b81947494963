package hap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapbridge/hap-go/pkg/codec"
	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/hostsim"
	"github.com/hapbridge/hap-go/pkg/log"
)

// lamp is a lightbulb accessory with a name, brightness and temperature.
type lamp struct {
	sim    *hostsim.Host
	events *captureLogger
	acc    *Accessory

	label      string
	brightness int
	setpoint   float32

	name   *StringCharacteristic
	level  *IntCharacteristic
	target *FloatCharacteristic
}

func newLamp(t *testing.T) *lamp {
	t.Helper()
	l := &lamp{
		sim:    hostsim.New(hostsim.Options{}),
		events: &captureLogger{},
		label:  "Kitchen Light",
	}
	l.name = NewStringFunction(host.CharacteristicName,
		func() string { return l.label }, func(s string) { l.label = s })
	l.level = NewIntFunction(host.CharacteristicBrightness,
		func() int { return l.brightness }, func(v int) { l.brightness = v },
		WithIntMin(0), WithIntMax(100))
	l.target = NewFloatFunction(host.CharacteristicTargetTemperature,
		func() float32 { return l.setpoint }, func(v float32) { l.setpoint = v })

	hc := NewHostContext(l.sim, WithEventLogger(l.events))
	l.acc = bringUp(t, l.sim, hc, testIdentity("Lamp", "AA:BB:CC:DD:EE:01"), func(a *Accessory) error {
		return a.AddService(host.ServiceLightbulb, l.name, l.level, l.target)
	})
	return l
}

func (l *lamp) find(t *testing.T, typ host.CharacteristicType) *hostsim.Characteristic {
	t.Helper()
	c, err := l.sim.Find(l.acc.Handle(), host.ServiceLightbulb, typ)
	require.NoError(t, err)
	return c
}

func TestFloatHostWriteRoundTrip(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicTargetTemperature)

	p := codec.EncodeFloat(21.5)
	assert.Equal(t, int32(2150), codec.DecodeInt(p))
	require.NoError(t, l.sim.Write(c, p, 4))
	assert.InDelta(t, 21.5, l.setpoint, codec.MaxFloatError)

	got, err := l.sim.Read(c)
	require.NoError(t, err)
	assert.Equal(t, int32(2150), codec.DecodeInt(got))
	assert.InDelta(t, 21.5, codec.DecodeFloat(got), codec.MaxFloatError)
}

func TestFloatLocalWriteRoundTrip(t *testing.T) {
	l := newLamp(t)

	l.target.WriteFloat(21.5)
	assert.InDelta(t, 21.5, l.target.ReadFloat(), codec.MaxFloatError)
}

func TestIntHostWrite(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicBrightness)

	assert.True(t, c.OverrideMinValue)
	assert.True(t, c.OverrideMaxValue)
	assert.Equal(t, int32(100), codec.DecodeInt(c.MaxValue))

	require.NoError(t, l.sim.Write(c, codec.EncodeInt(-7), 4))
	assert.Equal(t, -7, l.brightness)

	got, err := l.sim.Read(c)
	require.NoError(t, err)
	assert.Equal(t, int32(-7), codec.DecodeInt(got))
}

func TestTextReadStable(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicName)

	first, err := l.sim.Read(c)
	require.NoError(t, err)
	require.NotZero(t, first)
	assert.Equal(t, "Kitchen Light", codec.DecodeCString(first))

	second, err := l.sim.Read(c)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen Light", codec.DecodeCString(second))
}

func TestTextReadSurvivesNotify(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicName)
	l.sim.EnableEvents(c)

	p, err := l.sim.Read(c)
	require.NoError(t, err)
	require.Equal(t, "Kitchen Light", codec.DecodeCString(p))

	l.label = "Pantry and the long hallway beyond"
	l.name.Notify()
	l.name.WriteString("Cellar")

	assert.Equal(t, "Kitchen Light", codec.DecodeCString(p))
	require.Len(t, l.sim.Emitted(), 2)

	next, err := l.sim.Read(c)
	require.NoError(t, err)
	assert.Equal(t, "Cellar", codec.DecodeCString(next))
}

func TestTextHostWrite(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		n    int
		want string
	}{
		{"terminated", []byte("Hall\x00"), 4, "Hall"},
		{"length bounds unterminated data", []byte("Hallway"), 4, "Hall"},
		{"nul inside length", []byte("Hall\x00way"), 8, "Hall"},
		{"zero length", []byte("Hall\x00"), 0, ""},
		{"negative length", []byte("Hall\x00"), -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLamp(t)
			c := l.find(t, host.CharacteristicName)

			require.NoError(t, l.sim.WriteBytes(c, tt.raw, tt.n))
			assert.Equal(t, tt.want, l.label)
		})
	}
}

func TestHostWriteDispatch(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicBrightness)

	calls := 0
	l.level.RegisterForNotifications(func(Characteristic) { calls++ })

	// Eventing off: listeners only.
	require.NoError(t, l.sim.Write(c, codec.EncodeInt(30), 4))
	require.NoError(t, l.sim.Write(c, codec.EncodeInt(30), 4))
	assert.Equal(t, 2, calls)
	assert.Empty(t, l.sim.Emitted())

	e := l.sim.EnableEvents(c)
	assert.Equal(t, e, l.level.EventHandle())

	require.NoError(t, l.sim.Write(c, codec.EncodeInt(30), 4))
	assert.Equal(t, 3, calls)
	require.Len(t, l.sim.Emitted(), 1)
	assert.Equal(t, hostsim.Emitted{Accessory: l.acc.Handle(), Event: e, Value: codec.EncodeInt(30)}, l.sim.Emitted()[0])

	l.sim.DisableEvents(c)
	assert.Zero(t, l.level.EventHandle())
	require.NoError(t, l.sim.Write(c, codec.EncodeInt(31), 4))
	assert.Equal(t, 4, calls)
	assert.Len(t, l.sim.Emitted(), 1)
}

func TestLocalChangesReachHost(t *testing.T) {
	l := newLamp(t)
	name := l.find(t, host.CharacteristicName)
	target := l.find(t, host.CharacteristicTargetTemperature)
	eName := l.sim.EnableEvents(name)
	eTarget := l.sim.EnableEvents(target)

	l.target.WriteFloat(18.25)
	l.label = "Pantry"
	l.name.Notify()

	emitted := l.sim.Emitted()
	require.Len(t, emitted, 2)
	assert.Equal(t, eTarget, emitted[0].Event)
	assert.Equal(t, int32(1825), codec.DecodeInt(emitted[0].Value))
	assert.Equal(t, eName, emitted[1].Event)
	assert.Equal(t, "Pantry", codec.DecodeCString(emitted[1].Value))
}

func TestAccessEventsLogged(t *testing.T) {
	l := newLamp(t)
	c := l.find(t, host.CharacteristicBrightness)
	l.sim.EnableEvents(c)
	require.NoError(t, l.sim.Write(c, codec.EncodeInt(60), 4))
	_, err := l.sim.Read(c)
	require.NoError(t, err)

	var ops []log.AccessOp
	for _, e := range l.events.events {
		if e.Access != nil && e.Access.CharacteristicType == uint16(host.CharacteristicBrightness) {
			ops = append(ops, e.Access.Op)
			assert.Equal(t, "AA:BB:CC:DD:EE:01", e.AccessoryID)
		}
	}
	assert.Equal(t, []log.AccessOp{log.AccessEnableEvents, log.AccessWrite, log.AccessEmit, log.AccessRead}, ops)
}
