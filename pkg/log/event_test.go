package log

import (
	"bytes"
	"testing"
	"time"
)

func TestEncodeDecodeAccessEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	event := Event{
		Timestamp:   ts,
		SessionID:   "6f1c2d7e-0000-4000-8000-000000000001",
		Direction:   DirectionIn,
		Layer:       LayerHost,
		Category:    CategoryAccess,
		AccessoryID: "11:22:33:44:55:66",
		Access: &AccessEvent{
			Op:                 AccessWrite,
			CharacteristicType: 0x08,
			Payload:            75,
			Length:             4,
			Value:              int32(75),
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}

	if !decoded.Timestamp.Equal(ts) {
		t.Errorf("Timestamp: got %v, want %v", decoded.Timestamp, ts)
	}
	if decoded.SessionID != event.SessionID {
		t.Errorf("SessionID: got %q", decoded.SessionID)
	}
	if decoded.AccessoryID != event.AccessoryID {
		t.Errorf("AccessoryID: got %q", decoded.AccessoryID)
	}
	if decoded.Access == nil {
		t.Fatal("Access is nil")
	}
	if decoded.Access.Op != AccessWrite || decoded.Access.CharacteristicType != 0x08 {
		t.Errorf("Access: got %+v", decoded.Access)
	}
	if decoded.Access.Payload != 75 || decoded.Access.Length != 4 {
		t.Errorf("Access payload/length: got %d/%d", decoded.Access.Payload, decoded.Access.Length)
	}
	if v, ok := decoded.Access.Value.(int64); !ok || v != 75 {
		t.Errorf("Access.Value: got %T %v", decoded.Access.Value, decoded.Access.Value)
	}
	if decoded.Service != nil || decoded.StateChange != nil || decoded.Error != nil {
		t.Error("unexpected payloads set")
	}
}

func TestEncodeDecodeStateChange(t *testing.T) {
	event := Event{
		Timestamp: time.Now(),
		Layer:     LayerAccessory,
		Category:  CategoryState,
		StateChange: &StateChangeEvent{
			Entity:   StateEntityAccessory,
			OldState: "AWAITING_CALLBACK",
			NewState: "READY",
		},
	}

	data, err := EncodeEvent(event)
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if decoded.StateChange == nil || decoded.StateChange.NewState != "READY" {
		t.Fatalf("StateChange: got %+v", decoded.StateChange)
	}
	if decoded.StateChange.Entity != StateEntityAccessory {
		t.Errorf("Entity: got %v", decoded.StateChange.Entity)
	}
}

func TestDecodeKeepsNegativeValues(t *testing.T) {
	data, err := EncodeEvent(Event{Access: &AccessEvent{Op: AccessRead, Value: int32(-40)}})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}
	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent failed: %v", err)
	}
	if v, ok := decoded.Access.Value.(int64); !ok || v != -40 {
		t.Errorf("Access.Value: got %T %v", decoded.Access.Value, decoded.Access.Value)
	}
}

func TestDecodeRejectsDuplicateKeys(t *testing.T) {
	// {2: "a", 2: "b"}
	data := []byte{0xa2, 0x02, 0x61, 'a', 0x02, 0x61, 'b'}
	if _, err := DecodeEvent(data); err == nil {
		t.Error("expected error for duplicate map key")
	}
}

func TestEncodingIsDeterministic(t *testing.T) {
	event := Event{
		Timestamp: time.Unix(1700000000, 0).UTC(),
		SessionID: "s",
		Service:   &ServiceEvent{ServiceType: 0x43, Characteristics: 3, ValidValueArrays: 1, Extended: true},
	}
	a, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}
	b, err := EncodeEvent(event)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("encoding is not deterministic")
	}
}

func TestStreamEncoderDecoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := 0; i < 3; i++ {
		if err := enc.Encode(Event{SessionID: "s", Error: &ErrorEventData{Message: "boom"}}); err != nil {
			t.Fatal(err)
		}
	}

	dec := NewDecoder(&buf)
	for i := 0; i < 3; i++ {
		var e Event
		if err := dec.Decode(&e); err != nil {
			t.Fatalf("decode %d: %v", i, err)
		}
		if e.Error == nil || e.Error.Message != "boom" {
			t.Errorf("event %d: got %+v", i, e.Error)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{DirectionIn.String(), "IN"},
		{DirectionOut.String(), "OUT"},
		{Direction(9).String(), "UNKNOWN"},
		{LayerHost.String(), "HOST"},
		{LayerCharacteristic.String(), "CHARACTERISTIC"},
		{LayerAccessory.String(), "ACCESSORY"},
		{CategoryAccess.String(), "ACCESS"},
		{CategoryNotification.String(), "NOTIFICATION"},
		{CategoryRegistration.String(), "REGISTRATION"},
		{CategoryError.String(), "ERROR"},
		{AccessEmit.String(), "EMIT"},
		{AccessEnableEvents.String(), "EVENTS_ON"},
		{StateEntityHost.String(), "HOST"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
