package codec

import (
	"math"
	"testing"

	"github.com/hapbridge/hap-go/pkg/host"
)

func TestFixedPoint(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"whole", 21, 2100},
		{"half degree", 21.5, 2150},
		{"hundredths", 0.01, 1},
		{"negative", -12.34, -1234},
		{"rounds up", 0.005001, 1},
		{"rounds down", 0.0049, 0},
		{"zero", 0, 0},
		{"clamps high", 3e8, math.MaxInt32},
		{"clamps low", -3e8, math.MinInt32},
		{"nan", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixedPoint(tt.in); got != tt.want {
				t.Errorf("FixedPoint(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloatRoundTripWithinResolution(t *testing.T) {
	// Every value on the 0.01 grid in [-1000, 1000].
	for i := -100000; i <= 100000; i += 7 {
		v := float32(i) / FloatScale
		got := DecodeFloat(EncodeFloat(v))
		if diff := math.Abs(float64(got - v)); diff > MaxFloatError {
			t.Fatalf("round trip %v -> %v (diff %v)", v, got, diff)
		}
	}
}

func TestEncodeFloatPayload(t *testing.T) {
	p := EncodeFloat(21.5)
	if DecodeInt(p) != 2150 {
		t.Errorf("encoded integer = %d, want 2150", DecodeInt(p))
	}
	if got := DecodeFloat(p); math.Abs(float64(got-21.5)) > MaxFloatError {
		t.Errorf("DecodeFloat = %v, want 21.5", got)
	}
}

func TestIntRoundTripExact(t *testing.T) {
	values := []int32{0, 1, -1, 42, 100, -100, math.MaxInt32, math.MinInt32, 1 << 20}
	for _, v := range values {
		if got := DecodeInt(EncodeInt(v)); got != v {
			t.Errorf("round trip %d -> %d", v, got)
		}
	}
}

func TestNegativeIntSignExtends(t *testing.T) {
	p := EncodeInt(-1)
	if p != ^host.Payload(0) {
		t.Errorf("EncodeInt(-1) = %#x, want all ones", uintptr(p))
	}
}

func TestBool(t *testing.T) {
	if EncodeBool(true) != 1 || EncodeBool(false) != 0 {
		t.Fatal("unexpected bool encoding")
	}
	if !DecodeBool(1) || DecodeBool(0) {
		t.Fatal("unexpected bool decoding")
	}
}

func TestTextBufferStage(t *testing.T) {
	var buf TextBuffer

	p := buf.Stage("Kitchen Light")
	if p == 0 {
		t.Fatal("Stage returned zero payload")
	}
	if got := DecodeCString(p); got != "Kitchen Light" {
		t.Errorf("DecodeCString = %q", got)
	}
	if got := buf.String(); got != "Kitchen Light" {
		t.Errorf("String = %q", got)
	}

	p = buf.Stage("")
	if got := DecodeCString(p); got != "" {
		t.Errorf("DecodeCString(empty) = %q", got)
	}
}

func TestDecodeText(t *testing.T) {
	data := []byte("Porch\x00garbage")

	tests := []struct {
		name string
		n    int
		want string
	}{
		{"cut at nul", len(data), "Porch"},
		{"bounded by length", 3, "Por"},
		{"exact length", 5, "Porch"},
		{"zero length", 0, ""},
		{"negative length", -4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeText(BytesPayload(data), tt.n); got != tt.want {
				t.Errorf("DecodeText(n=%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}

	if got := DecodeText(0, 10); got != "" {
		t.Errorf("DecodeText(nil) = %q", got)
	}
}

func TestDecodeCStringBounded(t *testing.T) {
	long := make([]byte, MaxTextLength+10)
	for i := range long {
		long[i] = 'a'
	}
	if got := DecodeCString(BytesPayload(long)); len(got) != MaxTextLength {
		t.Errorf("len = %d, want %d", len(got), MaxTextLength)
	}
	if got := DecodeCString(0); got != "" {
		t.Errorf("DecodeCString(0) = %q", got)
	}
}
