package codec

import (
	"math"

	"github.com/hapbridge/hap-go/pkg/host"
)

// FloatScale is the fixed-point scale for float payloads (0.01 resolution).
const FloatScale = 100

// MaxFloatError is the largest round-trip error for in-range float values.
const MaxFloatError = 0.5 / FloatScale

// FixedPoint returns round(v * FloatScale) clamped to the int32 range.
// NaN encodes as zero.
func FixedPoint(v float32) int32 {
	scaled := math.Round(float64(v * FloatScale))
	switch {
	case math.IsNaN(scaled):
		return 0
	case scaled >= math.MaxInt32:
		return math.MaxInt32
	case scaled <= math.MinInt32:
		return math.MinInt32
	}
	return int32(scaled)
}

// EncodeFloat encodes v as a fixed-point payload.
func EncodeFloat(v float32) host.Payload {
	return EncodeInt(FixedPoint(v))
}

// DecodeFloat decodes a fixed-point payload.
func DecodeFloat(p host.Payload) float32 {
	return float32(DecodeInt(p)) / FloatScale
}

// EncodeInt stores v bit-for-bit in the payload slot.
func EncodeInt(v int32) host.Payload {
	return host.Payload(int64(v))
}

// DecodeInt recovers the int32 stored by EncodeInt.
func DecodeInt(p host.Payload) int32 {
	return int32(p)
}

// EncodeBool encodes true as 1 and false as 0.
func EncodeBool(b bool) host.Payload {
	if b {
		return 1
	}
	return 0
}

// DecodeBool reports whether p is non-zero.
func DecodeBool(p host.Payload) bool {
	return p != 0
}
