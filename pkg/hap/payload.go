package hap

import (
	"github.com/hapbridge/hap-go/pkg/codec"
	"github.com/hapbridge/hap-go/pkg/host"
)

// encodeScalar erases a numeric Value. Text has no scalar form and
// encodes as zero.
func encodeScalar(v Value) host.Payload {
	switch v.Kind() {
	case KindFloat:
		return codec.EncodeFloat(v.Float())
	case KindInt:
		return codec.EncodeInt(int32(v.Int()))
	default:
		return 0
	}
}

// encodePayload erases v. Text is staged in buf and the payload is valid
// until the next Stage on buf.
func encodePayload(v Value, buf *codec.TextBuffer) host.Payload {
	if v.Kind() == KindText {
		return buf.Stage(v.Text())
	}
	return encodeScalar(v)
}

// decodePayload recovers a Value of kind k from a host payload.
// n bounds text payloads.
func decodePayload(k Kind, p host.Payload, n int) Value {
	switch k {
	case KindText:
		return TextValue(codec.DecodeText(p, n))
	case KindFloat:
		return FloatValue(codec.DecodeFloat(p))
	case KindInt:
		return IntValue(int(codec.DecodeInt(p)))
	default:
		return Value{}
	}
}

// zeroValue returns the zero Value of kind k.
func zeroValue(k Kind) Value {
	switch k {
	case KindText:
		return TextValue("")
	case KindFloat:
		return FloatValue(0)
	case KindInt:
		return IntValue(0)
	default:
		return Value{}
	}
}
