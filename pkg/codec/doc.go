// Package codec converts typed values to and from host payloads.
//
// The codec table is deliberately small:
//
//	Kind     Encode                     Decode
//	float    round(v * FloatScale)      int32(p) / FloatScale
//	int      int32 bit pattern          int32(p)
//	bool     0 or 1                     p != 0
//	text     address of NUL-terminated  bytes up to n, cut at NUL
//	         buffer owned by producer
//
// Integers are sign-extended into the pointer-sized slot and truncated back
// to int32 on decode, so negative values survive the round trip.
package codec
