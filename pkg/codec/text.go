package codec

import (
	"bytes"
	"unsafe"

	"github.com/hapbridge/hap-go/pkg/host"
)

// MaxTextLength bounds scans of NUL-terminated payloads of unknown length.
const MaxTextLength = 256

// TextBuffer is backing storage for text payloads.
//
// A payload returned by Stage stays valid until the next Stage call on the
// same buffer. The buffer must outlive every payload handed to the host.
type TextBuffer struct {
	buf []byte
}

// Stage copies s into the buffer, NUL-terminates it and returns its address.
func (b *TextBuffer) Stage(s string) host.Payload {
	b.buf = append(b.buf[:0], s...)
	b.buf = append(b.buf, 0)
	return BytesPayload(b.buf)
}

// String returns the currently staged text.
func (b *TextBuffer) String() string {
	if len(b.buf) == 0 {
		return ""
	}
	return string(b.buf[:len(b.buf)-1])
}

// BytesPayload returns the address of the first byte of b.
// The caller keeps b alive and NUL-terminated while the payload is in use.
func BytesPayload(b []byte) host.Payload {
	if len(b) == 0 {
		return 0
	}
	return host.Payload(uintptr(unsafe.Pointer(unsafe.SliceData(b))))
}

// DecodeText reads at most n bytes at p and cuts at the first NUL.
// A zero payload or non-positive length decodes to "".
func DecodeText(p host.Payload, n int) string {
	if p == 0 || n <= 0 {
		return ""
	}
	// p is an address owned by the host, not a Go pointer, and stays
	// valid for the duration of the callback.
	raw := unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	return string(raw)
}

// DecodeCString reads a NUL-terminated string at p, scanning at most
// MaxTextLength bytes.
func DecodeCString(p host.Payload) string {
	if p == 0 {
		return ""
	}
	// As in DecodeText, p is owned by whoever produced the payload.
	base := unsafe.Pointer(p)
	for i := 0; i < MaxTextLength; i++ {
		if *(*byte)(unsafe.Add(base, i)) == 0 {
			return string(unsafe.Slice((*byte)(base), i))
		}
	}
	return string(unsafe.Slice((*byte)(base), MaxTextLength))
}
