package hap

import (
	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// Erased callbacks handed to the host. Each resolves its context handle to
// the registered characteristic or accessory; unknown handles are logged
// and ignored.

func (hc *HostContext) readCharacteristic(ctx host.Context) host.Payload {
	b, ok := hc.characteristic(ctx)
	if !ok {
		hc.unknownContext("read", ctx)
		return 0
	}
	v := b.self.Read()
	p := encodePayload(v, &b.readText)
	hc.emit(b.accessEvent(log.DirectionIn, log.AccessRead, p, 0, v))
	return p
}

func (hc *HostContext) writeCharacteristic(ctx host.Context, value host.Payload, n int) {
	b, ok := hc.characteristic(ctx)
	if !ok {
		hc.unknownContext("write", ctx)
		return
	}
	v := decodePayload(b.kind, value, n)
	hc.emit(b.accessEvent(log.DirectionIn, log.AccessWrite, value, n, v))
	if !b.self.CanWrite() {
		return
	}
	b.store(v, value)
}

func (hc *HostContext) setEvent(ctx host.Context, handle host.EventHandle, enable bool) {
	b, ok := hc.characteristic(ctx)
	if !ok {
		hc.unknownContext("event", ctx)
		return
	}
	b.setEventHandle(handle, enable)
	op := log.AccessDisableEvents
	if enable {
		op = log.AccessEnableEvents
	}
	hc.emit(b.accessEvent(log.DirectionIn, op, host.Payload(handle), 0, Value{}))
}

func (hc *HostContext) accessoryCallback(ctx host.Context) {
	a, ok := hc.accessory(ctx)
	if !ok {
		hc.unknownContext("accessory callback", ctx)
		return
	}
	a.callback()
}

func (hc *HostContext) unknownContext(op string, ctx host.Context) {
	hc.errorLog("unknown host context", "op", op, "context", uint64(ctx))
	hc.emit(log.Event{
		Direction: log.DirectionIn,
		Layer:     log.LayerHost,
		Category:  log.CategoryError,
		Error: &log.ErrorEventData{
			Layer:   log.LayerHost,
			Message: "unknown context handle",
			Context: op,
		},
	})
}

func (b *Base) accessEvent(dir log.Direction, op log.AccessOp, p host.Payload, n int, v Value) log.Event {
	return log.Event{
		Direction:   dir,
		Layer:       log.LayerHost,
		Category:    log.CategoryAccess,
		AccessoryID: b.accessoryID,
		Access: &log.AccessEvent{
			Op:                 op,
			CharacteristicType: uint16(b.typ),
			Payload:            uint64(p),
			Length:             n,
			Value:              v.Any(),
		},
	}
}
