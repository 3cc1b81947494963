package hap

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hapbridge/hap-go/pkg/host"
	"github.com/hapbridge/hap-go/pkg/log"
)

// HostContext is the process-wide bridge state shared by every accessory
// attached to one host: the global init latch, the registry behind
// host.Context handles, the valid-value allocator and the loggers.
//
// Create one per process and pass it to each NewAccessory call.
type HostContext struct {
	host  host.Host
	alloc host.Allocator

	// Logger for debug output (optional)
	logger *slog.Logger

	// Bridge event capture (optional)
	events log.Logger

	sessionID string

	initOnce  sync.Once
	initErr   error
	initCount int

	// handles[i] is the object behind host.Context(i+1).
	handles []any
}

// Option configures a HostContext.
type Option func(*HostContext)

// WithLogger sets the operational logger.
func WithLogger(l *slog.Logger) Option {
	return func(hc *HostContext) { hc.logger = l }
}

// WithEventLogger sets the bridge event logger.
func WithEventLogger(l log.Logger) Option {
	return func(hc *HostContext) { hc.events = l }
}

// WithAllocator overrides the valid-value allocator.
func WithAllocator(a host.Allocator) Option {
	return func(hc *HostContext) { hc.alloc = a }
}

// WithSessionID sets the session ID stamped on bridge events.
func WithSessionID(id string) Option {
	return func(hc *HostContext) { hc.sessionID = id }
}

// NewHostContext creates the bridge context for h. If h implements
// host.Allocator it is used for valid-value arrays unless WithAllocator
// says otherwise.
func NewHostContext(h host.Host, opts ...Option) *HostContext {
	hc := &HostContext{host: h}
	if a, ok := h.(host.Allocator); ok {
		hc.alloc = a
	}
	for _, opt := range opts {
		opt(hc)
	}
	if hc.alloc == nil {
		hc.alloc = heapAllocator{}
	}
	if hc.events == nil {
		hc.events = log.NoopLogger{}
	}
	if hc.sessionID == "" {
		hc.sessionID = uuid.New().String()
	}
	return hc
}

// Host returns the underlying host.
func (hc *HostContext) Host() host.Host { return hc.host }

// SessionID returns the ID stamped on bridge events.
func (hc *HostContext) SessionID() string { return hc.sessionID }

// InitCount returns how many times the host's global init has run.
func (hc *HostContext) InitCount() int { return hc.initCount }

// ensureInit runs the host's global init at most once. Every caller
// observes the outcome of that single run.
func (hc *HostContext) ensureInit() error {
	hc.initOnce.Do(func() {
		hc.initCount++
		hc.initErr = hc.host.Init()
		change := &log.StateChangeEvent{
			Entity:   log.StateEntityHost,
			OldState: "UNINITIALIZED",
			NewState: "INITIALIZED",
		}
		if hc.initErr != nil {
			change.NewState = "FAILED"
			change.Reason = hc.initErr.Error()
			hc.errorLog("host init failed", "error", hc.initErr)
		} else {
			hc.debugLog("host init complete", "session", hc.sessionID)
		}
		hc.emit(log.Event{
			Direction:   log.DirectionOut,
			Layer:       log.LayerHost,
			Category:    log.CategoryState,
			StateChange: change,
		})
	})
	return hc.initErr
}

// register returns a stable non-zero handle for obj.
func (hc *HostContext) register(obj any) host.Context {
	hc.handles = append(hc.handles, obj)
	return host.Context(len(hc.handles))
}

// lookup resolves a handle issued by register.
func (hc *HostContext) lookup(ctx host.Context) (any, bool) {
	if ctx == 0 || int(ctx) > len(hc.handles) {
		return nil, false
	}
	return hc.handles[ctx-1], true
}

func (hc *HostContext) characteristic(ctx host.Context) (*Base, bool) {
	obj, ok := hc.lookup(ctx)
	if !ok {
		return nil, false
	}
	c, ok := obj.(Characteristic)
	if !ok {
		return nil, false
	}
	return c.base(), true
}

func (hc *HostContext) accessory(ctx host.Context) (*Accessory, bool) {
	obj, ok := hc.lookup(ctx)
	if !ok {
		return nil, false
	}
	a, ok := obj.(*Accessory)
	return a, ok
}

// emit stamps and records a bridge event.
func (hc *HostContext) emit(ev log.Event) {
	ev.Timestamp = time.Now()
	ev.SessionID = hc.sessionID
	hc.events.Log(ev)
}

func (hc *HostContext) debugLog(msg string, args ...any) {
	if hc.logger != nil {
		hc.logger.Debug(msg, args...)
	}
}

func (hc *HostContext) errorLog(msg string, args ...any) {
	if hc.logger != nil {
		hc.logger.Error(msg, args...)
	}
}

// heapAllocator serves valid-value arrays from the Go heap.
type heapAllocator struct{}

func (heapAllocator) AllocValidValues(n int) []int32 { return make([]int32, n) }

func (heapAllocator) FreeValidValues([]int32) {}
