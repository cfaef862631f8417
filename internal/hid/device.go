// Package hid implements the Device Core: it owns the /dev/uinput file
// descriptor, performs the configuration/identity/creation ioctls,
// drives the event queue and the polling thread, and serializes events
// into the kernel's fixed 24-byte layout. Mouse and keyboard facets
// build on top of it; it has no gameplay-specific knowledge.
package hid

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"rocinante-hid/internal/abi"
	"rocinante-hid/internal/capability"
	"rocinante-hid/internal/preset"
	"rocinante-hid/internal/topology"
)

// Configurator performs the facet-specific UI_SET_EVBIT/KEYBIT/RELBIT/
// MSCBIT ioctls for a preset's capability set (spec.md §4.6 step 3).
// Mouse and keyboard facets each supply one.
type Configurator func(fd uintptr, backend Backend) error

// Option customizes Core construction; used by tests to inject a mock
// Backend.
type Option func(*options)

type options struct {
	backend Backend
	hubPort int
}

// WithBackend overrides the Backend used to talk to the kernel. Tests
// use this to substitute a mock that records the ioctl tape.
func WithBackend(b Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithHubPort selects the hub-topology physical path variant
// (spec.md §4.4's `usb-0000:00:XX.0-H.P/input0` shape) instead of the
// direct-port one. port matches the `hub_port: Option<Int>` knob in
// spec.md §6's external-interface table: 0 (the zero value) means no
// hub, same as omitting this option.
func WithHubPort(port int) Option {
	return func(o *options) { o.hubPort = port }
}

// Core owns one uinput device end to end: construction, the event
// queue, the polling ticker, and destruction.
type Core struct {
	backend Backend
	fd      uintptr

	preset         preset.Preset
	pollHz         int
	pollIntervalNS int64
	profileID      string
	hubPort        int
	physPath       string

	queue   eventQueue
	frameMu sync.Mutex // held by Flush and by each tick for a whole drain-and-SYN frame
	emitMu  sync.Mutex
	buf     [abi.EventSize]byte

	fsm           *lifecycle
	pollingActive atomic.Bool
	degraded      atomic.Bool

	stopTicker chan struct{}
	tickerDone chan struct{}

	closeOnce sync.Once

	logger    zerolog.Logger
	sessionID uuid.UUID
}

// New constructs a Device Core for preset at pollingHz, advertising
// the physical path derived from (profileID, preset.Kind). configure
// performs the facet's capability ioctls. On any failure from steps
// 3–7 of spec.md §4.6, all resources opened so far are released before
// the error is returned.
func New(p preset.Preset, pollingHz int, profileID string, configure Configurator, opts ...Option) (*Core, error) {
	o := options{backend: defaultBackend()}
	for _, opt := range opts {
		opt(&o)
	}

	logger, sessionID := newLogger(profileID, p.Kind.String())

	c := &Core{
		backend:        o.backend,
		preset:         p,
		pollHz:         pollingHz,
		pollIntervalNS: int64(time.Second) / int64(pollingHz),
		profileID:      profileID,
		hubPort:        o.hubPort,
		fsm:            &lifecycle{sm: newLifecycle()},
		stopTicker:     make(chan struct{}),
		tickerDone:     make(chan struct{}),
		logger:         logger,
		sessionID:      sessionID,
	}

	fd, err := c.backend.Open("/dev/uinput", openFlags)
	if err != nil {
		return nil, &OpenFailedError{Err: err}
	}
	c.fd = fd

	if err := configure(c.fd, c.backend); err != nil {
		c.backend.Close(c.fd)
		return nil, &CapabilityConfigFailedError{Which: p.Kind.String(), Err: err}
	}
	c.fsm.fire(triggerConfigure)

	setup := abi.Setup{
		Bustype:      abi.BusUSB,
		Vendor:       p.Vendor,
		Product:      p.Product,
		Version:      0x0111,
		Name:         p.Name,
		FFEffectsMax: 0,
	}
	if err := c.backend.IoctlBytes(c.fd, abi.UIDevSetup, setup.Marshal()); err != nil {
		c.backend.Close(c.fd)
		return nil, &SetupFailedError{Err: err}
	}

	if o.hubPort != 0 {
		c.physPath = topology.GenerateHub(profileID, p.Kind)
	} else {
		c.physPath = topology.Generate(profileID, p.Kind)
	}
	if len(c.physPath) >= abi.UinputMaxNameSize {
		c.backend.Close(c.fd)
		return nil, ErrPhysTooLong
	}
	if err := c.backend.IoctlBytes(c.fd, abi.UISetPhys, abi.PhysBuffer(c.physPath)); err != nil {
		c.backend.Close(c.fd)
		return nil, &PhysFailedError{Path: c.physPath, Err: err}
	}
	c.fsm.fire(triggerIdentify)

	if err := c.backend.IoctlNoArg(c.fd, abi.UIDevCreate); err != nil {
		c.backend.Close(c.fd)
		return nil, &CreateFailedError{Err: err}
	}
	c.fsm.fire(triggerCreate)

	c.logger.Debug().Str("phys", c.physPath).Int("poll_hz", pollingHz).Msg("uinput device created")

	c.startPolling()

	return c, nil
}

// Preset returns the preset this core was constructed with.
func (c *Core) Preset() preset.Preset { return c.preset }

// Kind returns the device kind this core was constructed with.
func (c *Core) Kind() capability.Kind { return c.preset.Kind }

// PhysPath returns the physical-path string advertised to the kernel.
func (c *Core) PhysPath() string { return c.physPath }

// HubPort returns the hub port this core was constructed with, or 0
// if it was constructed without WithHubPort (direct-port topology).
func (c *Core) HubPort() int { return c.hubPort }

func (c *Core) startPolling() {
	c.pollingActive.Store(true)
	c.fsm.fire(triggerStartPolling)
	go c.runTicker()
}

func (c *Core) isRunning() bool {
	return c.fsm.current() == stateRunning && !c.degraded.Load()
}

func (c *Core) degrade() {
	c.degraded.Store(true)
}

// QueueEvent enqueues one event non-blockingly; the polling ticker
// commits it to a frame at the next tick. It fails with ErrNotCreated
// if the core is not in the Running state.
func (c *Core) QueueEvent(evType, code uint16, value int32) error {
	if !c.isRunning() {
		return ErrNotCreated
	}
	c.queue.push(abi.Event{Type: evType, Code: code, Value: value})
	return nil
}

// emitImmediate serializes ev into the reusable buffer and writes it,
// holding the emission lock for the duration of serialize-and-write so
// the buffer is never observed by two threads at once.
func (c *Core) emitImmediate(ev abi.Event) error {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	ev.Marshal(c.buf[:])

	n, err := c.backend.Write(c.fd, c.buf[:])
	if err != nil || n != abi.EventSize {
		return &WriteFailedError{Written: n, Expected: abi.EventSize, Err: err}
	}
	return nil
}

// Flush drains every currently queued event in FIFO order, emitting
// each immediately, and appends one SYN_REPORT if and only if it
// drained at least one event. Facets call this for instantaneous
// actions (button/key edges, scroll notches) to bound emission
// latency.
func (c *Core) Flush() error {
	if !c.isRunning() {
		return ErrNotCreated
	}

	c.frameMu.Lock()
	defer c.frameMu.Unlock()

	events := c.queue.drain()
	for _, ev := range events {
		if err := c.emitImmediate(ev); err != nil {
			c.degrade()
			return err
		}
	}

	if len(events) > 0 {
		if err := c.emitImmediate(abi.Event{Type: abi.EvSyn, Code: abi.SynReport}); err != nil {
			c.degrade()
			return err
		}
	}

	return nil
}

func (c *Core) runTicker() {
	defer close(c.tickerDone)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := raisePriority(); err != nil {
		c.logger.Warn().Err(err).Msg("could not raise ticker scheduling priority, continuing at default priority")
	}

	interval := time.Duration(c.pollIntervalNS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopTicker:
			return
		case <-ticker.C:
			if !c.pollingActive.Load() || c.fsm.current() != stateRunning {
				return
			}

			c.frameMu.Lock()
			events := c.queue.drain()
			for _, ev := range events {
				if err := c.emitImmediate(ev); err != nil {
					c.frameMu.Unlock()
					c.logger.Warn().Err(err).Msg("tick emission failed, device degraded")
					c.degrade()
					return
				}
			}

			if len(events) > 0 {
				if err := c.emitImmediate(abi.Event{Type: abi.EvSyn, Code: abi.SynReport}); err != nil {
					c.frameMu.Unlock()
					c.logger.Warn().Err(err).Msg("tick sync failed, device degraded")
					c.degrade()
					return
				}
			}
			c.frameMu.Unlock()
		}
	}
}

// Close is idempotent and safe to call on a partially-initialized
// core: it signals the ticker to stop, flushes any remaining queued
// events, invokes UI_DEV_DESTROY (logging, not failing, on error), and
// closes the descriptor unconditionally.
func (c *Core) Close() error {
	var closeErr error

	c.closeOnce.Do(func() {
		c.pollingActive.Store(false)
		close(c.stopTicker)
		<-c.tickerDone

		wasCreated := c.fsm.current() == stateRunning || c.fsm.current() == stateCreated

		if wasCreated {
			if err := c.Flush(); err != nil {
				c.logger.Warn().Err(err).Msg("flush during close failed")
			}
		}

		c.fsm.fire(triggerDestroy)

		if wasCreated {
			if err := c.backend.IoctlNoArg(c.fd, abi.UIDevDestroy); err != nil {
				c.logger.Warn().Err(err).Msg("UI_DEV_DESTROY failed, closing descriptor anyway")
			}
		}

		if err := c.backend.Close(c.fd); err != nil {
			closeErr = fmt.Errorf("hid: closing descriptor: %w", err)
		}
	})

	return closeErr
}
