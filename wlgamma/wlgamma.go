// Package wlgamma adjusts display gamma ramps through the wlroots
// zwlr_gamma_control_v1 protocol.
//
// The protocol has no request for reading the current tables, so no baseline
// can be captured; instead the compositor itself restores an output's
// original table when its gamma control object is destroyed. Restore relies
// on that. Only one client may hold the gamma control for an output at a
// time.
package wlgamma

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"codeberg.org/tesselslate/wl"
	"golang.org/x/sys/unix"

	"github.com/gammactl/gammactl"
	"github.com/gammactl/gammactl/colorramp"
	"github.com/gammactl/gammactl/wayland"
	"github.com/gammactl/gammactl/wayland/zwlr"
)

// Name is the registry name of this method.
const Name = "wayland"

// ErrUnsupported is returned by New when the compositor does not advertise
// the gamma control protocol.
var ErrUnsupported = errors.New("compositor does not support zwlr_gamma_control_manager_v1")

// Method manages the gamma ramps of every output on one wayland display.
// It implements gammactl.Method. All state is confined to the connection's
// event loop; the exported methods serialize through it.
type Method struct {
	conn   *wayland.Connection
	logger *slog.Logger

	manager *zwlr.GammaControlManagerV1
	outputs map[uint32]*output

	setting gammactl.ColorSetting
	ok      bool // setting holds the last requested adjustment
	started bool
}

var _ gammactl.Method = (*Method)(nil)

// Init adapts New to the registry signature, connecting to the default
// display.
func Init(logger *slog.Logger) (gammactl.Method, error) {
	return New("", logger)
}

// New connects to the wayland display (empty for the default) and fails
// with ErrUnsupported if the compositor lacks the gamma control protocol.
// Gamma controls are not acquired until Start. If logger is nil, logs are
// discarded.
func New(display string, logger *slog.Logger) (*Method, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	conn, err := wayland.Connect(display)
	if err != nil {
		return nil, fmt.Errorf("connect to display: %w", err)
	}
	m := &Method{
		conn:    conn,
		logger:  logger,
		outputs: make(map[uint32]*output),
	}
	if err := conn.Registry(wl.RegistryListener{
		Global:       m.registryGlobal,
		GlobalRemove: m.registryGlobalRemove,
	}); err != nil {
		conn.Close()
		return nil, err
	}
	// Barrier: every initial global has been announced once this returns.
	if err := conn.Enqueue(func() error { return nil }); err != nil {
		conn.Close()
		return nil, err
	}
	var supported bool
	if err := conn.Do(func() error {
		supported = m.manager != nil
		return nil
	}); err != nil {
		conn.Close()
		return nil, err
	}
	if !supported {
		conn.Close()
		return nil, ErrUnsupported
	}
	return m, nil
}

func (m *Method) registryGlobal(data any, self wl.Registry, name uint32, iface string, version uint32) error {
	return m.conn.Do(func() error {
		switch iface {
		case zwlr.GammaControlManagerV1Interface.Name:
			manager := zwlr.GammaControlManagerV1(self.Bind(name, &zwlr.GammaControlManagerV1Interface, version))
			m.manager = &manager

		case wl.OutputInterface.Name:
			// Deferred so the manager global, if announced in the same
			// batch, is bound first. Enqueue cannot be called inline
			// here since this callback already runs under Do.
			go m.conn.Enqueue(func() error {
				if m.manager == nil {
					return nil
				}
				o := &output{
					conn:   m.conn,
					logger: m.logger.With("output", name),
					out:    wl.Output(self.Bind(name, &wl.OutputInterface, version)),
				}
				m.outputs[name] = o
				// An output appearing after Start joins the managed set
				// and receives the last requested setting once its
				// gamma size arrives.
				if m.started {
					o.acquireLocked(*m.manager)
					if m.ok {
						o.setting, o.ok = m.setting, true
					}
				}
				return nil
			})
		}
		return nil
	})
}

func (m *Method) registryGlobalRemove(data any, self wl.Registry, name uint32) error {
	return m.conn.Do(func() error {
		if o, ok := m.outputs[name]; ok {
			o.destroyControlLocked()
			delete(m.outputs, name)
		}
		return nil
	})
}

// Start acquires a gamma control for every known output and waits for their
// advertised ramp sizes, so the first SetTemperature has correctly sized
// buffers.
func (m *Method) Start() error {
	if err := m.conn.Enqueue(func() error {
		m.started = true
		for _, o := range m.outputs {
			if o.control == nil {
				o.acquireLocked(*m.manager)
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("acquire gamma controls: %w", err)
	}
	// Second barrier: every gamma_size event for the controls created
	// above has been processed once this returns.
	if err := m.conn.Enqueue(func() error { return nil }); err != nil {
		return fmt.Errorf("await gamma sizes: %w", err)
	}
	return nil
}

// SetTemperature computes and pushes ramps for setting on every output
// whose gamma size is known. Outputs that appear later receive the same
// setting.
func (m *Method) SetTemperature(setting gammactl.ColorSetting) error {
	// Enqueue reports an inner failure through the connection's fatal
	// error, not its return value, so capture it for the caller too.
	var applyErr error
	if err := m.conn.Enqueue(func() error {
		m.setting, m.ok = setting, true
		for _, o := range m.outputs {
			o.setting, o.ok = setting, true
			if err := o.applyLocked(); err != nil {
				applyErr = err
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	return applyErr
}

// Restore destroys every gamma control object; the compositor then restores
// each output's original table. Idempotent: destroyed controls are skipped.
// Start may be called again afterwards to re-acquire them.
func (m *Method) Restore() error {
	return m.conn.Enqueue(func() error {
		m.started = false
		m.ok = false
		for _, o := range m.outputs {
			o.ok = false
			o.destroyControlLocked()
		}
		return nil
	})
}

// Wait blocks until the connection is closed and returns its fatal error,
// if any. Gamma tables persist only while the client holds the control
// objects, so a caller wanting a lasting adjustment must keep the process
// alive after SetTemperature.
func (m *Method) Wait() error {
	return m.conn.Closed()
}

// Close closes the wayland connection. Any controls still held are
// destroyed with it, so the compositor restores the original tables unless
// the process keeps the connection open for the lifetime of the adjustment.
func (m *Method) Close() {
	m.conn.Close()
}

// output is the state kept for one wl_output.
type output struct {
	conn   *wayland.Connection
	logger *slog.Logger

	out     wl.Output
	control *zwlr.GammaControlV1

	// ramp and scratch are sized from the gamma_size event; both are nil
	// for an output whose size is zero or not yet known.
	ramp    *shmRamp
	scratch [3][]uint16

	setting gammactl.ColorSetting
	ok      bool
}

// acquireLocked creates the output's gamma control object. Must run under
// the connection lock.
func (o *output) acquireLocked(manager zwlr.GammaControlManagerV1) {
	control := manager.GetGammaControl(o.out)
	o.control = &control
	o.control.SetListener(zwlr.GammaControlV1Listener{
		GammaSize: o.gammaSize,
		Failed:    o.failed,
	}, nil)
}

// destroyControlLocked destroys the gamma control if held; the compositor
// restores the output's original table in response.
func (o *output) destroyControlLocked() {
	if o.control != nil {
		o.control.Destroy()
		o.control = nil
	}
	o.ramp = nil
	o.scratch = [3][]uint16{}
}

func (o *output) gammaSize(data any, self zwlr.GammaControlV1, size uint32) error {
	return o.conn.Do(func() (err error) {
		o.ramp = nil
		o.scratch = [3][]uint16{}
		if size == 0 {
			// Valid but inert: nothing to fill, nothing to push.
			o.logger.Debug("output has no gamma table")
			return nil
		}
		o.ramp, err = newShmRamp(int(size))
		if err != nil {
			return fmt.Errorf("create gamma ramp: %w", err)
		}
		for c := range o.scratch {
			o.scratch[c] = make([]uint16, size)
		}
		o.logger.Debug("gamma size advertised", "size", size)
		return o.applyLocked()
	})
}

func (o *output) failed(data any, self zwlr.GammaControlV1) error {
	return o.conn.Do(func() error {
		// Another client holds the control or the output went away.
		o.logger.Warn("gamma control failed for output")
		o.destroyControlLocked()
		return nil
	})
}

// applyLocked pushes the pending setting, if there is one and the output is
// ready. Must run under the connection lock.
func (o *output) applyLocked() error {
	if !o.ok || o.ramp == nil || o.control == nil {
		return nil
	}
	colorramp.Fill(o.scratch[0], o.scratch[1], o.scratch[2], o.setting, o.ramp.size)
	if err := o.ramp.write(o.scratch[0], o.scratch[1], o.scratch[2]); err != nil {
		return fmt.Errorf("write gamma ramp: %w", err)
	}
	return o.ramp.submit(o.control)
}

// shmRamp is a shared-memory file holding the wire form of one output's
// gamma table: the red, green, and blue ramps back to back, each size
// uint16s.
type shmRamp struct {
	_    noCopy
	fd   int
	size int
}

func newShmRamp(size int) (*shmRamp, error) {
	if size < 1 {
		return nil, errors.New("invalid gamma size")
	}
	fd, err := unix.Open("/dev/shm", unix.O_TMPFILE|unix.O_RDWR|unix.O_EXCL|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("allocate shared memory: %w", err)
	}
	if err := unix.Ftruncate(fd, int64(size)*3*2); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("allocate shared memory: %w", err)
	}
	r := &shmRamp{fd: fd, size: size}
	runtime.SetFinalizer(r, func(r *shmRamp) {
		unix.Close(r.fd)
	})
	return r, nil
}

// write copies the channel buffers, which must each have length size, into
// the file.
func (r *shmRamp) write(red, green, blue []uint16) error {
	_, err := unix.Pwritev(r.fd, [][]byte{
		unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(red))), r.size*2),
		unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(green))), r.size*2),
		unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(blue))), r.size*2),
	}, 0)
	return err
}

// submit hands the table to the compositor. A rejected table is reported
// asynchronously through the control's Failed event, not here.
func (r *shmRamp) submit(control *zwlr.GammaControlV1) error {
	if _, err := unix.Seek(r.fd, 0, unix.SEEK_SET); err != nil {
		return fmt.Errorf("seek gamma ramp: %w", err)
	}
	control.SetGamma(r.fd)
	return nil
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
