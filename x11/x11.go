// Package x11 adjusts display gamma ramps through the X RandR extension.
package x11

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/gammactl/gammactl"
	"github.com/gammactl/gammactl/colorramp"
)

// Name is the registry name of this method.
const Name = "randr"

// Per-CRTC gamma requests need RandR 1.3.
const (
	randrMajorVersion = 1
	randrMinorVersion = 3
)

// VersionError reports a server whose RandR extension is older than the
// minimum this method requires.
type VersionError struct {
	Major, Minor uint32
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported RandR version %d.%d (need at least %d.%d)",
		e.Major, e.Minor, randrMajorVersion, randrMinorVersion)
}

// ramp is one controller's three-channel gamma table. The channels always
// have identical length.
type ramp struct {
	red, green, blue []uint16
}

// crtc is the state kept for one display controller.
type crtc struct {
	id       randr.Crtc
	rampSize uint16

	// saved holds the ramps captured by Start. It is never written again;
	// Restore replays it.
	saved ramp

	// scratch is refilled on every SetTemperature call, saving three
	// allocations per controller per call.
	scratch ramp
}

// Method manages the gamma ramps of every CRTC on one X screen. It
// implements gammactl.Method and is not safe for concurrent use.
type Method struct {
	conn   *xgb.Conn
	window xproto.Window
	crtcs  []crtc
	logger *slog.Logger
}

var _ gammactl.Method = (*Method)(nil)

// Init adapts New to the registry signature, connecting to the default
// display.
func Init(logger *slog.Logger) (gammactl.Method, error) {
	return New("", logger)
}

// New connects to the X display (empty for the default), verifies the
// server's RandR version, and creates a minimal invisible window used only
// to scope resource enumeration to the default screen. Controllers are not
// enumerated until Start. If logger is nil, logs are discarded.
func New(display string, logger *slog.Logger) (*Method, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("connect to display: %w", err)
	}
	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize randr: %w", err)
	}

	version, err := randr.QueryVersion(conn, randrMajorVersion, randrMinorVersion).Reply()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("query randr version: %w", err)
	}
	if !versionSupported(version.MajorVersion, version.MinorVersion) {
		conn.Close()
		return nil, &VersionError{Major: version.MajorVersion, Minor: version.MinorVersion}
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	window, err := xproto.NewWindowId(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("allocate window id: %w", err)
	}
	// The window is never mapped; it only anchors GetScreenResources to
	// the default screen.
	if err := xproto.CreateWindowChecked(
		conn,
		screen.RootDepth, window, screen.Root,
		0, 0, 1, 1, 0,
		xproto.WindowClassInputOutput, screen.RootVisual,
		0, nil,
	).Check(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create anchor window: %w", err)
	}

	return &Method{conn: conn, window: window, logger: logger}, nil
}

func versionSupported(major, minor uint32) bool {
	if major != randrMajorVersion {
		return major > randrMajorVersion
	}
	return minor >= randrMinorVersion
}

// Start enumerates the CRTCs on the anchor window's screen and captures
// their current gamma ramps as the baseline for Restore.
func (m *Method) Start() error {
	resources, err := randr.GetScreenResourcesCurrent(m.conn, m.window).Reply()
	if err != nil {
		return fmt.Errorf("get screen resources: %w", err)
	}

	// Issue every per-CRTC query before awaiting any replies. Reads still
	// complete before the first write in SetTemperature.
	type pending struct {
		id    randr.Crtc
		size  randr.GetCrtcGammaSizeCookie
		gamma randr.GetCrtcGammaCookie
	}
	requests := make([]pending, 0, len(resources.Crtcs))
	for _, id := range resources.Crtcs {
		requests = append(requests, pending{
			id:    id,
			size:  randr.GetCrtcGammaSize(m.conn, id),
			gamma: randr.GetCrtcGamma(m.conn, id),
		})
	}

	m.crtcs = make([]crtc, 0, len(requests))
	for _, req := range requests {
		size, err := req.size.Reply()
		if err != nil {
			return fmt.Errorf("get gamma size for crtc %d: %w", req.id, err)
		}
		gamma, err := req.gamma.Reply()
		if err != nil {
			return fmt.Errorf("get gamma for crtc %d: %w", req.id, err)
		}
		c := crtc{
			id:       req.id,
			rampSize: size.Size,
			saved: ramp{
				red:   append([]uint16(nil), gamma.Red...),
				green: append([]uint16(nil), gamma.Green...),
				blue:  append([]uint16(nil), gamma.Blue...),
			},
			// Seed scratch at the hardware size so the first
			// SetTemperature has correctly sized buffers even for a
			// zero-size (inert) controller.
			scratch: newRamp(int(size.Size)),
		}
		copy(c.scratch.red, gamma.Red)
		copy(c.scratch.green, gamma.Green)
		copy(c.scratch.blue, gamma.Blue)
		m.crtcs = append(m.crtcs, c)
		m.logger.Debug("captured crtc gamma", "crtc", uint32(req.id), "rampSize", size.Size)
	}
	return nil
}

func newRamp(size int) ramp {
	return ramp{
		red:   make([]uint16, size),
		green: make([]uint16, size),
		blue:  make([]uint16, size),
	}
}

// SetTemperature computes and pushes new gamma ramps for setting on every
// controller. The checked request forces one round trip per controller, so
// the change is applied before the call returns. If a push fails, earlier
// controllers keep the new ramps; there is no rollback.
func (m *Method) SetTemperature(setting gammactl.ColorSetting) error {
	for i := range m.crtcs {
		c := &m.crtcs[i]
		colorramp.Fill(c.scratch.red, c.scratch.green, c.scratch.blue, setting, int(c.rampSize))
		if err := randr.SetCrtcGammaChecked(m.conn, c.id, c.rampSize,
			c.scratch.red, c.scratch.green, c.scratch.blue).Check(); err != nil {
			return fmt.Errorf("set gamma for crtc %d: %w", c.id, err)
		}
	}
	return nil
}

// Restore replays the baseline ramps captured by Start. It does not
// re-query hardware state.
func (m *Method) Restore() error {
	for i := range m.crtcs {
		c := &m.crtcs[i]
		if err := randr.SetCrtcGammaChecked(m.conn, c.id, c.rampSize,
			c.saved.red, c.saved.green, c.saved.blue).Check(); err != nil {
			return fmt.Errorf("restore gamma for crtc %d: %w", c.id, err)
		}
	}
	return nil
}

// Close closes the X connection. The server destroys the anchor window
// along with it.
func (m *Method) Close() {
	m.conn.Close()
}
