// Package gammactl adjusts a display's color output to a target color
// temperature by pushing per-channel gamma ramps to its display controllers.
// It defines the color setting model, the adjustment method interface, and
// the registry used to select a method by name or by probing.
package gammactl

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Temperature bounds in Kelvin. NeutralTemperature leaves colors unchanged.
const (
	MinTemperature     = 1000
	MaxTemperature     = 25000
	NeutralTemperature = 6500
)

// ColorSetting describes one color adjustment. It is an immutable input:
// methods never modify it, and repeated applications of the same setting are
// idempotent.
type ColorSetting struct {
	Temperature int        // Kelvin, in [MinTemperature, MaxTemperature]
	Gamma       [3]float64 // per-channel exponent, 1.0 is neutral
	Brightness  float64    // multiplier in (0, 1], 1.0 is neutral
}

// Neutral returns the setting which leaves the display unchanged.
func Neutral() ColorSetting {
	return ColorSetting{
		Temperature: NeutralTemperature,
		Gamma:       [3]float64{1, 1, 1},
		Brightness:  1,
	}
}

// Validate checks the setting against the documented ranges. Methods assume
// a valid setting; callers must reject invalid ones first.
func (s ColorSetting) Validate() error {
	if s.Temperature < MinTemperature || s.Temperature > MaxTemperature {
		return fmt.Errorf("temperature must be between %d and %d (was %d)",
			MinTemperature, MaxTemperature, s.Temperature)
	}
	for _, g := range s.Gamma {
		if g <= 0 {
			return fmt.Errorf("gamma must be positive (was %g)", g)
		}
	}
	if s.Brightness <= 0 || s.Brightness > 1 {
		return fmt.Errorf("brightness must be in (0, 1] (was %g)", s.Brightness)
	}
	return nil
}

// Method adjusts the gamma ramps of the display controllers managed by one
// display-server session. Implementations are not safe for concurrent use.
type Method interface {
	// Start enumerates the display controllers and captures their current
	// ramps as the baseline for Restore. It must be called before
	// SetTemperature or Restore.
	Start() error

	// SetTemperature computes and pushes ramps for setting on every
	// controller. Calls are independent; each supersedes the previous
	// visual state. If a controller fails mid-way, earlier controllers
	// keep the new ramps and later ones are left untouched.
	SetTemperature(ColorSetting) error

	// Restore pushes the baseline captured by Start back to every
	// controller, undoing any SetTemperature calls. It is idempotent and
	// safe to call even if SetTemperature never was.
	Restore() error

	// Close releases the display-server connection. Unless Restore was
	// called first, adjusted ramps remain in effect.
	Close()
}

// Init establishes a session for one adjustment method, failing if its
// display server is unreachable or too old. Controller enumeration is
// deferred to Method.Start.
type Init func(logger *slog.Logger) (Method, error)

// DummyName is the registry name of the no-op method. Probe skips it so it
// is never chosen over a real method; it must be requested explicitly.
const DummyName = "dummy"

// Registry maps method names to initializers. It is built once at startup
// and passed by reference; the zero value is not usable.
type Registry struct {
	methods map[string]Init
}

func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]Init)}
}

// Register adds an initializer under name, replacing any existing one.
func (r *Registry) Register(name string, init Init) {
	r.methods[name] = init
}

// Names returns the registered method names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// UnknownMethodError reports an explicitly requested method name that was
// never registered. This is a configuration error, not a probe failure.
type UnknownMethodError struct {
	Name string
}

func (e *UnknownMethodError) Error() string {
	return fmt.Sprintf("unknown gamma adjustment method %q", e.Name)
}

// ErrNoMethodAvailable is returned by Probe when no real method could
// establish a session.
var ErrNoMethodAvailable = errors.New("no gamma adjustment method available")

// Get initializes the method registered under name.
func (r *Registry) Get(name string, logger *slog.Logger) (Method, error) {
	init, ok := r.methods[name]
	if !ok {
		return nil, &UnknownMethodError{Name: name}
	}
	return init(logger)
}

// Probe tries every registered method except the dummy, in unspecified
// order, and returns the first whose Init succeeds. Failures are logged at
// debug level and otherwise discarded.
func (r *Registry) Probe(logger *slog.Logger) (Method, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	for name, init := range r.methods {
		if name == DummyName {
			continue
		}
		m, err := init(logger)
		if err != nil {
			logger.Debug("gamma method unavailable", "method", name, "error", err)
			continue
		}
		logger.Debug("selected gamma method", "method", name)
		return m, nil
	}
	return nil, ErrNoMethodAvailable
}
