package gammactl

import "log/slog"

// Dummy is a Method which logs what it would have done instead of touching
// hardware. It exists to exercise calling logic without a display server.
type Dummy struct {
	logger *slog.Logger
}

var _ Method = (*Dummy)(nil)

// NewDummy returns a Dummy logging to logger. It never fails.
func NewDummy(logger *slog.Logger) (Method, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dummy{logger: logger}, nil
}

func (d *Dummy) Start() error {
	d.logger.Warn("using dummy gamma method, display will not be affected")
	return nil
}

func (d *Dummy) SetTemperature(setting ColorSetting) error {
	d.logger.Info("temperature", "kelvin", setting.Temperature)
	return nil
}

func (d *Dummy) Restore() error { return nil }

func (d *Dummy) Close() {}
