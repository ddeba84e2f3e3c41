// Command gammactl sets the color temperature of a display by pushing gamma
// ramps through the X RandR extension or the wlroots gamma-control protocol.
//
// It runs one-shot: compute ramps for the requested temperature, push them,
// exit. On X the ramps persist until something else changes them; on wayland
// they persist only while the gamma control is held, so in manual mode the
// process stays alive until terminated.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gammactl/gammactl"
	"github.com/gammactl/gammactl/wlgamma"
	"github.com/gammactl/gammactl/x11"
)

const version = "0.1.0"

func main() {
	var (
		temperature = pflag.IntP("set", "S", gammactl.NeutralTemperature, "color temperature to set, in Kelvin")
		reset       = pflag.BoolP("reset", "x", false, "reset the display to the neutral temperature")
		method      = pflag.StringP("method", "m", "", "gamma adjustment method (probed if empty)")
		brightness  = pflag.Float64P("brightness", "b", 1.0, "brightness multiplier in (0, 1]")
		gamma       = pflag.Float64SliceP("gamma", "g", nil, "gamma exponent, one value or R,G,B")
		verbose     = pflag.BoolP("verbose", "v", false, "enable debug logging")
		showVersion = pflag.BoolP("version", "V", false, "print the version and exit")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Println("gammactl " + version)
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *temperature, *reset, *method, *brightness, *gamma); err != nil {
		fmt.Fprintln(os.Stderr, "gammactl:", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, temperature int, reset bool, methodName string, brightness float64, gamma []float64) error {
	if reset && pflag.CommandLine.Changed("set") {
		return errors.New("--reset and --set are mutually exclusive")
	}

	setting := gammactl.Neutral()
	if !reset {
		setting.Temperature = temperature
		setting.Brightness = brightness
		switch len(gamma) {
		case 0:
		case 1:
			setting.Gamma = [3]float64{gamma[0], gamma[0], gamma[0]}
		case 3:
			copy(setting.Gamma[:], gamma)
		default:
			return fmt.Errorf("--gamma takes one value or three (got %d)", len(gamma))
		}
	}
	if err := setting.Validate(); err != nil {
		return err
	}

	registry := gammactl.NewRegistry()
	registry.Register(x11.Name, x11.Init)
	registry.Register(wlgamma.Name, wlgamma.Init)
	registry.Register(gammactl.DummyName, gammactl.NewDummy)

	var (
		m   gammactl.Method
		err error
	)
	if methodName != "" {
		m, err = registry.Get(methodName, logger)
	} else {
		m, err = registry.Probe(logger)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Start(); err != nil {
		return err
	}
	if err := m.SetTemperature(setting); err != nil {
		return err
	}

	// A wayland compositor restores the original tables as soon as the
	// gamma control is released, so a manual adjustment has to outlive
	// this call chain.
	if w, ok := m.(*wlgamma.Method); ok && !reset {
		logger.Info("holding gamma control, adjustment reverts on exit",
			"kelvin", setting.Temperature)
		return w.Wait()
	}
	return nil
}
