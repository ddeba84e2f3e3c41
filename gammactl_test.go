package gammactl

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
)

// fakeMethod records calls for registry tests.
type fakeMethod struct {
	name    string
	started int
}

func (f *fakeMethod) Start() error                      { f.started++; return nil }
func (f *fakeMethod) SetTemperature(ColorSetting) error { return nil }
func (f *fakeMethod) Restore() error                    { return nil }
func (f *fakeMethod) Close()                            {}

func okInit(name string) Init {
	return func(*slog.Logger) (Method, error) {
		return &fakeMethod{name: name}, nil
	}
}

func failInit(err error) Init {
	return func(*slog.Logger) (Method, error) {
		return nil, err
	}
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name    string
		mutate  func(*ColorSetting)
		wantErr bool
	}{
		{"neutral", func(*ColorSetting) {}, false},
		{"minimum temperature", func(s *ColorSetting) { s.Temperature = MinTemperature }, false},
		{"maximum temperature", func(s *ColorSetting) { s.Temperature = MaxTemperature }, false},
		{"too cold", func(s *ColorSetting) { s.Temperature = MinTemperature - 1 }, true},
		{"too hot", func(s *ColorSetting) { s.Temperature = MaxTemperature + 1 }, true},
		{"zero gamma", func(s *ColorSetting) { s.Gamma[1] = 0 }, true},
		{"negative gamma", func(s *ColorSetting) { s.Gamma[2] = -1 }, true},
		{"zero brightness", func(s *ColorSetting) { s.Brightness = 0 }, true},
		{"overdriven brightness", func(s *ColorSetting) { s.Brightness = 1.5 }, true},
		{"dim", func(s *ColorSetting) { s.Brightness = 0.4 }, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := Neutral()
			tc.mutate(&s)
			if err := s.Validate(); (err != nil) != tc.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	r := NewRegistry()
	r.Register(DummyName, NewDummy)

	_, err := r.Get("vidmode", nil)
	var unknown *UnknownMethodError
	if !errors.As(err, &unknown) {
		t.Fatalf("Get(unregistered) = %v, want *UnknownMethodError", err)
	}
	if unknown.Name != "vidmode" {
		t.Errorf("error names %q, want %q", unknown.Name, "vidmode")
	}
}

func TestRegistryGetInitializes(t *testing.T) {
	r := NewRegistry()
	r.Register("fake", okInit("fake"))

	m, err := r.Get("fake", nil)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, ok := m.(*fakeMethod); !ok {
		t.Fatalf("Get returned %T, want *fakeMethod", m)
	}
}

func TestProbeSkipsDummy(t *testing.T) {
	r := NewRegistry()
	r.Register(DummyName, NewDummy)
	r.Register("fake", okInit("fake"))

	for range 20 { // map iteration order varies; the dummy must never win
		m, err := r.Probe(nil)
		if err != nil {
			t.Fatalf("Probe: %v", err)
		}
		if _, ok := m.(*Dummy); ok {
			t.Fatal("Probe selected the dummy over a working method")
		}
	}
}

func TestProbeExhausted(t *testing.T) {
	r := NewRegistry()
	r.Register(DummyName, NewDummy)
	r.Register("down", failInit(errors.New("no display")))
	r.Register("also down", failInit(errors.New("connection refused")))

	if _, err := r.Probe(nil); !errors.Is(err, ErrNoMethodAvailable) {
		t.Fatalf("Probe = %v, want ErrNoMethodAvailable", err)
	}
}

func TestProbeOnlyDummy(t *testing.T) {
	r := NewRegistry()
	r.Register(DummyName, NewDummy)

	if _, err := r.Probe(nil); !errors.Is(err, ErrNoMethodAvailable) {
		t.Fatalf("Probe = %v, want ErrNoMethodAvailable", err)
	}
}

func TestRegistryNames(t *testing.T) {
	r := NewRegistry()
	r.Register("randr", failInit(errors.New("x")))
	r.Register(DummyName, NewDummy)
	r.Register("wayland", failInit(errors.New("x")))

	got := r.Names()
	want := []string{"dummy", "randr", "wayland"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", got, want)
		}
	}
}

func TestDummy(t *testing.T) {
	var buf bytes.Buffer
	m, err := NewDummy(slog.New(slog.NewTextHandler(&buf, nil)))
	if err != nil {
		t.Fatalf("NewDummy: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("WARN")) {
		t.Errorf("Start should warn that the display is unaffected, got %q", buf.String())
	}

	buf.Reset()
	s := Neutral()
	s.Temperature = 3500
	if err := m.SetTemperature(s); err != nil {
		t.Fatalf("SetTemperature: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("3500")) {
		t.Errorf("SetTemperature should log the temperature, got %q", buf.String())
	}

	// Restore is idempotent and valid without SetTemperature.
	for range 3 {
		if err := m.Restore(); err != nil {
			t.Fatalf("Restore: %v", err)
		}
	}
}
