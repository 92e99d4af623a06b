package engine

import "sync"

// Engine is a long-lived, mutex-guarded processor for callers that
// prefer a persistent object over threading a Config through every
// call (the shape a browser bridge or REPL-style CLI session wants).
// A zero-value Engine uses DefaultConfig until SetConfig or
// ApplyPreset is called. The window table is immutable, read-only data
// and stays a package-level memoized singleton (see window.go); the
// transform plan is never memoized or shared (see transform.go, which
// a fresh Process call allocates privately per goroutine), since
// gonum's fourier.FFT is not safe for concurrent use. An Engine itself
// holds no cache of its own — just the currently selected Config,
// guarded against concurrent mutation from a new configuration applied
// mid-call.
type Engine struct {
	mu  sync.Mutex
	cfg Config
	set bool
}

// NewEngine returns an Engine initialized with DefaultConfig.
func NewEngine() *Engine {
	return &Engine{cfg: DefaultConfig(), set: true}
}

// SetConfig validates and installs cfg as the engine's current
// configuration, taking effect on the next Process call.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
	e.set = true
	return nil
}

// ApplyPreset looks up name and installs it as the engine's current
// configuration.
func (e *Engine) ApplyPreset(name string) error {
	cfg, err := ApplyPreset(name)
	if err != nil {
		return err
	}
	return e.SetConfig(cfg)
}

// Config returns the engine's current configuration.
func (e *Engine) Config() Config {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.set {
		return DefaultConfig()
	}
	return e.cfg
}

// Process runs the engine's current configuration over samples.
func (e *Engine) Process(samples []float64) ([]float64, error) {
	return Process(samples, e.Config())
}

// ProcessWithConfig validates and installs the given fields as the
// engine's configuration, then processes samples with it — the
// combined helper from the engine's external-interface contract,
// available on both the stateless package API and this stateful type.
func (e *Engine) ProcessWithConfig(samples []float64, noiseFrames int, spectralFloor, overSubtraction, makeupGain float64) ([]float64, error) {
	cfg := Config{
		NoiseFrames:     noiseFrames,
		SpectralFloor:   spectralFloor,
		OverSubtraction: overSubtraction,
		MakeupGain:      makeupGain,
	}
	if err := e.SetConfig(cfg); err != nil {
		return nil, err
	}
	return e.Process(samples)
}
