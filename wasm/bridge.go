//go:build js && wasm

// Command wasm builds a WebAssembly bridge exposing the noise-reduction
// engine to a browser-hosted frontend through syscall/js, so the CLI's
// and HTTP server's sibling frontend can run entirely client-side.
package main

import (
	"syscall/js"

	"github.com/auleian/noisereduce/engine"
)

func main() {
	js.Global().Set("NoiseReducer", js.FuncOf(newNoiseReducer))

	// Block forever: a WASM program that returns exits its host, which
	// would tear down the registered callbacks.
	select {}
}

// newNoiseReducer is the bridge's constructor binding: calling
// NoiseReducer() from JS returns an object wrapping its own
// engine.Engine, with set_config, apply_preset, process, and
// process_with_config bound as methods on it — the full browser
// bridge contract spec.md §6 describes.
func newNoiseReducer(this js.Value, args []js.Value) any {
	eng := engine.NewEngine()

	obj := js.Global().Get("Object").New()
	obj.Set("set_config", js.FuncOf(func(this js.Value, args []js.Value) any {
		return setConfig(eng, args)
	}))
	obj.Set("apply_preset", js.FuncOf(func(this js.Value, args []js.Value) any {
		return applyPreset(eng, args)
	}))
	obj.Set("process", js.FuncOf(func(this js.Value, args []js.Value) any {
		return process(eng, args)
	}))
	obj.Set("process_with_config", js.FuncOf(func(this js.Value, args []js.Value) any {
		return processWithConfig(eng, args)
	}))
	return obj
}

// setConfig(noiseFrames, spectralFloor, overSubtraction, makeupGain) -> {error: string} or null
func setConfig(eng *engine.Engine, args []js.Value) any {
	if len(args) != 4 {
		return errorResult("set_config expects 4 arguments")
	}
	cfg := engine.Config{
		NoiseFrames:     args[0].Int(),
		SpectralFloor:   args[1].Float(),
		OverSubtraction: args[2].Float(),
		MakeupGain:      args[3].Float(),
	}
	if err := eng.SetConfig(cfg); err != nil {
		return errorResult(err.Error())
	}
	return nil
}

// applyPreset(name) -> {error: string} or null
func applyPreset(eng *engine.Engine, args []js.Value) any {
	if len(args) != 1 {
		return errorResult("apply_preset expects 1 argument")
	}
	if err := eng.ApplyPreset(args[0].String()); err != nil {
		return errorResult(err.Error())
	}
	return nil
}

// process(samples: Float32Array) -> {samples: Float32Array} or {error: string}
func process(eng *engine.Engine, args []js.Value) any {
	if len(args) != 1 {
		return errorResult("process expects 1 argument")
	}
	samples, err := float64sFromJS(args[0])
	if err != nil {
		return errorResult(err.Error())
	}

	cleaned, err := eng.Process(samples)
	if err != nil {
		return errorResult(err.Error())
	}
	return successResult(cleaned)
}

// processWithConfig(samples, noiseFrames, spectralFloor, overSubtraction, makeupGain) -> {samples} or {error}
func processWithConfig(eng *engine.Engine, args []js.Value) any {
	if len(args) != 5 {
		return errorResult("process_with_config expects 5 arguments")
	}
	samples, err := float64sFromJS(args[0])
	if err != nil {
		return errorResult(err.Error())
	}

	cleaned, err := eng.ProcessWithConfig(samples,
		args[1].Int(), args[2].Float(), args[3].Float(), args[4].Float())
	if err != nil {
		return errorResult(err.Error())
	}
	return successResult(cleaned)
}

// float64sFromJS copies a JS Float32Array (or plain array of numbers)
// into a Go []float64, the contiguous sample-buffer boundary the
// engine's external interface uses for its JS binding.
func float64sFromJS(v js.Value) ([]float64, error) {
	length := v.Get("length").Int()
	out := make([]float64, length)
	for i := 0; i < length; i++ {
		out[i] = v.Index(i).Float()
	}
	return out, nil
}

func successResult(samples []float64) js.Value {
	buf := js.Global().Get("Float32Array").New(len(samples))
	for i, s := range samples {
		buf.SetIndex(i, s)
	}
	result := js.Global().Get("Object").New()
	result.Set("samples", buf)
	return result
}

func errorResult(msg string) js.Value {
	result := js.Global().Get("Object").New()
	result.Set("error", msg)
	return result
}
