package httpapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/auleian/noisereduce/engine"
	"github.com/auleian/noisereduce/internal/wavcodec"
)

// handleDenoise handles POST /denoise: a multipart form with a "file"
// field containing a WAV file, and optional noise_frames,
// spectral_floor, over_subtraction, makeup_gain, and preset query
// parameters. Returns the denoised audio as a WAV response.
func (s *Server) handleDenoise(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	logger := s.log.With("request_id", reqID)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		logger.Error("failed to parse upload", "err", err)
		http.Error(w, "upload too large or malformed", http.StatusRequestEntityTooLarge)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		logger.Error("no file in request", "err", err)
		http.Error(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		logger.Error("failed to read upload body", "err", err)
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}

	samples, sampleRate, err := wavcodec.DecodeBytes(data)
	if err != nil {
		logger.Error("invalid WAV", "err", err)
		http.Error(w, "invalid WAV file: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg, err := configFromRequest(r)
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	logger.Info("processing upload",
		"samples", len(samples), "sample_rate", sampleRate,
		"noise_frames", cfg.NoiseFrames, "spectral_floor", cfg.SpectralFloor,
		"over_subtraction", cfg.OverSubtraction, "makeup_gain", cfg.MakeupGain)

	cleaned, err := engine.Process(samples, cfg)
	if err != nil {
		logger.Error("engine processing failed", "err", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	result, err := wavcodec.Encode(cleaned, sampleRate)
	if err != nil {
		logger.Error("failed to encode result", "err", err)
		http.Error(w, "failed to encode result", http.StatusInternalServerError)
		return
	}

	logger.Info("returning cleaned audio", "bytes", len(result))

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", `attachment; filename="cleaned.wav"`)
	w.Write(result)
}

// handlePresets handles GET /presets, listing the fixed named presets
// for a frontend to populate a picker.
func (s *Server) handlePresets(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(engine.Presets)
}

// configFromRequest builds an engine.Config from query parameters,
// starting from the named preset (default "medium") and overriding
// individual fields with any explicit query values.
func configFromRequest(r *http.Request) (engine.Config, error) {
	q := r.URL.Query()

	presetName := q.Get("preset")
	if presetName == "" {
		presetName = "medium"
	}
	cfg, err := engine.ApplyPreset(presetName)
	if err != nil {
		return engine.Config{}, err
	}

	if v := q.Get("noise_frames"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.NoiseFrames = n
	}
	if v := q.Get("spectral_floor"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.SpectralFloor = f
	}
	if v := q.Get("over_subtraction"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.OverSubtraction = f
	}
	if v := q.Get("makeup_gain"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return engine.Config{}, err
		}
		cfg.MakeupGain = f
	}

	return cfg, cfg.Validate()
}
