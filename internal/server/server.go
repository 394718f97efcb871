// Package server exposes the calculators over an HTTP JSON API.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iwvelando/finance-calc/internal/cache"
	"github.com/iwvelando/finance-calc/pkg/calcerr"
	"github.com/iwvelando/finance-calc/pkg/constants"
	"github.com/iwvelando/finance-calc/pkg/fixedincome"
	"github.com/iwvelando/finance-calc/pkg/format"
	"github.com/iwvelando/finance-calc/pkg/loans"
)

// Settings carries the calculation settings the handler applies to every
// request.
type Settings struct {
	Cache  cache.Cache
	Locale string
	Policy fixedincome.Policy
	// IRRGuess seeds the IRR solver in percent; zero uses the default seed.
	IRRGuess float64
}

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	cache       cache.Cache
	formatter   format.Formatter
	policy      fixedincome.Policy
	irrGuess    float64
	generator   *loans.ScheduleGenerator
}

// response is the envelope every calculator returns.
type response struct {
	Result    interface{}       `json:"result"`
	Formatted map[string]string `json:"formatted,omitempty"`
	Warnings  []string          `json:"warnings,omitempty"`
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, settings Settings) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		cache:       settings.Cache,
		formatter:   format.New(settings.Locale),
		policy:      settings.Policy,
		irrGuess:    settings.IRRGuess,
		generator:   loans.NewScheduleGenerator(logger),
	}
	if h.cache == nil {
		h.cache = cache.Nop{}
	}
	if len(h.policy.TaxSchedule) == 0 {
		h.policy = fixedincome.DefaultPolicy()
	}
	if h.irrGuess == 0 {
		h.irrGuess = constants.IRRDefaultGuess
	}

	mux := http.NewServeMux()
	h.registerCalculators(mux)

	mux.HandleFunc("/api/version", h.handleVersion)
	mux.HandleFunc("/healthz", h.handleHealth)

	return loggingMiddleware(logger, mux)
}

// calculator is the body of one endpoint once its request is decoded.
type calculator[Req any] func(Req) (response, error)

// handleCalc decodes a Req, serves it from the cache when possible and
// otherwise runs calc and caches the encoded response.
func handleCalc[Req any](h *handler, route string, defaults func() Req, calc calculator[Req]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		start := time.Now()
		body, err := h.readBody(w, r)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), route)
				return
			}
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), route)
			return
		}

		var req Req
		if defaults != nil {
			req = defaults()
		}
		if err := decodeBody(body, r.Header.Get("Content-Type"), &req); err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("error reading request data, %v", err), route)
			return
		}

		key, keyErr := cache.Key(route, req)
		if keyErr == nil {
			if cached, ok := h.cache.Get(r.Context(), key); ok {
				w.Header().Set("X-Cache", "hit")
				h.writeRaw(w, http.StatusOK, cached)
				return
			}
		}

		resp, err := calc(req)
		if err != nil {
			h.respondErrorWithOp(w, statusFor(err), err.Error(), route)
			return
		}

		payload, err := json.Marshal(resp)
		if err != nil {
			status := http.StatusInternalServerError
			var unsupported *json.UnsupportedValueError
			if errors.As(err, &unsupported) {
				// NaN or Inf somewhere in a schedule: the inputs left the real numbers.
				status = http.StatusBadRequest
			}
			h.respondErrorWithOp(w, status, fmt.Sprintf("failed to encode result: %v", err), route)
			return
		}
		payload = append(payload, '\n')

		if keyErr == nil {
			if err := h.cache.Set(r.Context(), key, payload); err != nil {
				h.logger.Warn("failed to cache result",
					zap.String("op", "server.handleCalc"),
					zap.String("route", route),
					zap.Error(err),
				)
			}
		}

		h.logger.Debug("calculation served",
			zap.String("op", "server.handleCalc"),
			zap.String("route", route),
			zap.Duration("duration", time.Since(start)),
		)
		w.Header().Set("X-Cache", "miss")
		h.writeRaw(w, http.StatusOK, payload)
	}
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	defer func() {
		if closeErr := r.Body.Close(); closeErr != nil {
			h.logger.Warn("failed to close request body",
				zap.String("op", "server.readBody"),
				zap.Error(closeErr),
			)
		}
	}()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeBody fills target from a JSON body, or a YAML body when the content
// type says so. An empty body leaves target untouched.
func decodeBody(data []byte, contentType string, target interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return yaml.Unmarshal(trimmed, target)
	default:
		return json.Unmarshal(trimmed, target)
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, calcerr.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, calcerr.ErrNonConvergence):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", "server."+op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) writeRaw(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
