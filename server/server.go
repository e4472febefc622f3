package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/dallen2021/AeroStack/analysis"
	"github.com/dallen2021/AeroStack/dxf"
	"github.com/dallen2021/AeroStack/naca"
	"github.com/dallen2021/AeroStack/presets"
	"github.com/dallen2021/AeroStack/thinairfoil"
	"github.com/dallen2021/AeroStack/vortexpanel"
)

// errBadQuery marks a malformed query-string parameter; mapped to 400.
var errBadQuery = errors.New("server: malformed query parameter")

// Server wires the engine packages behind the HTTP surface. Stateless
// except for the optional result cache.
type Server struct {
	cfg      Config
	log      *logrus.Logger
	cache    *analysis.Cache
	upgrader websocket.Upgrader
}

// New builds a server from cfg. A nil logger falls back to the logrus
// standard logger.
func New(cfg Config, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s := &Server{
		cfg: cfg,
		log: log,
		upgrader: websocket.Upgrader{
			// CORS is allow-all; the websocket follows suit.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	if cfg.EnableCache {
		s.cache = analysis.NewCache()
	}

	return s
}

// Handler returns the complete routed surface, CORS middleware included.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/api/health", s.handleHealth).Methods("GET")
	r.HandleFunc("/api/airfoils", s.handleAirfoils).Methods("GET")
	r.HandleFunc("/api/airfoils/{id}", s.handleAirfoil).Methods("GET")
	r.HandleFunc("/api/naca4", s.handleNACA4).Methods("GET")
	r.HandleFunc("/api/analyze", s.handleAnalyze).Methods("POST")
	r.HandleFunc("/api/dxf", s.handleDXF).Methods("GET")
	r.HandleFunc("/ws", s.handleWs).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return s.withCORS(r)
}

// Serve blocks on ListenAndServe at the configured address.
func (s *Server) Serve() error {
	s.log.WithField("addr", s.cfg.Addr).Info("aerostack API listening")

	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

// withCORS applies the permissive CORS policy and short-circuits
// preflight requests before routing.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.cfg.AllowOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleAirfoils(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, presets.List())
}

func (s *Server) handleAirfoil(w http.ResponseWriter, r *http.Request) {
	p, err := presets.Get(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)
		return
	}
	chord, err := queryFloat(r, "chord", analysis.DefaultChord)
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, err := queryInt(r, "n_points", analysis.DefaultNPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}
	geom, err := presets.Generate(p.ID, chord, n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Preset   presets.Preset `json:"preset"`
		Geometry *naca.Geometry `json:"geometry"`
	}{p, geom})
}

func (s *Server) handleNACA4(w http.ResponseWriter, r *http.Request) {
	code, err := naca.ParseCode(r.URL.Query().Get("digits"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	chord, err := queryFloat(r, "chord", analysis.DefaultChord)
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, err := queryInt(r, "n_points", analysis.DefaultNPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}
	geom, err := naca.Generate(code, chord, n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, struct {
		Metrics  naca.Metrics   `json:"metrics"`
		Geometry *naca.Geometry `json:"geometry"`
	}{code.Metrics(), geom})
}

// analyzeRequest is the POST /api/analyze body. Omitted numeric fields
// take the engine defaults; the panel count default comes from config.
type analyzeRequest struct {
	Digits        string    `json:"digits"`
	Chord         float64   `json:"chord"`
	NPoints       int       `json:"n_points"`
	AlphaDeg      float64   `json:"alpha_deg"`
	VInf          float64   `json:"v_inf"`
	Panels        int       `json:"panels"`
	CurveAlphaDeg []float64 `json:"curve_alpha_deg"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, fmt.Errorf("%w: body: %v", errBadQuery, err))
		return
	}
	res, err := s.analyze(s.toEngineRequest(body))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// toEngineRequest maps the wire body onto an engine request, filling the
// configured panel default and solver thresholds.
func (s *Server) toEngineRequest(body analyzeRequest) analysis.Request {
	panels := body.Panels
	if panels == 0 {
		panels = s.cfg.DefaultPanels
	}
	opts := vortexpanel.DefaultOptions()
	opts.MaxConditionNumber = s.cfg.MaxConditionNumber
	opts.WarnConditionNumber = s.cfg.WarnConditionNumber

	return analysis.Request{
		Code:          body.Digits,
		Chord:         body.Chord,
		NPoints:       body.NPoints,
		AlphaDeg:      body.AlphaDeg,
		VInf:          body.VInf,
		Panels:        panels,
		CurveAlphaDeg: body.CurveAlphaDeg,
		Vortex:        &opts,
	}
}

// analyze runs one engine request through the cache and the metrics.
func (s *Server) analyze(req analysis.Request) (*analysis.Result, error) {
	if s.cache != nil && len(req.CurveAlphaDeg) == 0 {
		if res, ok := s.cache.Get(req.Fingerprint()); ok {
			cacheHitsTotal.Inc()
			return res, nil
		}
	}
	res, err := analysis.Analyze(req)
	observeAnalysis(res, err)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(req.CurveAlphaDeg) == 0 {
		s.cache.Put(req.Fingerprint(), res)
	}

	return res, nil
}

func (s *Server) handleDXF(w http.ResponseWriter, r *http.Request) {
	digits := r.URL.Query().Get("digits")
	chord, err := queryFloat(r, "chord", analysis.DefaultChord)
	if err != nil {
		s.writeError(w, err)
		return
	}
	scale, err := queryFloat(r, "thickness_scale", 1.0)
	if err != nil {
		s.writeError(w, err)
		return
	}
	n, err := queryInt(r, "n_points", analysis.DefaultNPoints)
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, err := dxf.Export(digits, chord, scale, n)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/dxf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="naca%s.dxf"`, digits))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(doc); err != nil {
		s.log.WithError(err).Warn("dxf write aborted")
	}
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	defer conn.Close()
	newHub(conn, s.analyze, s.log).run()
}

// writeJSON encodes v with the proper content type. Encoding failures
// past the header are only loggable.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.WithError(err).Warn("response encoding failed")
	}
}

// writeError maps an engine error onto its HTTP status.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.log.WithError(err).Error("unexpected analysis failure")
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}

// statusFor translates engine sentinels to HTTP statuses. Every
// recoverable engine error is enumerated here; anything else is a bug
// surfaced as 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, presets.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, vortexpanel.ErrSingularSystem):
		return http.StatusUnprocessableEntity
	case errors.Is(err, naca.ErrInvalidCode),
		errors.Is(err, naca.ErrChord),
		errors.Is(err, naca.ErrSampleCount),
		errors.Is(err, thinairfoil.ErrBadSamples),
		errors.Is(err, thinairfoil.ErrUnsortedCurve),
		errors.Is(err, vortexpanel.ErrValidation),
		errors.Is(err, dxf.ErrScale),
		errors.Is(err, errBadQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func queryFloat(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadQuery, key, raw)
	}

	return v, nil
}

func queryInt(r *http.Request, key string, def int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", errBadQuery, key, raw)
	}

	return v, nil
}
