package server

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/dallen2021/AeroStack/analysis"
)

// maxSweepPoints bounds a single sweep so one message cannot pin a worker
// indefinitely.
const maxSweepPoints = 1000

// sweepConn is the slice of *websocket.Conn the hub needs; narrowed so
// tests can drive the hub without a network connection.
type sweepConn interface {
	ReadJSON(v interface{}) error
	WriteJSON(v interface{}) error
}

// sweepRequest asks for one analysis per angle of attack over an
// inclusive range. Omitted numeric fields take the engine defaults.
type sweepRequest struct {
	Type          string  `json:"type"`
	Digits        string  `json:"digits"`
	Chord         float64 `json:"chord"`
	NPoints       int     `json:"n_points"`
	Panels        int     `json:"panels"`
	VInf          float64 `json:"v_inf"`
	AlphaStartDeg float64 `json:"alpha_start_deg"`
	AlphaEndDeg   float64 `json:"alpha_end_deg"`
	AlphaStepDeg  float64 `json:"alpha_step_deg"`
}

// sweepPoint is the per-angle reply.
type sweepPoint struct {
	Type           string  `json:"type"` // always "point"
	AlphaDeg       float64 `json:"alpha_deg"`
	CLThin         float64 `json:"cl_thin"`
	CLPanel        float64 `json:"cl_panel"`
	Circulation    float64 `json:"circulation"`
	IllConditioned bool    `json:"ill_conditioned"`
}

// sweepDone terminates a successful sweep.
type sweepDone struct {
	Type   string `json:"type"` // always "done"
	Points int    `json:"points"`
}

// sweepError reports a failed request or a failed point; the sweep is
// aborted but the connection stays open for the next request.
type sweepError struct {
	Type  string `json:"type"` // always "error"
	Error string `json:"error"`
}

// hub serves sweep requests on one websocket connection, sequentially:
// one point message per angle, then a done message.
type hub struct {
	conn  sweepConn
	solve func(analysis.Request) (*analysis.Result, error)
	log   *logrus.Logger
}

func newHub(conn sweepConn, solve func(analysis.Request) (*analysis.Result, error), log *logrus.Logger) *hub {
	return &hub{conn: conn, solve: solve, log: log}
}

// run reads requests until the connection drops. Write failures also end
// the loop; everything else is reported in-band.
func (h *hub) run() {
	for {
		var req sweepRequest
		if err := h.conn.ReadJSON(&req); err != nil {
			h.log.WithError(err).Debug("websocket closed")
			return
		}
		if err := h.sweep(req); err != nil {
			return
		}
	}
}

// sweep streams one request. The returned error is a write failure; any
// solver or validation problem goes to the client as a sweepError.
func (h *hub) sweep(req sweepRequest) error {
	count, err := sweepCount(req)
	if err != nil {
		return h.conn.WriteJSON(sweepError{Type: "error", Error: err.Error()})
	}

	for i := 0; i < count; i++ {
		alpha := req.AlphaStartDeg + float64(i)*req.AlphaStepDeg
		res, err := h.solve(analysis.Request{
			Code:     req.Digits,
			Chord:    req.Chord,
			NPoints:  req.NPoints,
			AlphaDeg: alpha,
			VInf:     req.VInf,
			Panels:   req.Panels,
		})
		if err != nil {
			return h.conn.WriteJSON(sweepError{Type: "error", Error: err.Error()})
		}
		sweepPointsTotal.Inc()
		point := sweepPoint{
			Type:           "point",
			AlphaDeg:       alpha,
			CLThin:         res.Thin.CL,
			CLPanel:        res.Panel.CL,
			Circulation:    res.Panel.Circulation,
			IllConditioned: res.Panel.IllConditioned,
		}
		if err := h.conn.WriteJSON(point); err != nil {
			return err
		}
	}

	return h.conn.WriteJSON(sweepDone{Type: "done", Points: count})
}

// sweepCount validates the range and returns the inclusive point count.
func sweepCount(req sweepRequest) (int, error) {
	if req.Type != "sweep" {
		return 0, fmt.Errorf("server: unknown message type %q", req.Type)
	}
	if req.AlphaStepDeg <= 0 || math.IsNaN(req.AlphaStepDeg) {
		return 0, fmt.Errorf("server: sweep step must be positive, got %v", req.AlphaStepDeg)
	}
	if req.AlphaEndDeg < req.AlphaStartDeg {
		return 0, fmt.Errorf("server: sweep range [%v, %v] is empty",
			req.AlphaStartDeg, req.AlphaEndDeg)
	}
	// The tiny nudge keeps an exact-multiple endpoint in the sweep despite
	// floating-point division error; no point ever exceeds the end angle.
	count := int(math.Floor((req.AlphaEndDeg-req.AlphaStartDeg)/req.AlphaStepDeg+1e-9)) + 1
	if count > maxSweepPoints {
		return 0, fmt.Errorf("server: sweep of %d points exceeds the limit of %d",
			count, maxSweepPoints)
	}

	return count, nil
}
