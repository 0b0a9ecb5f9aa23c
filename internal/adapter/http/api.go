package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/couchcryptid/flood-depth-service/internal/domain"
	"github.com/couchcryptid/flood-depth-service/internal/visualizer"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

type calibrationResponse struct {
	domain.Config
	UsableHeightPx float64 `json:"usable_height_px"`
	PxPerCm        float64 `json:"px_per_cm"`
	CmPerPx        float64 `json:"cm_per_px"`
}

type viewportRequest struct {
	ContainerHeightPx float64 `json:"container_height_px"`
}

type convertResponse struct {
	Value   float64            `json:"value"`
	From    domain.DisplayUnit `json:"from"`
	To      domain.DisplayUnit `json:"to"`
	Result  float64            `json:"result"`
	Display float64            `json:"display"`
}

type depthResponse struct {
	domain.DepthView
	Calibration calibrationResponse `json:"calibration"`
	InputStep   float64             `json:"input_step"`
	InputMax    float64             `json:"input_max"`
}

func newCalibrationResponse(cfg domain.Config) calibrationResponse {
	return calibrationResponse{
		Config:         cfg,
		UsableHeightPx: cfg.UsablePx(),
		PxPerCm:        cfg.PxPerCm(),
		CmPerPx:        cfg.CmPerPx(),
	}
}

func (s *Server) handleCalibration(w http.ResponseWriter, _ *http.Request) {
	sharedobs.WriteJSON(w, http.StatusOK, newCalibrationResponse(s.handlers.Viewport.Current()))
}

func (s *Server) handleViewport(w http.ResponseWriter, r *http.Request) {
	var req viewportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.reject(w, "container_height", fmt.Errorf("decode viewport: %w", err))
		return
	}
	if err := s.handlers.Viewport.Current().WithContainerHeight(req.ContainerHeightPx).Validate(); err != nil {
		s.reject(w, "container_height", err)
		return
	}

	s.handlers.Viewport.Resize(req.ContainerHeightPx)
	sharedobs.WriteJSON(w, http.StatusAccepted, map[string]any{
		"status":              "pending",
		"container_height_px": req.ContainerHeightPx,
	})
}

func (s *Server) handleReferences(w http.ResponseWriter, r *http.Request) {
	personHeight, err := s.personHeight(r)
	if err != nil {
		s.reject(w, "person_height", err)
		return
	}
	views := s.handlers.Renderer.References(s.handlers.Viewport.Current(), personHeight)
	sharedobs.WriteJSON(w, http.StatusOK, map[string]any{"references": views})
}

func (s *Server) handleDepth(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	st := visualizer.State{Reference: s.handlers.Defaults.Reference, Unit: s.handlers.Defaults.Unit}

	if v := q.Get("reference"); v != "" {
		ref, err := domain.ParseReferenceObject(v)
		if err != nil {
			s.reject(w, "reference", err)
			return
		}
		st.Reference = ref
	}
	if v := q.Get("unit"); v != "" {
		unit, err := domain.ParseDisplayUnit(v)
		if err != nil {
			s.reject(w, "unit", err)
			return
		}
		st.Unit = unit
	}

	cfg := s.handlers.Viewport.Current()
	if px, ok, err := queryFloat(r, "container_px"); err != nil {
		s.reject(w, "container_height", err)
		return
	} else if ok {
		cfg = cfg.WithContainerHeight(px)
		if err := cfg.Validate(); err != nil {
			s.reject(w, "container_height", err)
			return
		}
	}

	depth, err := s.depthCm(r, st.Unit, cfg)
	if err != nil {
		s.reject(w, "depth", err)
		return
	}
	st.DepthCm = depth

	if st.PersonHeightCm, err = s.personHeight(r); err != nil {
		s.reject(w, "person_height", err)
		return
	}

	sharedobs.WriteJSON(w, http.StatusOK, depthResponse{
		DepthView:   s.handlers.Renderer.Render(cfg, st),
		Calibration: newCalibrationResponse(cfg),
		InputStep:   st.Unit.InputStep(),
		InputMax:    st.Unit.InputMax(),
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	value, ok, err := queryFloat(r, "value")
	if err != nil {
		s.reject(w, "value", err)
		return
	}
	if !ok {
		s.reject(w, "value", errors.New("value is required"))
		return
	}
	from, err := domain.ParseDisplayUnit(q.Get("from"))
	if err != nil {
		s.reject(w, "unit", err)
		return
	}
	to, err := domain.ParseDisplayUnit(q.Get("to"))
	if err != nil {
		s.reject(w, "unit", err)
		return
	}

	result := domain.ConvertUnit(value, from, to)
	sharedobs.WriteJSON(w, http.StatusOK, convertResponse{
		Value:   value,
		From:    from,
		To:      to,
		Result:  result,
		Display: domain.RoundForDisplay(result, to),
	})
}

func (s *Server) handlePerson(w http.ResponseWriter, r *http.Request) {
	height, ok, err := queryFloat(r, "height_cm")
	if err != nil {
		s.reject(w, "person_height", err)
		return
	}
	if !ok {
		height = s.defaultPersonHeight()
	}

	if feet, ok, err := queryFloat(r, "feet"); err != nil {
		s.reject(w, "person_height", err)
		return
	} else if ok {
		inches, _, err := queryFloat(r, "inches")
		if err != nil {
			s.reject(w, "person_height", err)
			return
		}
		height = domain.FeetInchesToCm(feet, inches)
	}

	cfg := s.handlers.Viewport.Current()
	sharedobs.WriteJSON(w, http.StatusOK, s.handlers.Renderer.Person(cfg, height))
}

// depthCm reads depth_cm directly, or value in the selected unit.
func (s *Server) depthCm(r *http.Request, unit domain.DisplayUnit, cfg domain.Config) (float64, error) {
	if v, ok, err := queryFloat(r, "value"); err != nil {
		return 0, err
	} else if ok {
		return float64(domain.DisplayToCm(v, unit, cfg)), nil
	}

	d, _, err := queryFloat(r, "depth_cm")
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("depth_cm %g must not be negative", d)
	}
	return d, nil
}

// personHeight reads person_height_cm, falling back to the configured default.
func (s *Server) personHeight(r *http.Request) (float64, error) {
	h, ok, err := queryFloat(r, "person_height_cm")
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.defaultPersonHeight(), nil
	}
	return h, nil
}

// defaultPersonHeight is the configured height, or the baseline when Defaults
// leaves it unset.
func (s *Server) defaultPersonHeight() float64 {
	if h := s.handlers.Defaults.PersonHeightCm; h != 0 {
		return h
	}
	return domain.PersonBaselineCm
}

func (s *Server) reject(w http.ResponseWriter, field string, err error) {
	if s.handlers.Metrics != nil {
		s.handlers.Metrics.InputRejected.WithLabelValues(field).Inc()
	}
	s.logger.Debug("rejected request input", "field", field, "error", err)
	sharedobs.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

// queryFloat parses a finite float query parameter. ok is false when absent.
func queryFloat(r *http.Request, key string) (value float64, ok bool, err error) {
	s := r.URL.Query().Get(key)
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("invalid %s %q", key, s)
	}
	return v, true, nil
}
