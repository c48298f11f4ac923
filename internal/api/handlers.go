package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/thermoviz/internal/apperr"
	"github.com/abhisek/thermoviz/internal/content"
	"github.com/abhisek/thermoviz/internal/hess"
	"github.com/abhisek/thermoviz/internal/practice"
	"github.com/abhisek/thermoviz/internal/thermo"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok", "version": s.Version})
}

func (s *Server) handleReactionPath(w http.ResponseWriter, r *http.Request) {
	cfg := thermo.DefaultDiagramConfig()
	if err := decodeJSON(r, &cfg); err != nil {
		handleError(w, r, err)
		return
	}
	for field, v := range map[string]float64{
		"reactantEnergy":   cfg.ReactantEnergy,
		"productEnergy":    cfg.ProductEnergy,
		"activationEnergy": cfg.ActivationEnergy,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			handleError(w, r, apperr.Validation(field, "must be finite"))
			return
		}
	}
	switch cfg.View {
	case "", thermo.ViewEnthalpy, thermo.ViewFreeEnergy:
	default:
		handleError(w, r, apperr.Validation("view", "must be enthalpy or free-energy"))
		return
	}
	writeJSON(w, r, http.StatusOK, thermo.ComputeReactionPath(cfg))
}

func (s *Server) handleSamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, thermo.Samples())
}

func (s *Server) handleHessExamples(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, hess.Examples())
}

func (s *Server) handleHessExample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	ex, ok := hess.Lookup(id)
	if !ok {
		handleError(w, r, apperr.NotFound("example", id))
		return
	}
	writeJSON(w, r, http.StatusOK, ex)
}

type hessPathRequest struct {
	Steps []hess.ReactionStep `json:"steps"`
	Width float64             `json:"width"`
}

func (s *Server) handleHessPath(w http.ResponseWriter, r *http.Request) {
	var req hessPathRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, thermo.ComputeHessPath(req.Steps, req.Width))
}

type hessCheckRequest struct {
	// Example fills in target, tolerance and, when Steps is empty, the
	// steps as written.
	Example   string              `json:"example,omitempty"`
	Steps     []hess.ReactionStep `json:"steps"`
	Target    *float64            `json:"target,omitempty"`
	Tolerance *float64            `json:"tolerance,omitempty"`
}

type hessCheckResponse struct {
	Combined float64 `json:"combined"`
	Target   float64 `json:"target"`
	Matches  bool    `json:"matches"`
}

func (s *Server) handleHessCheck(w http.ResponseWriter, r *http.Request) {
	var req hessCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	target, tolerance := 0.0, hess.DefaultTolerance
	steps := req.Steps
	if req.Example != "" {
		ex, ok := hess.Lookup(req.Example)
		if !ok {
			handleError(w, r, apperr.NotFound("example", req.Example))
			return
		}
		target, tolerance = ex.TargetDeltaH, ex.Tolerance
		if len(steps) == 0 {
			steps = ex.Steps
		}
	} else if req.Target == nil {
		handleError(w, r, apperr.Validation("target", "required without example"))
		return
	}
	if req.Target != nil {
		target = *req.Target
	}
	if req.Tolerance != nil {
		if !(*req.Tolerance > 0) {
			handleError(w, r, apperr.Validation("tolerance", "must be positive"))
			return
		}
		tolerance = *req.Tolerance
	}

	combined := hess.CombinedEnthalpy(steps)
	writeJSON(w, r, http.StatusOK, hessCheckResponse{
		Combined: combined,
		Target:   target,
		Matches:  hess.IsWithinTarget(combined, target, tolerance),
	})
}

type equationBody struct {
	Equation string `json:"equation"`
}

func (s *Server) handleHessReverse(w http.ResponseWriter, r *http.Request) {
	var req equationBody
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, equationBody{Equation: hess.ReverseEquationText(req.Equation)})
}

type heatingResponse struct {
	Temperature float64             `json:"temperature"`
	Cooling     bool                `json:"cooling"`
	Phase       thermo.Phase        `json:"phase"`
	MarkerX     float64             `json:"markerX"`
	Process     thermo.Process      `json:"process"`
	Molecular   thermo.Molecular    `json:"molecular"`
	Curve       []thermo.CurvePoint `json:"curve"`
	Labels      []thermo.CurveLabel `json:"labels"`
	XLabel      string              `json:"xLabel"`
	Color       string              `json:"color"`
}

func (s *Server) handleHeating(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	temp := thermo.DefaultTemperature
	if raw := q.Get("temp"); raw != "" {
		v, ok := thermo.ParseNumber(raw)
		if !ok || math.IsInf(v, 0) {
			handleError(w, r, apperr.Validation("temp", "must be a number"))
			return
		}
		temp = thermo.ClampTemperature(v)
	}

	cooling := false
	if raw := q.Get("cooling"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			handleError(w, r, apperr.Validation("cooling", "must be a boolean"))
			return
		}
		cooling = v
	}

	phase := thermo.ClassifyPhase(temp)
	writeJSON(w, r, http.StatusOK, heatingResponse{
		Temperature: temp,
		Cooling:     cooling,
		Phase:       phase,
		MarkerX:     thermo.MarkerX(temp, cooling),
		Process:     thermo.ProcessInfo(temp, cooling),
		Molecular:   thermo.MolecularParams(phase, temp),
		Curve:       thermo.CurvePoints(cooling),
		Labels:      thermo.CurveLabels(cooling),
		XLabel:      thermo.HeatAxisLabel(cooling),
		Color:       thermo.CurveColor(cooling),
	})
}

func (s *Server) handleFundamentals(w http.ResponseWriter, r *http.Request) {
	f, err := content.Load()
	if err != nil {
		handleError(w, r, apperr.Internal(err))
		return
	}
	writeJSON(w, r, http.StatusOK, f)
}

// publicProblem is a practice problem without its answer.
type publicProblem struct {
	ID         string              `json:"id"`
	Topic      practice.Topic      `json:"topic"`
	Difficulty practice.Difficulty `json:"difficulty"`
	Question   string              `json:"question"`
	Unit       string              `json:"unit,omitempty"`
	Formula    string              `json:"formula"`
	Hint       string              `json:"hint"`
}

func (s *Server) handleProblems(w http.ResponseWriter, r *http.Request) {
	topic, ok := practice.ParseTopic(r.URL.Query().Get("topic"))
	if !ok {
		handleError(w, r, apperr.Validation("topic", "unknown topic"))
		return
	}

	problems := practice.Filter(practice.Catalog(), topic)
	out := make([]publicProblem, len(problems))
	for i, p := range problems {
		out[i] = publicProblem{
			ID:         p.ID,
			Topic:      p.Topic,
			Difficulty: p.Difficulty,
			Question:   p.Question,
			Unit:       p.Unit,
			Formula:    p.Formula,
			Hint:       p.Hint,
		}
	}
	writeJSON(w, r, http.StatusOK, out)
}

type gradeRequest struct {
	Answer string `json:"answer"`
}

type gradeResponse struct {
	Correct bool            `json:"correct"`
	Result  practice.Result `json:"result"`
}

func (s *Server) handleGrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := practice.Lookup(id)
	if !ok {
		handleError(w, r, apperr.NotFound("problem", id))
		return
	}

	var req gradeRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	res := p.Grade(req.Answer)
	writeJSON(w, r, http.StatusOK, gradeResponse{Correct: res == practice.Correct, Result: res})
}
