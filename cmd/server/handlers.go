package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/ubigkas/ubigkas"
)

// ---- JSON request/response types ----------------------------------------

type taggedRequest struct {
	Tokens []string      `json:"tokens"`
	Tags   []ubigkas.Tag `json:"tags"`
	Scores []float64     `json:"scores"`
	// Text is used instead of Tokens when no tagging is supplied.
	Text string `json:"text"`
}

type textBody struct {
	Text string `json:"text"`
}

type batchRequest struct {
	Sentences []string `json:"sentences"`
}

type batchResponse struct {
	Results []string `json:"results"`
}

type stepJSON struct {
	Index      int      `json:"index"`
	Token      string   `json:"token"`
	Tag        string   `json:"tag"`
	Score      float64  `json:"score"`
	Effective  string   `json:"effective_tag"`
	Conjugated bool     `json:"conjugated"`
	Inserted   string   `json:"inserted,omitempty"`
	Output     []string `json:"output"`
}

type explainResponse struct {
	Tense string     `json:"tense"`
	Steps []stepJSON `json:"steps"`
	Words []string   `json:"words"`
	Text  string     `json:"text"`
}

type conjugationResponse struct {
	Root    string `json:"root"`
	Class   string `json:"class"`
	Future  string `json:"future"`
	Present string `json:"present"`
	Past    string `json:"past"`
}

type conjugateResponse struct {
	Root  string `json:"root"`
	Class string `json:"class"`
	Tense string `json:"tense"`
	Form  string `json:"form"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

type server struct {
	engine   *ubigkas.Engine
	pipeline *ubigkas.Pipeline
	logger   *zap.Logger
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/correct/batch", s.handleCorrectBatch)
	mux.HandleFunc("/api/correct", s.handleCorrect)
	mux.HandleFunc("/api/explain", s.handleExplain)
	mux.HandleFunc("/api/normalize", s.handleNormalize)
	mux.HandleFunc("/api/conjugate", s.handleConjugate)
	mux.HandleFunc("/api/conjugation", s.handleConjugation)
	return mux
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode error", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// reconstructError maps engine errors to a status code.
func (s *server) reconstructError(w http.ResponseWriter, err error) {
	if errors.Is(err, ubigkas.ErrLengthMismatch) {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Error("reconstruction failed", zap.Error(err))
	s.writeError(w, http.StatusInternalServerError, err.Error())
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ---- handlers -----------------------------------------------------------

func (s *server) handleCorrect(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req taggedRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "body must be JSON")
		return
	}

	var (
		text string
		err  error
	)
	switch {
	case len(req.Tokens) > 0:
		text, err = s.engine.Correct(req.Tokens, req.Tags, req.Scores)
	case req.Text != "":
		text, err = s.pipeline.Correct(r.Context(), req.Text)
	default:
		s.writeError(w, http.StatusBadRequest, "body needs 'tokens' or 'text'")
		return
	}
	if err != nil {
		s.reconstructError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, textBody{Text: text})
}

func (s *server) handleCorrectBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req batchRequest
	if err := decode(r, &req); err != nil || len(req.Sentences) == 0 {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'sentences' field")
		return
	}
	results, err := s.pipeline.CorrectBatch(r.Context(), req.Sentences)
	if err != nil {
		s.reconstructError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *server) handleExplain(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req taggedRequest
	if err := decode(r, &req); err != nil || len(req.Tokens) == 0 {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'tokens' field")
		return
	}
	a, err := s.engine.Explain(req.Tokens, req.Tags, req.Scores)
	if err != nil {
		s.reconstructError(w, err)
		return
	}
	resp := explainResponse{
		Tense: a.Tense.String(),
		Steps: make([]stepJSON, 0, len(a.Steps)),
		Words: a.Words,
		Text:  a.Text,
	}
	for _, st := range a.Steps {
		resp.Steps = append(resp.Steps, stepJSON{
			Index:      st.Index,
			Token:      st.Token,
			Tag:        string(st.Tag),
			Score:      st.Score,
			Effective:  string(st.Effective),
			Conjugated: st.Conjugated,
			Inserted:   st.Inserted,
			Output:     st.Output,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req textBody
	if err := decode(r, &req); err != nil || req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
		return
	}
	s.writeJSON(w, http.StatusOK, textBody{Text: ubigkas.Normalize(req.Text)})
}

func (s *server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	q := r.URL.Query()
	root := q.Get("root")
	if root == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'root' query parameter")
		return
	}
	tense, err := ubigkas.ParseTense(q.Get("tense"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	class := s.engine.Tables().Class(root)
	if c := q.Get("class"); c != "" {
		if class, err = ubigkas.ParseVerbClass(c); err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if class == ubigkas.ClassNone {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("verb root %q not found; pass 'class'", root))
		return
	}
	s.writeJSON(w, http.StatusOK, conjugateResponse{
		Root:  root,
		Class: class.String(),
		Tense: tense.String(),
		Form:  s.engine.Conjugate(root, class, tense),
	})
}

func (s *server) handleConjugation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	root := r.URL.Query().Get("root")
	if root == "" {
		s.writeError(w, http.StatusBadRequest, "missing 'root' query parameter")
		return
	}
	table, ok := s.engine.ConjugationTable(root)
	if !ok {
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("verb root %q not found", root))
		return
	}
	s.writeJSON(w, http.StatusOK, conjugationResponse{
		Root:    table.Root,
		Class:   table.Class.String(),
		Future:  table.Future,
		Present: table.Present,
		Past:    table.Past,
	})
}
