package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/quadrant"
	"github.com/kwatari/article-quadrant/internal/transport/response"
)

// Quadrant exposes the pure quadrant pipeline over HTTP: caller-supplied
// insights in, rendered analysis out. No fetching, no NLP, no cache.
type Quadrant struct {
	generator *quadrant.Generator
}

func NewQuadrant(generator *quadrant.Generator) *Quadrant {
	return &Quadrant{
		generator: generator,
	}
}

type quadrantRequest struct {
	Insights             *model.Insights            `json:"insights"`
	QuadrantConfig       model.QuadrantConfig       `json:"quadrant_config"`
	VisualizationOptions model.VisualizationOptions `json:"visualization_options"`
}

func (h *Quadrant) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := quadrantRequest{VisualizationOptions: model.DefaultVisualizationOptions()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "invalid JSON body", "")
		return
	}

	if req.Insights == nil {
		response.WriteBadRequest(w, "insights object is required", "insights")
		return
	}

	analysis, err := h.generator.Generate(*req.Insights, req.QuadrantConfig, req.VisualizationOptions)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteData(w, analysis)
}
