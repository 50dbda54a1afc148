package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/service"
	"github.com/kwatari/article-quadrant/internal/transport/response"
)

type Pipeline struct {
	pipelineService *service.Pipeline
}

func NewPipeline(pipelineService *service.Pipeline) *Pipeline {
	return &Pipeline{
		pipelineService: pipelineService,
	}
}

type pipelineRequest struct {
	Source               model.Source               `json:"source"`
	QuadrantConfig       model.QuadrantConfig       `json:"quadrant_config"`
	VisualizationOptions model.VisualizationOptions `json:"visualization_options"`
	AnalysisOptions      model.AnalysisOptions      `json:"analysis_options"`
}

func (h *Pipeline) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := pipelineRequest{
		QuadrantConfig:       model.DefaultQuadrantConfig(),
		VisualizationOptions: model.DefaultVisualizationOptions(),
		AnalysisOptions:      model.DefaultAnalysisOptions(),
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "invalid JSON body", "")
		return
	}

	if req.Source.Type == "" {
		response.WriteBadRequest(w, "source type is required", "source.type")
		return
	}
	if req.Source.Content == "" {
		response.WriteBadRequest(w, "source content is required", "source.content")
		return
	}

	result, err := h.pipelineService.Run(r.Context(), req.Source, req.QuadrantConfig, req.VisualizationOptions, req.AnalysisOptions)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteData(w, result)
}
