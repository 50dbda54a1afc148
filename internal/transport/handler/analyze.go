package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/service"
	"github.com/kwatari/article-quadrant/internal/transport/response"
)

type Analyze struct {
	analyzeService *service.Analyze
}

func NewAnalyze(analyzeService *service.Analyze) *Analyze {
	return &Analyze{
		analyzeService: analyzeService,
	}
}

type analyzeRequest struct {
	Content         model.Content         `json:"content"`
	AnalysisOptions model.AnalysisOptions `json:"analysis_options"`
}

func (h *Analyze) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Pre-filled defaults survive fields the request leaves out.
	req := analyzeRequest{AnalysisOptions: model.DefaultAnalysisOptions()}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.WriteBadRequest(w, "invalid JSON body", "")
		return
	}

	if req.Content.Text == "" {
		response.WriteBadRequest(w, "content text is required", "content.text")
		return
	}

	insights, err := h.analyzeService.AnalyzeContent(r.Context(), req.Content, req.AnalysisOptions)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteData(w, insights)
}
