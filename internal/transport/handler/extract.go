package handler

import (
	"encoding/json"
	"net/http"

	"github.com/kwatari/article-quadrant/internal/model"
	"github.com/kwatari/article-quadrant/internal/service"
	"github.com/kwatari/article-quadrant/internal/transport/response"
)

type Extract struct {
	analyzeService *service.Analyze
}

func NewExtract(analyzeService *service.Analyze) *Extract {
	return &Extract{
		analyzeService: analyzeService,
	}
}

type extractRequest struct {
	Source model.Source `json:"source"`
}

func (h *Extract) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
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

	content, err := h.analyzeService.ExtractContent(r.Context(), req.Source)
	if err != nil {
		response.WriteError(w, err)
		return
	}

	response.WriteData(w, content)
}
