package handler

import (
	"net/http"

	"github.com/kwatari/article-quadrant/internal/transport/response"
)

func Health(w http.ResponseWriter, r *http.Request) {
	response.WriteData(w, map[string]string{"status": "healthy"})
}
