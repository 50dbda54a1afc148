package handler

import (
	"net/http"

	"github.com/kwatari/article-quadrant/internal/repository"
	"github.com/kwatari/article-quadrant/internal/transport/response"
)

type Cache struct {
	cacheRepo repository.CacheRepository
}

func NewCache(cacheRepo repository.CacheRepository) *Cache {
	return &Cache{
		cacheRepo: cacheRepo,
	}
}

func (h *Cache) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.cacheRepo.GetStats(r.Context())
	if err != nil {
		response.WriteError(w, err)
		return
	}
	response.WriteData(w, stats)
}

func (h *Cache) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cacheRepo.Clear(r.Context()); err != nil {
		response.WriteError(w, err)
		return
	}
	response.WriteMessage(w, "Cache cleared successfully")
}
