package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/favmov/favmov-go/internal/httperr"
	"github.com/favmov/favmov-go/internal/middleware"
	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/service"
	"github.com/favmov/favmov-go/internal/tmdb"
)

// FavoriteHandler handles HTTP requests for favorite movies and the catalog
// details proxy.
type FavoriteHandler struct {
	service *service.FavoriteService
	catalog *tmdb.Client
}

// NewFavoriteHandler creates a new FavoriteHandler.
func NewFavoriteHandler(svc *service.FavoriteService, catalog *tmdb.Client) *FavoriteHandler {
	return &FavoriteHandler{service: svc, catalog: catalog}
}

// HandleList handles GET /api/movies/favorites requests.
func (h *FavoriteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	favorites, err := h.service.List(r.Context(), user.ID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"favorites": favorites})
}

// HandleAdd handles POST /api/movies/favorites requests.
func (h *FavoriteHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.AddFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.Validation("invalid request body"))
		return
	}

	favorite, err := h.service.Add(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMovieIDRequired), errors.Is(err, service.ErrTitleRequired):
			httperr.Write(w, httperr.Validation(err.Error()))
		case errors.Is(err, service.ErrDuplicateFavorite):
			httperr.Write(w, httperr.Conflict(err.Error()))
		default:
			httperr.Write(w, err)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{"favorite": favorite})
}

// HandleRemove handles DELETE /api/movies/favorites/{movie_id} requests.
func (h *FavoriteHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		httperr.Write(w, httperr.Validation("invalid movie id"))
		return
	}

	if err := h.service.Remove(r.Context(), user.ID, movieID); err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			httperr.Write(w, httperr.NotFound(err.Error()))
			return
		}
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, nil)
}

// HandleCheck handles GET /api/movies/favorites/{movie_id} requests.
func (h *FavoriteHandler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		httperr.Write(w, httperr.Validation("invalid movie id"))
		return
	}

	isFavorite, err := h.service.IsFavorite(r.Context(), user.ID, movieID)
	if err != nil {
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"isFavorite": isFavorite})
}

// HandleMovieDetails handles GET /api/movies/{movie_id} requests by proxying
// the catalog API with the server-held key. The upstream payload is forwarded
// unmodified; an upstream failure surfaces with its status where available.
func (h *FavoriteHandler) HandleMovieDetails(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.UserFromContext(r.Context()); !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	movieID, err := movieIDParam(r)
	if err != nil {
		httperr.Write(w, httperr.Validation("invalid movie id"))
		return
	}

	language := r.URL.Query().Get("language")

	raw, err := h.catalog.MovieDetailsRaw(r.Context(), movieID, language)
	if err != nil {
		var apiErr *tmdb.APIError
		if errors.As(err, &apiErr) {
			httperr.Write(w, httperr.Upstream(apiErr.StatusCode, "failed to fetch movie details"))
			return
		}
		slog.Error("catalog request failed", "movie_id", movieID, "error", err)
		httperr.Write(w, httperr.Upstream(0, "failed to fetch movie details"))
		return
	}

	writeSuccess(w, http.StatusOK, raw)
}

func movieIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "movie_id"), 10, 64)
}
