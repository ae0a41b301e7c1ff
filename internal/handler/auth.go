package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/favmov/favmov-go/internal/httperr"
	"github.com/favmov/favmov-go/internal/middleware"
	"github.com/favmov/favmov-go/internal/model"
	"github.com/favmov/favmov-go/internal/service"
)

// maxPhotoSize is the upload limit for profile photos.
const maxPhotoSize = 5 << 20 // 5MB

// AuthHandler handles HTTP requests for authentication and profile updates.
type AuthHandler struct {
	service   *service.AuthService
	uploadDir string
	publicURL string
}

// NewAuthHandler creates a new AuthHandler. Uploaded photos are stored in
// uploadDir and exposed under publicURL + "/uploads/".
func NewAuthHandler(svc *service.AuthService, uploadDir, publicURL string) *AuthHandler {
	return &AuthHandler{service: svc, uploadDir: uploadDir, publicURL: publicURL}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.Validation("invalid request body"))
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNameRequired),
			errors.Is(err, service.ErrEmailRequired),
			errors.Is(err, service.ErrPasswordRequired):
			httperr.Write(w, httperr.Validation(err.Error()))
		case errors.Is(err, service.ErrEmailTaken):
			httperr.Write(w, httperr.Conflict(err.Error()))
		default:
			httperr.Write(w, err)
		}
		return
	}

	writeSuccess(w, http.StatusCreated, resp)
}

// HandleLogin handles POST /api/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperr.Write(w, httperr.Validation("invalid request body"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httperr.Write(w, httperr.Unauthorized(err.Error()))
			return
		}
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, resp)
}

// HandleMe handles GET /api/auth/me requests.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	resp, err := h.service.GetUser(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httperr.Write(w, httperr.NotFound(err.Error()))
			return
		}
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": resp})
}

// HandleUpdatePhoto handles POST /api/auth/update-photo requests. The photo
// arrives as a multipart form file field named "photo", capped at 5MB, and
// must carry an image MIME type. The stored filename is a generated UUID so
// uploads never collide.
func (h *AuthHandler) HandleUpdatePhoto(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		httperr.Write(w, httperr.Unauthorized("you are not logged in. Please log in to get access."))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoSize+(1<<20))

	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			httperr.Write(w, httperr.Validation("photo exceeds the 5MB limit"))
			return
		}
		httperr.Write(w, httperr.Validation("no photo uploaded"))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		httperr.Write(w, httperr.Validation("no photo uploaded"))
		return
	}
	defer file.Close()

	if header.Size > maxPhotoSize {
		httperr.Write(w, httperr.Validation("photo exceeds the 5MB limit"))
		return
	}

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		httperr.Write(w, &httperr.Error{
			Kind:    httperr.KindValidation,
			Message: "not an image! Please upload only images.",
			Status:  http.StatusUnsupportedMediaType,
		})
		return
	}

	filename := uuid.New().String() + filepath.Ext(header.Filename)
	if err := h.savePhoto(file, filename); err != nil {
		slog.Error("saving uploaded photo failed", "error", err)
		httperr.Write(w, err)
		return
	}

	photoURL := h.publicURL + "/uploads/" + filename

	resp, err := h.service.UpdatePhoto(r.Context(), user.ID, photoURL)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httperr.Write(w, httperr.NotFound(err.Error()))
			return
		}
		httperr.Write(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"user": resp})
}

func (h *AuthHandler) savePhoto(src io.Reader, filename string) error {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}
