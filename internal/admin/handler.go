// Package admin hosts the administrative whole-store replacement endpoint.
package admin

import (
	"crypto/subtle"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/hsd-hub/ngo-explorer/internal/platform/httpx"
)

// Handler accepts a complete replacement SQLite file for the backing store.
// The swap is coarse: readers holding the old file handle mid-replacement
// are on their own, which is accepted for this low-traffic dataset.
type Handler struct {
	logger    *slog.Logger
	storePath string
	token     string
	maxSize   int64
	validate  *validator.Validate
}

func NewHandler(logger *slog.Logger, storePath, token string, maxSize int64) *Handler {
	return &Handler{
		logger:    logger,
		storePath: storePath,
		token:     token,
		maxSize:   maxSize,
		validate:  validator.New(),
	}
}

type uploadRequest struct {
	Token    string `validate:"required"`
	Filename string `validate:"required,endswith=.db"`
}

type uploadResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	FileSize int64  `json:"file_size"`
	Path     string `json:"path"`
}

func (h *Handler) UploadStore(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)
	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Unexpected Format", "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Unexpected Format", "no file provided")
		return
	}
	defer file.Close()

	token := r.FormValue("token")
	if token == "" {
		token = r.URL.Query().Get("token")
	}

	if !h.authorized(token) {
		h.logger.Warn("store upload rejected", slog.String("reason", "token mismatch"))
		httpx.RespondError(w, httpx.ErrUnauthorized)
		return
	}

	req := uploadRequest{Token: token, Filename: header.Filename}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Unexpected Format", "file must be a .db file")
		return
	}

	size, err := h.replaceStore(file)
	if err != nil {
		h.logger.Error("replace store", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "upload failed")
		return
	}

	h.logger.Info("store replaced",
		slog.String("path", h.storePath),
		slog.Int64("size", size))

	httpx.JSON(w, http.StatusOK, uploadResponse{
		Status:   "success",
		Message:  "Database uploaded successfully",
		FileSize: size,
		Path:     h.storePath,
	})
}

// authorized compares the supplied token against the configured secret in
// constant time. The static shared-secret scheme itself is a known weak
// point kept as-is.
func (h *Handler) authorized(token string) bool {
	if h.token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}

// replaceStore streams the upload to a temp file beside the live store and
// renames it into place, so a half-written upload never becomes the store.
func (h *Handler) replaceStore(src io.Reader) (int64, error) {
	dir := filepath.Dir(h.storePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, fmt.Errorf("admin: create data directory: %w", err)
	}

	tmpPath := filepath.Join(dir, uuid.NewString()+".db.tmp")
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return 0, fmt.Errorf("admin: create temp file: %w", err)
	}

	size, err := io.Copy(tmp, src)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("admin: write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("admin: close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, h.storePath); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("admin: swap store file: %w", err)
	}
	return size, nil
}
