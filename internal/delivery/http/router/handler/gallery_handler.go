package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// uploadField is the multipart field carrying gallery files, on both sides of the passthrough.
const uploadField = "images"

// GalleryHandler holds dependencies for gallery handlers.
type GalleryHandler struct {
	uc     usecase.GalleryUsecase
	logger *slog.Logger
}

// NewGalleryHandler is the constructor for GalleryHandler, injected by Fx.
func NewGalleryHandler(uc usecase.GalleryUsecase, logger *slog.Logger) *GalleryHandler {
	return &GalleryHandler{
		uc:     uc,
		logger: logger,
	}
}

// DeleteImageRequest is the body of DELETE /dashboard/gallery.
type DeleteImageRequest struct {
	URL string `json:"url" query:"url"`
}

func (h *GalleryHandler) ListImages(c echo.Context) error {
	urls, err := h.uc.ListImages(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, urls, "")
}

// UploadImages forwards the "images" files of a multipart form in one upload.
func (h *GalleryHandler) UploadImages(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Expected a multipart form")
	}

	files := form.File[uploadField]
	images := make([]entity.Image, 0, len(files))
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			return errors.Wrapf(err, "open upload %s", fh.Filename)
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			return errors.Wrapf(err, "read upload %s", fh.Filename)
		}
		images = append(images, entity.Image{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get(echo.HeaderContentType),
			Data:        data,
		})
	}

	urls, err := h.uc.UploadImages(c.Request().Context(), images)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, urls, "Images uploaded")
}

// DeleteImage takes the image URL from the query or the JSON body.
func (h *GalleryHandler) DeleteImage(c echo.Context) error {
	var req DeleteImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid image input")
	}
	if strings.TrimSpace(req.URL) == "" {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "url", Message: "is required"})
	}

	if err := h.uc.DeleteImage(c.Request().Context(), req.URL); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c, "Image removed")
}
