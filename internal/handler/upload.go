package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"marketplace-backend/internal/apperr"
	"marketplace-backend/internal/service"
)

type UploadHandler struct {
	uploadService service.UploadService
}

func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
	}
}

// Signature returns the parameters a browser needs to upload straight to
// the media host.
func (h *UploadHandler) Signature(c echo.Context) error {
	sig := h.uploadService.Signature(c.QueryParam("folder"))
	return c.JSON(http.StatusOK, sig)
}

// Direct relays a multipart file upload through the backend.
func (h *UploadHandler) Direct(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("archivo no proporcionado")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.Validation("no se pudo leer el archivo")
	}
	defer file.Close()

	result, err := h.uploadService.UploadDirect(
		c.Request().Context(),
		fileHeader.Filename,
		file,
		c.FormValue("folder"),
	)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}
