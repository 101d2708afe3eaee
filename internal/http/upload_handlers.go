package http

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
)

var allowedImageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadImage accepts a multipart image (jpg, jpeg, png), stores it under
// the upload directory with a unique name, and returns its public URL.
func (h *Handler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	wantType, ok := allowedImageTypes[ext]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "only jpg, jpeg and png images are allowed")
	}
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != wantType {
		return echo.NewHTTPError(http.StatusBadRequest, "only jpg, jpeg and png images are allowed")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return err
	}

	name := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)
	dst, err := os.Create(filepath.Join(h.uploadDir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.UploadResponse{ImageURL: "/upload/" + name})
}
