package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/importer"
)

// errNoFile the multipart form has no "file" part
var errNoFile = errors.New("no file uploaded")

// importUpload reads the multipart "file" part and runs the import pipeline.
// On failure the error response has already been written.
func (h *Handler) importUpload(c *gin.Context) (*importer.Result, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes())

	header, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload exceeds the size limit"})
		case errors.Is(err, http.ErrMissingFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": errNoFile.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid form data"})
		}
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		h.requestLogger(c).Error("failed to open upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open uploaded file"})
		return nil, false
	}
	defer file.Close()

	result, err := h.coordinator.Import(file, header.Filename)
	if err != nil {
		h.writeError(c, err)
		return nil, false
	}
	return result, true
}

// warehouseParam the warehouse key from the query string or the form
func warehouseParam(c *gin.Context) string {
	if v, ok := c.GetQuery("warehouse"); ok {
		return v
	}
	return c.PostForm("warehouse")
}
