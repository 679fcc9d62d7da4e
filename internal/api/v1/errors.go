package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/exporter"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/importer"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/parser"
)

// statusFor maps pipeline errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, importer.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, parser.ErrMissingColumns),
		errors.Is(err, exporter.ErrNoWarehouses),
		errors.Is(err, importer.ErrEmptyTable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrUnknownWarehouse):
		return http.StatusNotFound
	case errors.Is(err, importer.ErrUnreadableInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes {"error": msg}; missing columns also list "missing".
func (h *Handler) writeError(c *gin.Context, err error) {
	status := statusFor(err)

	body := gin.H{"error": err.Error()}
	var missing *parser.MissingColumnsError
	if errors.As(err, &missing) {
		body["missing"] = missing.Fields
	}

	if status >= http.StatusInternalServerError {
		h.requestLogger(c).Error("request failed", zap.Error(err))
		body["error"] = "internal error"
	} else {
		h.requestLogger(c).Info("request rejected", zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, body)
}
