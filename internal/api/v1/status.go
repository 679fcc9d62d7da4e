package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/importer"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/model"
)

// StatusResponse service status
type StatusResponse struct {
	Service         string                  `json:"service"`
	Version         string                  `json:"version"`
	Template        model.TemplateConstants `json:"template"`
	Columns         []string                `json:"columns"`
	AcceptedFormats []string                `json:"acceptedFormats"`
	MaxUploadMB     int                     `json:"maxUploadMB"`
}

// GetStatus service status
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{
		Service:         ServiceName,
		Version:         h.version,
		Template:        h.cfg.Template,
		Columns:         model.TemplateColumns,
		AcceptedFormats: importer.AcceptedExtensions(),
		MaxUploadMB:     h.cfg.Server.MaxUploadMB,
	})
}
