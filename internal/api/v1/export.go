package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/exporter"
)

func (h *Handler) packager(c *gin.Context) *exporter.Packager {
	logger := h.requestLogger(c)
	return exporter.NewPackager(exporter.Options{
		Template: h.cfg.Template,
		Progress: func(e exporter.ProgressEvent) {
			logger.Debug("export progress",
				zap.Int("percent", e.Percent),
				zap.String("stage", e.Stage),
				zap.String("warehouse", e.Warehouse))
		},
	})
}

// ExportWorkbook one workbook with a sheet per warehouse
// POST /api/export/workbook
func (h *Handler) ExportWorkbook(c *gin.Context) {
	result, ok := h.importUpload(c)
	if !ok {
		return
	}
	data, err := h.packager(c).Combined(result.Partitions)
	if err != nil {
		h.writeError(c, err)
		return
	}
	sendFile(c, exporter.FilenameCombined, exporter.MIMEXLSX, data)
}

// ExportZip a ZIP with one workbook per warehouse
// POST /api/export/zip
func (h *Handler) ExportZip(c *gin.Context) {
	result, ok := h.importUpload(c)
	if !ok {
		return
	}
	data, err := h.packager(c).Zip(result.Partitions)
	if err != nil {
		h.writeError(c, err)
		return
	}
	sendFile(c, exporter.FilenameZip, exporter.MIMEZip, data)
}

// ExportWarehouse the workbook of one warehouse
// POST /api/export/warehouse?warehouse=K
func (h *Handler) ExportWarehouse(c *gin.Context) {
	result, ok := h.importUpload(c)
	if !ok {
		return
	}

	key := warehouseParam(c)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "warehouse is required"})
		return
	}

	data, err := h.packager(c).Single(result.Partitions, key)
	if err != nil {
		h.writeError(c, err)
		return
	}
	sendFile(c, exporter.SingleFilename(key), exporter.MIMEXLSX, data)
}

func sendFile(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", contentDisposition(filename))
	c.Data(http.StatusOK, contentType, data)
}
