package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/exporter"
)

// ListWarehouses counts plus the ordered warehouse list of an upload
// POST /api/warehouses
func (h *Handler) ListWarehouses(c *gin.Context) {
	result, ok := h.importUpload(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, result.Summary())
}

// Preview the first template rows of one warehouse; the first warehouse
// when none is given.
// POST /api/preview?warehouse=K&limit=N
func (h *Handler) Preview(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	result, ok := h.importUpload(c)
	if !ok {
		return
	}

	key := warehouseParam(c)
	if key == "" {
		keys := result.Partitions.Keys()
		if len(keys) == 0 {
			h.writeError(c, exporter.ErrNoWarehouses)
			return
		}
		key = keys[0]
	}

	preview, err := h.coordinator.Preview(result, key, limit)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}
