package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/config"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/importer"
	"github.com/Iulian7974/App-template-livrare-pe-magazine/internal/logging"
)

// ServiceName reported by GET /api/status
const ServiceName = "nerp-templates"

// Request id propagation between the server middleware and the handlers.
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "requestID"
)

// Handler v1 API handlers. Every request carries its own upload; nothing
// is kept between requests.
type Handler struct {
	cfg         *config.AppConfig
	coordinator *importer.Coordinator
	logger      *zap.Logger
	version     string
}

// NewHandler creates the API handler
func NewHandler(cfg *config.AppConfig, version string, logger *zap.Logger) *Handler {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger = logging.OrNop(logger)
	return &Handler{
		cfg: cfg,
		coordinator: importer.NewCoordinator(importer.Options{
			Read: importer.ReadOptions{
				Sheet:   cfg.Input.Sheet,
				Charset: cfg.Input.CSVCharset,
			},
			Template: cfg.Template,
		}, logger),
		logger:  logger,
		version: version,
	}
}

// RegisterRoutes registers the v1 routes on router
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)

	// inspection
	router.POST("/warehouses", h.ListWarehouses)
	router.POST("/preview", h.Preview)

	// downloads
	router.POST("/export/workbook", h.ExportWorkbook)
	router.POST("/export/zip", h.ExportZip)
	router.POST("/export/warehouse", h.ExportWarehouse)
}

// requestLogger the handler logger tagged with the request id
func (h *Handler) requestLogger(c *gin.Context) *zap.Logger {
	if id := c.GetString(RequestIDKey); id != "" {
		return h.logger.With(zap.String("request_id", id))
	}
	return h.logger
}
