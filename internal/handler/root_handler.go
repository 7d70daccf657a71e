package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/gst-billing-service/internal/model"
)

const healthTimeout = 2 * time.Second

// RootHandler serves the API banner and the health probe
type RootHandler struct {
	storage string
	ping    func(ctx context.Context) error
}

// NewRootHandler creates a root handler; ping may be nil for stores without a connection
func NewRootHandler(storage string, ping func(ctx context.Context) error) *RootHandler {
	return &RootHandler{storage: storage, ping: ping}
}

// Root handles the GET /api/ endpoint
// @Summary API banner
// @Tags meta
// @Produce json
// @Success 200 {object} model.MessageResponse
// @Router /api/ [get]
func (h *RootHandler) Root(c *gin.Context) {
	respondOK(c, model.MessageResponse{Message: MsgServiceName})
}

// Health handles the GET /health endpoint
// @Summary Health check
// @Description Reports whether the service and its storage are reachable
// @Tags meta
// @Produce json
// @Success 200 {object} model.HealthResponse
// @Failure 503 {object} model.ErrorResponse "Storage unavailable"
// @Router /health [get]
func (h *RootHandler) Health(c *gin.Context) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := h.ping(ctx); err != nil {
			logError(c, "health_check_failed", err, map[string]interface{}{"storage": h.storage})
			respondServiceUnavailable(c, ErrStorageUnavailable)
			return
		}
	}

	respondOK(c, model.HealthResponse{Status: "ok", Storage: h.storage})
}
