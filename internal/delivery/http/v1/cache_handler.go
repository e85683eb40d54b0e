package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-lawfirm-backend/internal/cache"
	"go-lawfirm-backend/internal/delivery/http/response"
)

type CacheHandler struct {
	manager *cache.Manager
}

// NewCacheHandler registers cache-managed asset delivery and the cache
// control endpoint. Only same-origin traffic reaches these routes; anything
// cross-origin never enters this server.
func NewCacheHandler(r *gin.Engine, api *gin.RouterGroup, manager *cache.Manager) {
	handler := &CacheHandler{manager: manager}

	r.GET("/assets/*filepath", handler.ServeAsset)
	// Page navigations: anything not matched by an explicit route.
	r.NoRoute(handler.ServePage)

	api.POST("/cache/control", handler.Control)
}

// ServeAsset serves a sub-resource (image, stylesheet, script, font) through
// the cache manager's strategy selection.
func (h *CacheHandler) ServeAsset(c *gin.Context) {
	h.serve(c, cache.RequestDescriptor{
		Method: c.Request.Method,
		Accept: c.GetHeader("Accept"),
		Path:   "/assets" + c.Param("filepath"),
	})
}

// ServePage serves page navigations network-first with the offline fallback.
func (h *CacheHandler) ServePage(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h.serve(c, cache.RequestDescriptor{
		Method:     c.Request.Method,
		Navigation: true,
		Accept:     c.GetHeader("Accept"),
		Path:       c.Request.URL.Path,
	})
}

func (h *CacheHandler) serve(c *gin.Context, d cache.RequestDescriptor) {
	entry, err := h.manager.HandleFetch(c.Request.Context(), d)
	if err != nil {
		response.Error(c, http.StatusBadGateway, "Upstream unavailable")
		return
	}
	for key, values := range entry.Header {
		for _, v := range values {
			c.Writer.Header().Add(key, v)
		}
	}
	c.Data(entry.Status, entry.Header.Get("Content-Type"), entry.Body)
}

type controlMessage struct {
	Type string `json:"type" binding:"required,control_type"`
}

// Control godoc
// @Summary      Cache Control Message
// @Description  Fire-and-forget control channel: SKIP_WAITING activates a pending cache version, CLEAR_CACHE drops every partition.
// @Tags         cache
// @Accept       json
// @Success      202
// @Failure      400  {object}  response.ErrorResponse
// @Router       /cache/control [post]
func (h *CacheHandler) Control(c *gin.Context) {
	var msg controlMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		response.Error(c, http.StatusBadRequest, "Unknown control message type")
		return
	}

	h.manager.HandleControlMessage(c.Request.Context(), msg.Type)

	// Fire-and-forget: nothing is reported back to the caller.
	c.Status(http.StatusAccepted)
}
