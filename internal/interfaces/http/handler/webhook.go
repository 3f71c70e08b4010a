package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	maintenanceapp "github.com/predio/backend/internal/application/maintenance"
	"github.com/predio/backend/internal/interfaces/http/dto"
)

// WebhookTokenHeader carries the shared secret on inbound webhook calls
const WebhookTokenHeader = "X-Webhook-Token"

// WebhookHandler receives inbound automation payloads. These endpoints are
// authenticated by shared secret, not JWT.
type WebhookHandler struct {
	BaseHandler
	maintenanceService *maintenanceapp.Service
	inboundToken       string
}

// NewWebhookHandler creates a WebhookHandler
func NewWebhookHandler(maintenanceService *maintenanceapp.Service, inboundToken string) *WebhookHandler {
	return &WebhookHandler{
		maintenanceService: maintenanceService,
		inboundToken:       inboundToken,
	}
}

// RegisterPublicRoutes registers inbound webhook routes outside the JWT
// chain; the shared secret is the only authentication.
func (h *WebhookHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/complaints", h.InboundComplaint)
}

// InboundComplaint files a complaint posted by the phone automation
func (h *WebhookHandler) InboundComplaint(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Invalid webhook token"))
		return
	}

	var req maintenanceapp.InboundComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	complaint, err := h.maintenanceService.ResolveInbound(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, complaint)
}

func (h *WebhookHandler) authorized(c *gin.Context) bool {
	if h.inboundToken == "" {
		return true // no token configured, development only
	}
	token := c.GetHeader(WebhookTokenHeader)
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.inboundToken)) == 1
}
