// README: Plan handlers for generation, itinerary rendering, tips and chat.
package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wanderlust/internal/ai"
	"wanderlust/internal/modules/plan"
	"wanderlust/internal/types"
)

// Quota guards the generation endpoint. A consumed attempt that produced no
// plan is handed back via Refund.
type Quota interface {
	Consume(ctx context.Context, uid string) error
	Refund(ctx context.Context, uid string) error
}

type PlanHandler struct {
	plan  *plan.Service
	quota Quota
	ai    ai.Provider
}

func NewPlanHandler(planSvc *plan.Service, quota Quota, aiSvc ai.Provider) *PlanHandler {
	return &PlanHandler{plan: planSvc, quota: quota, ai: aiSvc}
}

type generateReq struct {
	UID  string         `json:"uid"`
	Form types.TripForm `json:"form"`
}

// Generate handles POST /api/plans.
func (h *PlanHandler) Generate(c *gin.Context) {
	var req generateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.UID = strings.TrimSpace(req.UID)
	if req.UID == "" {
		writeError(c, http.StatusBadRequest, "missing uid")
		return
	}
	if h.quota != nil {
		if err := h.quota.Consume(c.Request.Context(), req.UID); err != nil {
			writePlanError(c, err)
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 90*time.Second)
	defer cancel()

	p, err := h.plan.Generate(ctx, req.Form)
	if err != nil {
		// The attempt produced no plan; hand the charge back. Best effort:
		// a failed refund only costs the user one allowance slot.
		if h.quota != nil {
			if refundErr := h.quota.Refund(c.Request.Context(), req.UID); refundErr != nil {
				log.Printf("quota refund failed for %q: %v", req.UID, refundErr)
			}
		}
		writePlanError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, p)
}

// Cancel handles POST /api/plans/cancel. Any generation still in flight is
// invalidated and its result discarded when it lands.
func (h *PlanHandler) Cancel(c *gin.Context) {
	h.plan.Cancel()
	c.Status(http.StatusNoContent)
}

type renderReq struct {
	Itinerary  string                     `json:"itinerary"`
	References []types.GroundingReference `json:"references"`
}

// Render handles POST /api/plans/render.
func (h *PlanHandler) Render(c *gin.Context) {
	var req renderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	writeJSON(c, http.StatusOK, plan.RenderItinerary(req.Itinerary, req.References))
}

// Tip handles GET /api/tips. Tips are decorative, so a provider failure
// yields an empty tip rather than an error.
func (h *PlanHandler) Tip(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	if destination == "" {
		writeError(c, http.StatusBadRequest, "missing destination")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	tip, err := h.ai.QuickTip(ctx, destination)
	if err != nil {
		tip = ""
	}
	writeJSON(c, http.StatusOK, map[string]any{"tip": tip})
}

type chatReq struct {
	History []ai.ChatMessage `json:"history"`
	Message string           `json:"message"`
}

// Chat handles POST /api/chat.
func (h *PlanHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	reply, err := h.ai.Chat(ctx, req.History, req.Message)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, map[string]any{"reply": reply})
}
