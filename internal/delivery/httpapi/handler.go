package httpapi

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/viaurbana/ooh-campaign-service/internal/domain"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/allocation"
	"github.com/viaurbana/ooh-campaign-service/internal/usecase/authorization"
	allocdto "github.com/viaurbana/ooh-campaign-service/internal/usecase/dto/allocation"
)

type CampaignHandler struct {
	AuthUsecase  authorization.AuthorizationUsecase
	AllocUsecase allocation.AllocationUsecase
	PeriodRepo   domain.PeriodRepository
}

func NewCampaignHandler(
	authUsecase authorization.AuthorizationUsecase,
	allocUsecase allocation.AllocationUsecase,
	periodRepo domain.PeriodRepository) *CampaignHandler {

	return &CampaignHandler{
		AuthUsecase:  authUsecase,
		AllocUsecase: allocUsecase,
		PeriodRepo:   periodRepo,
	}
}

func (h *CampaignHandler) CheckPending(c *gin.Context) {
	out, err := h.AuthUsecase.CheckPending(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CampaignHandler) Summarize(c *gin.Context) {
	summary, err := h.AuthUsecase.Summarize(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *CampaignHandler) Approve(c *gin.Context) {
	track, ok := parseTrack(c)
	if !ok {
		return
	}
	count, err := h.AuthUsecase.Approve(c.Param("id"), track)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved_count": count})
}

type rejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *CampaignHandler) Reject(c *gin.Context) {
	track, ok := parseTrack(c)
	if !ok {
		return
	}
	var req rejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.AuthUsecase.Reject(c.Param("id"), track, req.Reason); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) GateActivation(c *gin.Context) {
	if err := h.AuthUsecase.GateActivation(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CampaignHandler) Reevaluate(c *gin.Context) {
	verdict, err := h.AuthUsecase.Reevaluate(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"dg_status":        verdict.DGStatus,
		"dcm_status":       verdict.DCMStatus,
		"effective_tariff": verdict.EffectiveTariff,
		"total_faces":      verdict.TotalFaces,
		"dg_reason":        verdict.DGReason,
		"dcm_reason":       verdict.DCMReason,
	})
}

// Coordinates are pointers: zero is a legitimate value and must survive the
// required binding.
type slotRequestBody struct {
	Latitude    *float64 `json:"latitude" binding:"required"`
	Longitude   *float64 `json:"longitude" binding:"required"`
	Orientation string   `json:"orientation" binding:"required"`
	Bonus       bool     `json:"bonus"`
}

type allocateRequest struct {
	Requests        []slotRequestBody `json:"requests" binding:"required,min=1"`
	PeriodStart     *time.Time        `json:"period_start"`
	PeriodEnd       *time.Time        `json:"period_end"`
	GroupingEnabled bool              `json:"grouping_enabled"`
}

func (h *CampaignHandler) Allocate(c *gin.Context) {
	var req allocateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Requests without an explicit period fall back to the billing period
	// covering today.
	var period domain.CalendarPeriod
	if req.PeriodStart != nil && req.PeriodEnd != nil {
		period = domain.CalendarPeriod{Start: *req.PeriodStart, End: *req.PeriodEnd}
	} else {
		current, err := h.PeriodRepo.CurrentPeriod(time.Now())
		if err != nil {
			writeError(c, err)
			return
		}
		period = *current
	}

	input := &allocdto.AllocateInput{
		FaceID:          c.Param("id"),
		Period:          period,
		GroupingEnabled: req.GroupingEnabled,
	}
	for _, r := range req.Requests {
		input.Requests = append(input.Requests, allocdto.SlotRequest{
			Latitude:    *r.Latitude,
			Longitude:   *r.Longitude,
			Orientation: domain.Orientation(strings.ToUpper(r.Orientation)),
			Bonus:       r.Bonus,
		})
	}

	out, err := h.AllocUsecase.Allocate(input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"batch_id":             out.BatchID,
		"reservations_created": len(out.Reservations),
		"skipped":              out.Skipped,
	})
}

type toggleRequest struct {
	SlotID string `json:"slot_id" binding:"required"`
	FaceID string `json:"face_id" binding:"required"`
	Bonus  bool   `json:"bonus"`
}

func (h *CampaignHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	out, err := h.AllocUsecase.ToggleReservation(&allocdto.ToggleInput{
		SlotID: req.SlotID,
		FaceID: req.FaceID,
		Bonus:  req.Bonus,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type deleteRequest struct {
	ReservationIDs []string `json:"reservation_ids" binding:"required,min=1"`
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	var req deleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	removed, err := h.AllocUsecase.DeleteReservations(req.ReservationIDs)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted_count": removed})
}

func parseTrack(c *gin.Context) (domain.Track, bool) {
	switch strings.ToUpper(c.Param("track")) {
	case string(domain.TrackDG):
		return domain.TrackDG, true
	case string(domain.TrackDCM):
		return domain.TrackDCM, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "track must be dg or dcm"})
	return "", false
}

func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case domain.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case domain.IsState(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
