package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *CampaignHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/proposals/:id/authorizations", h.CheckPending)
	router.GET("/proposals/:id/authorizations/summary", h.Summarize)
	router.POST("/proposals/:id/authorizations/:track/approve", h.Approve)
	router.POST("/proposals/:id/authorizations/:track/reject", h.Reject)
	router.POST("/proposals/:id/activate", h.GateActivation)
	router.POST("/faces/:id/reevaluate", h.Reevaluate)
	router.POST("/faces/:id/allocations", h.Allocate)
	router.POST("/reservations/toggle", h.Toggle)
	router.DELETE("/reservations", h.Delete)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
