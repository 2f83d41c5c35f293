package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CampaignMetrics bundles the prometheus instruments for the two engines.
type CampaignMetrics struct {
	EvaluationsTotal            prometheus.CounterVec
	AuthorizationDecisionsTotal prometheus.CounterVec
	PendingFacesGauge           prometheus.GaugeVec
	ReservationsCreatedTotal    prometheus.CounterVec
	ReservationsSkippedTotal    prometheus.CounterVec
	ReservationsDeletedTotal    prometheus.Counter
	AllocationDuration          prometheus.HistogramVec
}

func NewCampaignMetrics() *CampaignMetrics {
	return &CampaignMetrics{
		EvaluationsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "criteria_evaluations_total",
				Help: "Criteria evaluations by resulting track statuses",
			},
			[]string{"dg_status", "dcm_status"},
		),

		AuthorizationDecisionsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authorization_decisions_total",
				Help: "Bulk track decisions by track and outcome",
			},
			[]string{"track", "decision"},
		),

		PendingFacesGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "authorization_pending_faces",
				Help: "Faces currently pending per track, as of the last proposal scan",
			},
			[]string{"track"},
		),

		ReservationsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_created_total",
				Help: "Reservations created by status",
			},
			[]string{"status"},
		),

		ReservationsSkippedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reservations_skipped_total",
				Help: "Requested slots skipped during allocation by cause",
			},
			[]string{"cause"},
		),

		ReservationsDeletedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "reservations_deleted_total",
				Help: "Reservations soft-deleted",
			},
		),

		AllocationDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "allocation_duration_seconds",
				Help:    "Wall time of one allocation batch",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"grouping"},
		),
	}
}

func (m *CampaignMetrics) RecordEvaluation(dgStatus, dcmStatus string) {
	if m == nil {
		return
	}
	m.EvaluationsTotal.WithLabelValues(dgStatus, dcmStatus).Inc()
}

func (m *CampaignMetrics) RecordDecision(track, decision string, count float64) {
	if m == nil {
		return
	}
	m.AuthorizationDecisionsTotal.WithLabelValues(track, decision).Add(count)
}

func (m *CampaignMetrics) SetPendingFaces(track string, count float64) {
	if m == nil {
		return
	}
	m.PendingFacesGauge.WithLabelValues(track).Set(count)
}

func (m *CampaignMetrics) RecordReservationCreated(status string) {
	if m == nil {
		return
	}
	m.ReservationsCreatedTotal.WithLabelValues(status).Inc()
}

func (m *CampaignMetrics) RecordReservationSkipped(cause string) {
	if m == nil {
		return
	}
	m.ReservationsSkippedTotal.WithLabelValues(cause).Inc()
}

func (m *CampaignMetrics) RecordReservationsDeleted(count float64) {
	if m == nil {
		return
	}
	m.ReservationsDeletedTotal.Add(count)
}

func (m *CampaignMetrics) ObserveAllocation(grouping bool, started time.Time) {
	if m == nil {
		return
	}
	label := "off"
	if grouping {
		label = "on"
	}
	m.AllocationDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
}
