// Package metrics exposes Prometheus counters for the auction engine.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the services report to.
type Recorder interface {
	RecordBidAccepted()
	RecordBidRejected(reason string)
	RecordAuctionEnded(reason string)
	RecordAuctionDeleted(reason string)
	RecordNotificationSent(notificationType string)
	RecordSweep(duration time.Duration, ended int)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	bidsAccepted      prometheus.Counter
	bidsRejected      *prometheus.CounterVec
	auctionsEnded     *prometheus.CounterVec
	auctionsDeleted   *prometheus.CounterVec
	notificationsSent *prometheus.CounterVec
	sweepDuration     prometheus.Histogram
	sweepEnded        prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		bidsAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vgvault_bids_accepted_total",
			Help: "Number of accepted bids.",
		}),
		bidsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vgvault_bids_rejected_total",
			Help: "Number of rejected bids by reason.",
		}, []string{"reason"}),
		auctionsEnded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vgvault_auctions_ended_total",
			Help: "Number of auctions ended by reason.",
		}, []string{"reason"}),
		auctionsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vgvault_auctions_deleted_total",
			Help: "Number of auctions deleted by reason.",
		}, []string{"reason"}),
		notificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vgvault_notifications_sent_total",
			Help: "Number of persisted notifications by type.",
		}, []string{"type"}),
		sweepDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vgvault_expiry_sweep_duration_seconds",
			Help:    "Duration of expiry sweeps.",
			Buckets: prometheus.DefBuckets,
		}),
		sweepEnded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vgvault_expiry_sweep_ended_total",
			Help: "Number of auctions ended by the expiry sweeper.",
		}),
	}

	reg.MustRegister(
		c.bidsAccepted,
		c.bidsRejected,
		c.auctionsEnded,
		c.auctionsDeleted,
		c.notificationsSent,
		c.sweepDuration,
		c.sweepEnded,
	)

	return c
}

func (c *Collector) RecordBidAccepted() {
	c.bidsAccepted.Inc()
}

func (c *Collector) RecordBidRejected(reason string) {
	c.bidsRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordAuctionEnded(reason string) {
	c.auctionsEnded.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordAuctionDeleted(reason string) {
	c.auctionsDeleted.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordNotificationSent(notificationType string) {
	c.notificationsSent.WithLabelValues(notificationType).Inc()
}

func (c *Collector) RecordSweep(duration time.Duration, ended int) {
	c.sweepDuration.Observe(duration.Seconds())
	c.sweepEnded.Add(float64(ended))
}

// Handler returns the scrape handler for the given gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordBidAccepted() {}
func (Nop) RecordBidRejected(string) {}
func (Nop) RecordAuctionEnded(string) {}
func (Nop) RecordAuctionDeleted(string) {}
func (Nop) RecordNotificationSent(string) {}
func (Nop) RecordSweep(time.Duration, int) {}
