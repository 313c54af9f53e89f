package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCollectorCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordBidAccepted()
	c.RecordBidAccepted()
	c.RecordBidRejected("bid_too_low")
	c.RecordAuctionEnded("expired")
	c.RecordNotificationSent("outbid")
	c.RecordSweep(20*time.Millisecond, 3)

	require.Equal(t, 2.0, testutil.ToFloat64(c.bidsAccepted))
	require.Equal(t, 1.0, testutil.ToFloat64(c.bidsRejected.WithLabelValues("bid_too_low")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.auctionsEnded.WithLabelValues("expired")))
	require.Equal(t, 1.0, testutil.ToFloat64(c.notificationsSent.WithLabelValues("outbid")))
	require.Equal(t, 3.0, testutil.ToFloat64(c.sweepEnded))
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordBidAccepted()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "vgvault_bids_accepted_total 1")
}
