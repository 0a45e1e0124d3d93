package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNilReceiverIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PurchaseWritten("create")
		m.BackfillOutcome("updated", 3)
		m.ExtractionDone("ok", time.Now())
		m.AuditFailed()
	})
}

func TestCounters(t *testing.T) {
	m := New("test")
	m.PurchaseWritten("create")
	m.PurchaseWritten("create")
	m.BackfillOutcome("ambiguous", 2)
	m.BackfillOutcome("skipped", 0)
	m.AuditFailed()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.purchaseWrite.WithLabelValues("create")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.backfill.WithLabelValues("ambiguous")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.auditFailures))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New("test")
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/things/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/things/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpReqCnt.WithLabelValues("GET", "/things/:id", "204")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "test_http_requests_total"))
}
