package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		m := NewManager(WithNamespace("test"), WithHistogramBuckets([]float64{0.01, 0.1, 1}))

		Convey("When requests are observed", func() {
			m.ObserveRequest("/api/dogs", http.MethodGet, http.StatusOK, 5*time.Millisecond)
			m.ObserveRequest("/api/dogs", http.MethodGet, http.StatusOK, 7*time.Millisecond)
			m.ObserveRequest("", http.MethodGet, http.StatusNotFound, time.Millisecond)

			Convey("Then the counters are labelled by route and status", func() {
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("/api/dogs", "GET", "200")), ShouldEqual, 2)
				So(testutil.ToFloat64(m.httpRequests.WithLabelValues("unmatched", "GET", "404")), ShouldEqual, 1)
			})

			Convey("Then the handler exposes them", func() {
				rec := httptest.NewRecorder()
				m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
				body, _ := io.ReadAll(rec.Body)

				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(string(body), "test_http_requests_total"), ShouldBeTrue)
				So(strings.Contains(string(body), "test_http_request_duration_seconds_bucket"), ShouldBeTrue)
			})
		})
	})

	Convey("Given two managers", t, func() {
		Convey("They do not share a registry", func() {
			a := NewManager()
			b := NewManager(WithRuntimeCollectors())
			So(a.Registry() != b.Registry(), ShouldBeTrue)
		})
	})
}
