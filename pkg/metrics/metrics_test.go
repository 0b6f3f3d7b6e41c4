package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsManagerCreation(t *testing.T) {
	Convey("Given metrics manager creation", t, func() {
		Convey("When creating with default options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(WithPrometheusRegistry(registry))

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			manager := NewManager(
				WithNamespace("test-namespace"),
				WithSubsystem("test-subsystem"),
				WithMetricPrefix("test-prefix"),
				WithHistogramBuckets([]float64{0.1, 0.5, 1.0}),
				WithMetricsEnabled(true),
				WithRefreshInterval(10*time.Second),
				WithPrometheusRegistry(registry),
			)

			Convey("Then it should be created successfully", func() {
				So(manager, ShouldNotBeNil)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording domain events", func() {
			Convey("Then helpers should not panic", func() {
				So(func() {
					RecordGameStarted()
					RecordDayResolved()
					RecordActionApplied("train")
					RecordActionFailed()
					RecordResolveLatency(1.5)
					RecordCandidatesGenerated(3)
					RecordInterviewReply()
					RecordHireCompleted()
					RecordHireRejected()
					RecordEnergyPurchase()
					RecordEnergyPurchaseFailed()
					UpdateActiveGames(2)
					UpdateTotalAgents(6)
					RecordHTTPRequest("game_start", "POST", "200")
					RecordHTTPRequestDuration("game_start", "POST", "200", 4.2)
					RecordErrorByComponent("resolver", "not_found")
					RecordErrorByEndpoint("game_day", "POST", "client_error")
					UpdateSystemMemoryUsage(1 << 20)
					UpdateSystemGoroutineCount(12)
				}, ShouldNotPanic)
			})
		})

		Convey("When fetching the registry", func() {
			Convey("Then it should not be nil", func() {
				So(GetRegistry(), ShouldNotBeNil)
			})
		})
	})
}
