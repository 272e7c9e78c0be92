package rvnqueryx

import (
	"github.com/rvncorex/rvncorex/contrib/buildversion"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	buildVersion string = buildversion.GetVersion("github.com/rvncorex/rvncorex")
	meter               = otel.Meter("github.com/rvncorex/rvncorex/rvnqueryx",
		metric.WithInstrumentationVersion(buildVersion))
)

var (
	assembledRequests, _ = meter.Int64Counter("rvnquery.assembled_requests")
)
