package rvnindexx

import (
	"github.com/rvncorex/rvncorex/contrib/buildversion"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var (
	buildVersion string = buildversion.GetVersion("github.com/rvncorex/rvncorex")
	meter               = otel.Meter("github.com/rvncorex/rvncorex/rvnindexx",
		metric.WithInstrumentationVersion(buildVersion))
)

var (
	encodedDefinitions, _ = meter.Int64Counter("rvnindex.encoded_definitions")
	encodeFailures, _     = meter.Int64Counter("rvnindex.encode_failures")
)
