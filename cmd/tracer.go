package cmd

import (
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	appName = "db-tools"
)

// getTracer get a global tracer for the application, which incorporates both the name of the application
// and the command that is being run.
func getTracer(cmd string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(fmt.Sprintf("%s/%s", appName, cmd))
}
