package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/unkn0wn-root/hexpp/internal/errdef"
)

func TestEndRecordsErrorCode(t *testing.T) {
	exp := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	defer provider.Shutdown(context.Background())

	_, span := provider.Tracer("test").Start(context.Background(), "hexpp.dump")
	End(span, errdef.New(errdef.CodeUsage, "bad flag"))

	spans := exp.GetSpans()
	if len(spans) != 1 {
		t.Fatalf("expected one span, got %d", len(spans))
	}
	got := spans[0]
	if got.Status.Code != codes.Error || got.Status.Description != "usage: bad flag" {
		t.Fatalf("unexpected status %+v", got.Status)
	}
	found := false
	for _, kv := range got.Attributes {
		if kv.Key == "hexpp.error.code" && kv.Value.AsString() == "usage" {
			found = true
		}
	}
	if !found {
		t.Fatalf("missing error code attribute in %v", got.Attributes)
	}
}
