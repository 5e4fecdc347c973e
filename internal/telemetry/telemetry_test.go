package telemetry

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv(endpointEnv, "")

	if Enabled() {
		t.Fatal("Enabled() = true without endpoint")
	}

	ctx := context.Background()
	shutdown, err := Setup(ctx)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}
	if err := shutdown(ctx); err != nil {
		t.Errorf("shutdown() error = %v", err)
	}
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Tracer("test").Start(context.Background(), "work")
	if !span.IsRecording() {
		t.Error("span.IsRecording() = false, want true")
	}
	span.End()

	ended := sr.Ended()
	if len(ended) != 1 {
		t.Fatalf("len(Ended()) = %d, want 1", len(ended))
	}
	if got := ended[0].InstrumentationScope().Name; got != "termsweeper/test" {
		t.Errorf("scope name = %q, want %q", got, "termsweeper/test")
	}
}
