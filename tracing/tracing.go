package tracing

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

type shutdown struct {
	tp *sdktrace.TracerProvider
}

func (s shutdown) Close() error {
	return s.tp.Shutdown(context.Background())
}

func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		exporter, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(os.Getenv("JAEGER_HOST_PORT")),
			otlptracegrpc.WithInsecure())
		if err != nil {
			return nil, err
		}

		res, err := resource.New(context.Background(),
			resource.WithAttributes(semconv.ServiceName(serviceName)))
		if err != nil {
			return nil, err
		}

		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		l.Debugf("Tracer initialized for service [%s].", serviceName)
		return shutdown{tp: tp}, nil
	}
}

func Teardown(l logrus.FieldLogger) func(tc io.Closer) func() {
	return func(tc io.Closer) func() {
		return func() {
			if err := tc.Close(); err != nil {
				l.WithError(err).Errorf("Unable to shut down tracer.")
			}
		}
	}
}
