package main

import (
	"class-show/provider"

	"github.com/cloudwego/hertz/pkg/app/server"
	prometheus "github.com/hertz-contrib/monitor-prometheus"
	hertztracing "github.com/hertz-contrib/obs-opentelemetry/tracing"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
)

func Init() {
	provider.Init()
	otel.SetTextMapPropagator(b3.New())
}

func main() {
	Init()
	tracer, cfg := hertztracing.NewServerTracer()
	h := server.New(
		server.WithHostPorts(provider.Get().Config.ListenOn),
		server.WithTracer(prometheus.NewServerTracer(":9091", "/metrics")),
		tracer,
	)
	h.Use(hertztracing.ServerMiddleware(cfg))
	customizedRegister(h)
	h.Spin()
}
