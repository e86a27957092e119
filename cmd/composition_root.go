package cmd

import (
	"log/slog"

	ophttp "orderalerts/internal/adapters/in/http"
	"orderalerts/internal/adapters/out/alertapi"
	"orderalerts/internal/adapters/out/orderapi"
	"orderalerts/internal/core/application/usecases/commands"
	"orderalerts/internal/jobs"
	"orderalerts/internal/metrics"
	"orderalerts/internal/pkg/httpclient"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel"
)

const tracerName = "orderalerts"

type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	registry   *prometheus.Registry
	recorder   *metrics.Recorder
	httpClient *httpclient.Client
}

func NewCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		registry:   registry,
		recorder:   metrics.NewRecorder(registry),
		httpClient: httpclient.NewClient(otel.Tracer(tracerName), nil),
	}
}

func (c *CompositionRoot) CreateOrderSource() *orderapi.Client {
	return orderapi.NewClient(
		c.httpClient,
		c.configs.APIEndpoints.OrdersEndpoint,
		c.configs.APIEndpoints.UpdateEndpoint,
		c.logger,
	)
}

func (c *CompositionRoot) CreateAlertSink() *alertapi.Client {
	return alertapi.NewClient(c.httpClient, c.configs.APIEndpoints.AlertsEndpoint, c.logger)
}

func (c *CompositionRoot) CreateProcessOrdersCommandHandler() commands.ProcessOrdersCommandHandler {
	return commands.NewProcessOrdersCommandHandler(
		c.CreateOrderSource(),
		c.CreateAlertSink(),
		c.recorder,
		c.logger,
	)
}

func (c *CompositionRoot) CreateOrderProcessingJob() *jobs.OrderProcessingJob {
	return jobs.NewOrderProcessingJob(
		c.CreateProcessOrdersCommandHandler(),
		c.configs.PollSchedule,
		c.configs.RunTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateProcessOrdersCommandHandler(),
		c.configs.PollSchedule,
		c.configs.RunTimeout,
		c.logger,
	)
}

func (c *CompositionRoot) CreateOpsServer() *echo.Echo {
	return ophttp.NewEcho(ophttp.NewServer(c.registry))
}
