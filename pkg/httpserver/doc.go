// Package httpserver runs the showroom's HTTP handler with graceful
// shutdown.
//
// Run blocks until its context is canceled, SIGINT or SIGTERM is received,
// or Shutdown is called, then drains in-flight requests within the
// configured shutdown timeout:
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// HealthCheckHandler serves liveness and readiness probes. Readiness runs
// each named Check, typically the Healthcheck functions of the mongo, pg
// and redis packages:
//
//	r.Get("/health/ready", httpserver.HealthCheckHandler(log,
//		httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)},
//	))
//
// Start failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown.
package httpserver
