/*
Package observability turns menu lifecycle events into Prometheus metrics and
structured log records.

Both return domain.LifecycleHooks; Chain combines them:

	metrics := observability.NewMetrics(prometheus.DefaultRegisterer)
	hooks := observability.Chain(metrics.Hooks(), observability.LogHooks(logger))
	menu, err := clim.New(s, clim.WithLifecycleHooks(hooks))
*/
package observability
