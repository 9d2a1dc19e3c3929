// Package muxhandlers provides middleware for the mux router.
//
// All middleware is created from a config struct and returns a
// mux.MiddlewareFunc:
//
//	r := mux.NewRouter()
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{}))
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{Logger: logger}))
//	r.Use(muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{Logger: logger}))
//
//	metrics, err := muxhandlers.MetricsMiddleware(muxhandlers.MetricsConfig{})
//	if err != nil {
//	    return err
//	}
//	r.Use(metrics)
//
// Middleware runs for matched routes only, so the matched pattern is
// always available through mux.CurrentPattern. Access logs and metrics are
// labelled with the pattern rather than the raw path, which keeps metric
// cardinality bounded by the number of registered routes.
package muxhandlers
