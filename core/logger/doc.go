// Package logger builds the application's zap logger.
//
// Level accepts debug, info, warn and error; debug switches to zap's
// development preset. Format is json or console.
//
// Inside Fiber handlers, WithRayID attaches the request's ray id (set by the
// rayid middleware) so every line of a request can be correlated:
//
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
