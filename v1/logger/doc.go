// Package logger provides structured logging for the module.
//
// It wraps Uber's Zap behind a small (msg, err, fields) surface that the
// vearch and vearchstore packages accept as their Logger interface, adds
// optional OpenTelemetry trace correlation, and integrates with the fx
// dependency injection framework.
//
// # Core Features
//
//   - Structured JSON logging with key-value field maps
//   - Log levels: debug, info, warning, error
//   - *WithContext variants that attach trace_id and span_id from the
//     active OpenTelemetry span
//   - Process ID and service name on every entry
//   - Managed lifecycle with Fx integration (logs are flushed on shutdown)
//
// # Basic Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//	    Level:       logger.Info,
//	    ServiceName: "vearchstore",
//	})
//
//	log.Info("store ready", nil, map[string]interface{}{
//	    "space": "embedding_space",
//	})
//
// The adapter packages accept any implementation of their local Logger
// interfaces; *Logger from this package satisfies all of them:
//
//	store, _ := vearchstore.NewStore(ctx, cfg)
//	store.WithLogger(log)
//
// # Configuration
//
// The logger can be configured via environment variables:
//
//	ZAP_LOGGER_LEVEL=debug          # Log level (debug, info, warning, error)
//	LOGGER_SERVICE_NAME=my-service  # Service name field
//	LOGGER_ENABLE_TRACING=true      # Attach trace/span IDs in *WithContext methods
//
// # Thread Safety
//
// All methods are safe for concurrent use by multiple goroutines.
package logger
