package errors

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/compozy/monday-mcp/engine/core"
	"github.com/compozy/monday-mcp/pkg/logger"
)

// -----
// Recovery Functions
// -----

// panicError converts a recovered value into a structured error
func panicError(operation string, r any) error {
	var err error
	switch v := r.(type) {
	case error:
		err = v
	case string:
		err = errors.New(v)
	default:
		err = fmt.Errorf("panic: %v", v)
	}

	return core.NewError(err, core.ErrorCodePanicRecovered, map[string]any{
		"operation": operation,
		"panic":     fmt.Sprintf("%v", r),
	})
}

// WithRecoverTyped executes a function with panic recovery and returns its result
func WithRecoverTyped[T any](operation string, fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("panic recovered",
				"operation", operation,
				"panic", r,
				"stack", string(debug.Stack()),
			)
			var zero T
			result = zero
			err = panicError(operation, r)
		}
	}()

	return fn()
}

// -----
// Graceful Degradation
// -----

// GracefulDegradeConfig configures graceful degradation behavior
type GracefulDegradeConfig struct {
	LogWarning bool
}

// WithGracefulDegrade executes a function and returns a default value on error
func WithGracefulDegrade[T any](operation string, config *GracefulDegradeConfig, defaultVal T, fn func() (T, error)) T {
	result, err := fn()
	if err != nil {
		if config != nil && config.LogWarning {
			logger.Warn("operation degraded gracefully",
				"operation", operation,
				"error", err,
			)
		}
		return defaultVal
	}
	return result
}
