package hooks

import (
	"context"

	"github.com/kbukum/httpguard/guard"
	"github.com/kbukum/httpguard/logger"
)

// LogError returns an error hook that logs the observed error and the
// decision. Suppressed errors log at warn, raised errors at error.
func LogError(l *logger.Logger) guard.ErrorHook {
	return func(_ context.Context, ectx guard.ErrorContext) {
		fields := logger.Fields(
			logger.FieldScopeID, ectx.ScopeID,
			logger.FieldSuppressed, ectx.WasSuppressed,
			logger.FieldError, ectx.Err.Error(),
		)
		if code, ok := ectx.StatusCode(); ok {
			fields[logger.FieldStatus] = code
		}
		if ectx.Request != nil {
			fields[logger.FieldMethod] = ectx.Request.Method
			if ectx.Request.URL != nil {
				fields[logger.FieldURL] = ectx.Request.URL.String()
			}
		}

		if ectx.WasSuppressed {
			l.Warn("http error suppressed", fields)
			return
		}
		l.Error("http error raised", fields)
	}
}

// LogSuccess returns a success hook that logs at debug level.
func LogSuccess(l *logger.Logger) guard.SuccessHook {
	return func(context.Context) {
		l.Debug("guarded operation succeeded")
	}
}

// Combine fans an error out to several hooks, in order.
func Combine(hks ...guard.ErrorHook) guard.ErrorHook {
	return func(ctx context.Context, ectx guard.ErrorContext) {
		for _, h := range hks {
			if h != nil {
				h(ctx, ectx)
			}
		}
	}
}

// CombineSuccess fans a success out to several hooks, in order.
func CombineSuccess(hks ...guard.SuccessHook) guard.SuccessHook {
	return func(ctx context.Context) {
		for _, h := range hks {
			if h != nil {
				h(ctx)
			}
		}
	}
}
