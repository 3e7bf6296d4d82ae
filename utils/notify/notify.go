package notify

import (
	"github.com/taskora/client-go/utils/logger"
	"go.uber.org/zap"
)

// Notifier is the transient user-facing notification channel (the SPA's
// toasts). Operations that report through it do not also surface the same
// condition as a session error.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct{}

// NewLogNotifier returns a Notifier that writes toasts to the application log.
func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) Success(msg string) {
	logger.Info("notification", zap.String("level", "success"), zap.String("message", msg))
}

func (logNotifier) Error(msg string) {
	logger.Warn("notification", zap.String("level", "error"), zap.String("message", msg))
}
