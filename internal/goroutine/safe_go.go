package goroutine

import (
	"context"
	"log"
	"runtime/debug"
)

// Logger принимает сообщения о panic в фоновых задачах.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// RecoveryHandler перехватывает panic в фоновых задачах: отправка писем,
// рассылка событий входящих, остановка сервера.
type RecoveryHandler struct {
	logger Logger
}

// NewRecoveryHandler создает новый обработчик
func NewRecoveryHandler(logger Logger) *RecoveryHandler {
	if logger == nil {
		logger = stdLogger{}
	}
	return &RecoveryHandler{logger: logger}
}

// SafeGo запускает горутину с обработкой panic
func (rh *RecoveryHandler) SafeGo(fn func()) {
	go func() {
		defer rh.recover("")
		fn()
	}()
}

// SafeGoWithContext запускает горутину с контекстом и обработкой panic
func (rh *RecoveryHandler) SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	go func() {
		defer rh.recover(" (with context)")
		fn(ctx)
	}()
}

func (rh *RecoveryHandler) recover(suffix string) {
	if r := recover(); r != nil {
		rh.logger.Errorf("panic in background task%s: %v\nstack:\n%s", suffix, r, debug.Stack())
	}
}

// stdLogger пишет в стандартный log до инициализации logrus.
type stdLogger struct{}

func (stdLogger) Errorf(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// DefaultRecoveryHandler заменяется в main на обработчик с logrus.
var DefaultRecoveryHandler = NewRecoveryHandler(stdLogger{})

// SafeGo - упрощенная функция для запуска безопасной горутины
func SafeGo(fn func()) {
	DefaultRecoveryHandler.SafeGo(fn)
}

// SafeGoWithContext - упрощенная функция для запуска безопасной горутины с контекстом
func SafeGoWithContext(ctx context.Context, fn func(context.Context)) {
	DefaultRecoveryHandler.SafeGoWithContext(ctx, fn)
}
