package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *logrus.Logger

// FileOptions описывает дублирование логов в файл с ротацией.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init инициализирует структурированный логгер.
func Init(level string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// Используем JSON формат для production, text для development
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter устанавливает текстовый формат логов (для development).
func SetTextFormatter() {
	if Log != nil {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// EnableFileOutput пишет логи одновременно в stdout и в файл с ротацией.
func EnableFileOutput(opts FileOptions) (io.Closer, error) {
	if Log == nil || opts.Path == "" {
		return nil, nil
	}
	if opts.MaxSizeMB <= 0 || opts.MaxBackups <= 0 || opts.MaxAgeDays <= 0 {
		return nil, fmt.Errorf("logger: некорректные параметры ротации: size=%d backups=%d age=%d",
			opts.MaxSizeMB, opts.MaxBackups, opts.MaxAgeDays)
	}

	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, fmt.Errorf("logger: не удалось создать каталог логов: %w", err)
	}

	file := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}

	Log.SetOutput(io.MultiWriter(os.Stdout, file))
	Log.WithField("path", opts.Path).Info("logger: включена запись логов в файл")
	return file, nil
}

// Errorf используется goroutine.RecoveryHandler.
type recoveryLogger struct{}

func (recoveryLogger) Errorf(format string, args ...interface{}) {
	if Log != nil {
		Log.Errorf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}

// RecoveryLogger возвращает адаптер логгера для восстановления после panic в горутинах.
func RecoveryLogger() interface {
	Errorf(format string, args ...interface{})
} {
	return recoveryLogger{}
}
