// Package logger printf-style фасад над zerolog
// Все слои сервиса зависят от узких интерфейсов Logger, а не от конкретной реализации
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Logger логгер сервиса
type Logger struct {
	log  zerolog.Logger
	file *os.File
}

// New создает логгер, пишущий в файл filePath (или в stdout, если путь пустой)
// level: debug | info | warn | error
func New(filePath, level string) (*Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}

	var (
		out  *os.File
		file *os.File
	)

	if filePath == "" {
		out = os.Stdout
	} else {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = file
	}

	zl := zerolog.New(out).Level(parsedLevel).With().Timestamp().Logger()

	return &Logger{log: zl, file: file}, nil
}

// Close закрывает файл логов (no-op при выводе в stdout)
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Debug пишет сообщение уровня debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}

// Info пишет сообщение уровня info
func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Info().Msgf(format, v...)
}

// Warn пишет сообщение уровня warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

// Error пишет сообщение уровня error
func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

// Fatal пишет сообщение уровня fatal и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatal().Msgf(format, v...)
}
