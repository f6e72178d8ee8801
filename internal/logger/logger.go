package logger

import (
	"log"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Глобальная переменная логгера.
var logger *zap.Logger

// level Уровень логирования, может меняться во время работы (SetLevel).
var level = zap.NewAtomicLevelAt(zapcore.DebugLevel)

// init Инициализация логгера для использования его во всем приложении.
// init будет выполнен один раз, независимо от количества импортов в разных местах приложения.
func init() {
	// Инициализация для режима разработки.
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level

	localLogger, err := cfg.Build()
	if err != nil {
		log.Fatal("Ошибка инициализации логгера zap", err)
	}

	logger = localLogger
}

// SetLevel Установка уровня логирования по имени: debug, info, warn, error.
func SetLevel(name string) error {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return errors.Wrapf(err, "parsing log level %q", name)
	}
	level.SetLevel(l)
	return nil
}

// Level Текущий уровень логирования.
func Level() zapcore.Level {
	return level.Level()
}

// Sync Сброс буферов логгера, вызывается перед завершением приложения.
func Sync() {
	_ = logger.Sync()
}

// Fatal - запись в лог, уровень Fatal.
func Fatal(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Fatalw(msg, keysAndValues...)
}

// Error - запись в лог, уровень Error.
func Error(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Errorw(msg, keysAndValues...)
}

// Warn - запись в лог, уровень Warn.
func Warn(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Warnw(msg, keysAndValues...)
}

// Info - запись в лог, уровень Info.
func Info(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Infow(msg, keysAndValues...)
}

// Debug - запись в лог, уровень Debug.
func Debug(msg string, keysAndValues ...interface{}) {
	logger.Sugar().Debugw(msg, keysAndValues...)
}
