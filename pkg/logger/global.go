// pkg/logger/global.go
package logger

import (
	"os"
)

var globalLogger = newLogger(os.Stdout, LevelInfo, false, nil)

// InitGlobal заменяет глобальный логгер. До вызова пишем в stdout с уровнем INFO.
func InitGlobal(logPath, logLevel string, debug bool) error {
	l, err := NewLogger(logPath, logLevel, debug)
	if err != nil {
		return err
	}
	globalLogger.Close()
	globalLogger = l
	return nil
}

// SetGlobal устанавливает готовый логгер
func SetGlobal(l *Logger) {
	globalLogger = l
}

func GetLogger() *Logger {
	return globalLogger
}

// Глобальные методы для удобства
func Debug(format string, v ...interface{}) {
	globalLogger.Debug(format, v...)
}

func Info(format string, v ...interface{}) {
	globalLogger.Info(format, v...)
}

func Warn(format string, v ...interface{}) {
	globalLogger.Warn(format, v...)
}

func Error(format string, v ...interface{}) {
	globalLogger.Error(format, v...)
}

func Fatal(format string, v ...interface{}) {
	globalLogger.Fatal(format, v...)
}

func Lookup(symbol string, price float64, change string, chatID int64) {
	globalLogger.Lookup(symbol, price, change, chatID)
}

func Close() {
	globalLogger.Close()
}
