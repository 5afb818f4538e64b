// pkg/logger/logger.go

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Уровни логирования
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelFatal = "FATAL"
)

var levelPriority = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,
}

type Logger struct {
	logFile   *os.File
	out       *log.Logger
	logLevel  string
	debugMode bool
}

// NewLogger создает логгер. Пустой logPath - только консоль.
func NewLogger(logPath string, logLevel string, debug bool) (*Logger, error) {
	var writer io.Writer = os.Stdout
	var file *os.File

	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, err
		}
		file = f
		writer = io.MultiWriter(os.Stdout, f)
	}

	return newLogger(writer, logLevel, debug, file), nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, logLevel string) *Logger {
	return newLogger(w, logLevel, false, nil)
}

func newLogger(w io.Writer, logLevel string, debug bool, file *os.File) *Logger {
	return &Logger{
		logFile:   file,
		out:       log.New(w, "", 0),
		logLevel:  strings.ToUpper(logLevel),
		debugMode: debug,
	}
}

// shouldLog проверяет, нужно ли логировать сообщение на данном уровне
func (l *Logger) shouldLog(level string) bool {
	currentPriority, ok1 := levelPriority[l.logLevel]
	msgPriority, ok2 := levelPriority[level]

	if !ok1 || !ok2 {
		return true // Если неизвестный уровень, логируем всё
	}

	return msgPriority >= currentPriority
}

func (l *Logger) log(level string, format string, v ...interface{}) {
	if !l.shouldLog(level) {
		return
	}

	msg := fmt.Sprintf(format, v...)
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	// Цвета для консоли
	color := ""
	reset := ""
	if l.debugMode {
		switch level {
		case LevelDebug:
			color = "\033[36m"
		case LevelInfo:
			color = "\033[32m"
		case LevelWarn:
			color = "\033[33m"
		case LevelError:
			color = "\033[31m"
		case LevelFatal:
			color = "\033[35m"
		}
		reset = "\033[0m"
	}

	l.out.Printf("%s[%s] %s %s%s", color, level, timestamp, msg, reset)
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(LevelError, format, v...)
}

func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(LevelFatal, format, v...)
	l.Close()
	os.Exit(1)
}

// Lookup пишет строку об успешном запросе котировки
func (l *Logger) Lookup(symbol string, price float64, change string, chatID int64) {
	l.Info("📈 %s: %v (%s) для чата %d", symbol, price, change, chatID)
}

func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
		l.logFile = nil
	}
}
