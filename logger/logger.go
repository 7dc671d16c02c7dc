package logger

//go:generate mockgen -source logger.go -destination logger_mock.go -package logger

import (
	"io"
	"os"
	"time"

	"github.com/op/go-logging"
)

const defaultLogFormat = "%{color}%{level:.1s}%{time:15:04:05.000} %{module}:%{color:reset} %{message}"

// Logger is the leveled logging surface used across dutyswap.
// *logging.Logger satisfies it.
type Logger interface {
	Criticalf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Warningf(format string, args ...interface{})
	Noticef(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Debugf(format string, args ...interface{})
	IsEnabledFor(level logging.Level) bool
}

// NewLogger provides a new instance of the Logger writing to stdout.
// An unparsable level falls back to INFO.
func NewLogger(level string, module string) Logger {
	return NewLoggerTo(os.Stdout, level, module)
}

// NewLoggerTo is NewLogger with an explicit destination.
func NewLoggerTo(w io.Writer, level string, module string) Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(w, "", 0)
	formatted := logging.NewBackendFormatter(backend, logging.MustStringFormatter(defaultLogFormat))
	leveled := logging.AddModuleLevel(formatted)

	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logLevel = logging.INFO
	}
	leveled.SetLevel(logLevel, module)
	log.SetBackend(leveled)

	return log
}

// ParseTime splits elapsed into hours, minutes and seconds.
func ParseTime(elapsed time.Duration) (uint32, uint32, uint32) {
	var (
		hours   = uint32(elapsed.Hours())
		minutes = uint32(elapsed.Minutes()) % 60
		seconds = uint32(elapsed.Seconds()) % 60
	)

	return hours, minutes, seconds
}
