package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

var (
	nullWriter   = &NullWriter{}
	currentLevel = INFO
	Info         *log.Logger
	Warn         *log.Logger
	Error        *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func init() {
	Error = newLogger(nullWriter, "ERROR: ")
	Warn = newLogger(nullWriter, "WARN:  ")
	Info = newLogger(nullWriter, "INFO:  ")
	Debug = newLogger(nullWriter, "DEBUG: ")
	Trace = newLogger(nullWriter, "TRACE: ")
}

func newLogger(writer io.Writer, prefix string) *log.Logger {
	return log.New(writer, prefix, log.Ldate|log.Ltime|log.Lshortfile)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	currentLevel = logLevel

	if logLevel >= ERROR {
		Error = newLogger(os.Stderr, "ERROR: ")
	}
	if logLevel >= WARN {
		Warn = newLogger(os.Stdout, "WARN:  ")
	}
	if logLevel >= INFO {
		Info = newLogger(os.Stdout, "INFO:  ")
	}
	if logLevel >= DEBUG {
		Debug = newLogger(os.Stdout, "DEBUG: ")
	}
	if logLevel >= TRACE {
		Trace = newLogger(os.Stdout, "TRACE: ")
	}
}

// IsLogLevel tells if messages of the given level are written. Use it to
// skip building expensive trace output.
func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}
