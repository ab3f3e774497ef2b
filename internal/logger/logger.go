// Package logger is a thin leveled wrapper over the standard log package.
package logger

import (
	"log"
	"os"
)

var (
	debugMode = false
	infoLog   = log.New(os.Stdout, "[INFO] ", log.LstdFlags|log.Lmsgprefix)
	debugLog  = log.New(os.Stdout, "[DEBUG] ", log.LstdFlags|log.Lmsgprefix)
	errorLog  = log.New(os.Stderr, "[ERROR] ", log.LstdFlags|log.Lmsgprefix)
)

// SetDebug toggles debug output.
func SetDebug(debug bool) {
	debugMode = debug
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	infoLog.Printf(format, v...)
}

// Debug logs at debug level when enabled.
func Debug(format string, v ...interface{}) {
	if debugMode {
		debugLog.Printf(format, v...)
	}
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	errorLog.Printf(format, v...)
}

// Fatal logs at error level and exits.
func Fatal(format string, v ...interface{}) {
	errorLog.Fatalf(format, v...)
}
