/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/metadata"
)

const (
	logPrefixFormatter = " [%s] "
	callDepth          = 2
	callerDepth        = 3
)

// NewDefLog returns the default logger implementation, backed by the standard
// library log package, writing to stdout.
func NewDefLog(module string) *DefLog {
	logger := log.New(os.Stdout, fmt.Sprintf(logPrefixFormatter, module), log.Ldate|log.Ltime|log.LUTC)

	return &DefLog{logger: logger, module: module}
}

// DefLog is a moduled logger backed by the standard library.
type DefLog struct {
	logger *log.Logger
	module string
}

// SetOutput swaps the log destination. Used by tests.
func (l *DefLog) SetOutput(output io.Writer) {
	l.logger.SetOutput(output)
}

// Fatalf logs at CRITICAL level and exits the process.
func (l *DefLog) Fatalf(msg string, args ...interface{}) {
	l.logf(metadata.CRITICAL, msg, args...)
	os.Exit(1)
}

// Panicf logs at CRITICAL level and panics.
func (l *DefLog) Panicf(msg string, args ...interface{}) {
	l.logf(metadata.CRITICAL, msg, args...)
	panic(fmt.Sprintf(msg, args...))
}

// Debugf logs at DEBUG level.
func (l *DefLog) Debugf(msg string, args ...interface{}) {
	l.logf(metadata.DEBUG, msg, args...)
}

// Infof logs at INFO level.
func (l *DefLog) Infof(msg string, args ...interface{}) {
	l.logf(metadata.INFO, msg, args...)
}

// Warnf logs at WARNING level.
func (l *DefLog) Warnf(msg string, args ...interface{}) {
	l.logf(metadata.WARNING, msg, args...)
}

// Errorf logs at ERROR level.
func (l *DefLog) Errorf(msg string, args ...interface{}) {
	l.logf(metadata.ERROR, msg, args...)
}

func (l *DefLog) logf(level metadata.Level, msg string, args ...interface{}) {
	line := fmt.Sprintf("%s%s %s", l.getCallerInfo(level), metadata.ParseString(level), fmt.Sprintf(msg, args...))

	if err := l.logger.Output(callDepth, line); err != nil {
		fmt.Fprintf(os.Stderr, "error from logger.Output %v\n", err)
	}
}

// getCallerInfo returns the caller function's name, when enabled for the
// module and level.
func (l *DefLog) getCallerInfo(level metadata.Level) string {
	if !metadata.IsCallerInfoEnabled(l.module, level) {
		return ""
	}

	pc, _, _, ok := runtime.Caller(callerDepth)
	if !ok {
		return ""
	}

	fnName := runtime.FuncForPC(pc).Name()
	if index := strings.LastIndex(fnName, "/"); index >= 0 {
		fnName = fnName[index+1:]
	}

	return fnName + " -> "
}
