/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"bytes"
	"fmt"
	"log"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/api"
	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/metadata"
)

const sampleLogFormat = "sample %s log output"

// nolint:gochecknoglobals // shared verification buffer for logging tests
var logOutputBuf bytes.Buffer

// SwitchLogOutputToBuffer switches the destination of the given moduled
// default logger to an internal buffer, so tests can inspect the output.
func SwitchLogOutputToBuffer(logger api.Logger) {
	modLog, ok := logger.(*ModLog)
	if !ok {
		return
	}

	if defLog, ok := modLog.logger.(*DefLog); ok {
		defLog.SetOutput(&logOutputBuf)
	}
}

// GetSampleCustomLogger returns a sample custom logger implementation writing
// to the internal verification buffer, for demonstrating custom providers.
func GetSampleCustomLogger(module string) *SampleLog {
	logger := log.New(&logOutputBuf, fmt.Sprintf(logPrefixFormatter, module), log.Ldate|log.Ltime|log.LUTC)

	return &SampleLog{logger: logger}
}

// SampleLog is a sample logger implementation without level-based control of
// its own; level checks are applied by the ModLog wrapping it.
type SampleLog struct {
	logger *log.Logger
}

// Fatalf logs at CRITICAL level. The sample logger does not exit the process.
func (l *SampleLog) Fatalf(msg string, args ...interface{}) {
	l.logf(metadata.CRITICAL, msg, args...)
}

// Panicf logs at CRITICAL level and panics.
func (l *SampleLog) Panicf(msg string, args ...interface{}) {
	l.logf(metadata.CRITICAL, msg, args...)
	panic(fmt.Sprintf(msg, args...))
}

// Debugf logs at DEBUG level.
func (l *SampleLog) Debugf(msg string, args ...interface{}) {
	l.logf(metadata.DEBUG, msg, args...)
}

// Infof logs at INFO level.
func (l *SampleLog) Infof(msg string, args ...interface{}) {
	l.logf(metadata.INFO, msg, args...)
}

// Warnf logs at WARNING level.
func (l *SampleLog) Warnf(msg string, args ...interface{}) {
	l.logf(metadata.WARNING, msg, args...)
}

// Errorf logs at ERROR level.
func (l *SampleLog) Errorf(msg string, args ...interface{}) {
	l.logf(metadata.ERROR, msg, args...)
}

func (l *SampleLog) logf(level metadata.Level, msg string, args ...interface{}) {
	line := fmt.Sprintf("%s %s", metadata.ParseString(level), fmt.Sprintf(msg, args...))

	if err := l.logger.Output(callDepth, line); err != nil {
		panic(err)
	}
}

// VerifyDefaultLogging verifies that output from the given moduled logger
// honors the module's log level for every level, and that Panicf panics.
// The logger's output must have been switched to the internal buffer first.
func VerifyDefaultLogging(t *testing.T, logger api.Logger, module string,
	setLevel func(module string, level metadata.Level)) {
	t.Helper()

	allLevels := []metadata.Level{metadata.CRITICAL, metadata.ERROR, metadata.WARNING, metadata.INFO, metadata.DEBUG}

	for _, enabledLevel := range allLevels {
		setLevel(module, enabledLevel)

		logger.Debugf(sampleLogFormat, "debug")
		matchOutput(t, module, metadata.DEBUG, enabledLevel, "debug")

		logger.Infof(sampleLogFormat, "info")
		matchOutput(t, module, metadata.INFO, enabledLevel, "info")

		logger.Warnf(sampleLogFormat, "warning")
		matchOutput(t, module, metadata.WARNING, enabledLevel, "warning")

		logger.Errorf(sampleLogFormat, "error")
		matchOutput(t, module, metadata.ERROR, enabledLevel, "error")
	}

	require.Panics(t, func() {
		logger.Panicf(sampleLogFormat, "panic")
	})

	logOutputBuf.Reset()
	setLevel(module, metadata.INFO)
}

// VerifyCustomLogger verifies level-based delegation to a custom logger
// implementation wrapped by a ModLog.
func VerifyCustomLogger(t *testing.T, logger api.Logger, module string) {
	t.Helper()

	VerifyDefaultLogging(t, logger, module, metadata.SetLevel)
}

func matchOutput(t *testing.T, module string, msgLevel, enabledLevel metadata.Level, msg string) {
	t.Helper()

	output := logOutputBuf.String()
	logOutputBuf.Reset()

	if msgLevel > enabledLevel {
		require.Empty(t, output, "unexpected output for disabled level [%s] on module [%s]",
			metadata.ParseString(msgLevel), module)

		return
	}

	require.Contains(t, output, fmt.Sprintf("[%s]", module))
	require.Contains(t, output, metadata.ParseString(msgLevel))
	require.Contains(t, output, msg)
}
