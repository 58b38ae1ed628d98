/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package api defines the internal logger contracts shared by the logging
// implementations and the public log package.

package api

// Logger is the logging interface implemented by moduled loggers.
type Logger interface {
	Fatalf(msg string, args ...interface{})
	Panicf(msg string, args ...interface{})
	Debugf(msg string, args ...interface{})
	Infof(msg string, args ...interface{})
	Warnf(msg string, args ...interface{})
	Errorf(msg string, args ...interface{})
}

// LoggerProvider is a factory for moduled loggers.
type LoggerProvider interface {
	GetLogger(module string) Logger
}
