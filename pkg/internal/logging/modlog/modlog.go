/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// package modlog provides moduled logger implementations: a wrapper applying
// per-module level checks, and the default logger used when no custom
// provider is initialized.

package modlog

import (
	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/api"
	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/metadata"
)

// NewModLog returns a moduled logger that applies the module's level checks
// before delegating to the given logger implementation.
func NewModLog(logger api.Logger, module string) *ModLog {
	return &ModLog{logger: logger, module: module}
}

// ModLog is a moduled wrapper around a Logger implementation.
type ModLog struct {
	logger api.Logger
	module string
}

// Fatalf calls the underlying logger's Fatalf. CRITICAL level cannot be disabled.
func (m *ModLog) Fatalf(msg string, args ...interface{}) {
	m.logger.Fatalf(msg, args...)
}

// Panicf calls the underlying logger's Panicf. CRITICAL level cannot be disabled.
func (m *ModLog) Panicf(msg string, args ...interface{}) {
	m.logger.Panicf(msg, args...)
}

// Debugf calls the underlying logger's Debugf if DEBUG is enabled for the module.
func (m *ModLog) Debugf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.DEBUG) {
		m.logger.Debugf(msg, args...)
	}
}

// Infof calls the underlying logger's Infof if INFO is enabled for the module.
func (m *ModLog) Infof(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.INFO) {
		m.logger.Infof(msg, args...)
	}
}

// Warnf calls the underlying logger's Warnf if WARNING is enabled for the module.
func (m *ModLog) Warnf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.WARNING) {
		m.logger.Warnf(msg, args...)
	}
}

// Errorf calls the underlying logger's Errorf if ERROR is enabled for the module.
func (m *ModLog) Errorf(msg string, args ...interface{}) {
	if metadata.IsEnabledFor(m.module, metadata.ERROR) {
		m.logger.Errorf(msg, args...)
	}
}
