/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package log

import (
	"sync"

	"github.com/Cipher-Bureau/shamirsss/pkg/internal/logging/modlog"
)

// nolint:gochecknoglobals // logger provider is a process-wide singleton
var (
	loggerProviderInstance LoggerProvider
	loggerProviderOnce     sync.Once
)

// Initialize sets a custom logging provider which takes over all logging
// operations. It must be called before any logging line is produced;
// afterwards it has no effect.
func Initialize(l LoggerProvider) {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{custom: l}
	})
}

func loggerProvider() LoggerProvider {
	loggerProviderOnce.Do(func() {
		loggerProviderInstance = &modlogProvider{}

		logger := loggerProviderInstance.GetLogger(loggerModule)
		logger.Debugf(loggerNotInitializedMsg)
	})

	return loggerProviderInstance
}

// modlogProvider is a factory for moduled loggers wrapping either a custom
// logger implementation or the default one.
type modlogProvider struct {
	custom LoggerProvider
}

// GetLogger returns a moduled logger for the given module.
func (p *modlogProvider) GetLogger(module string) Logger {
	var logger Logger
	if p.custom != nil {
		logger = p.custom.GetLogger(module)
	} else {
		logger = modlog.NewDefLog(module)
	}

	return modlog.NewModLog(logger, module)
}
