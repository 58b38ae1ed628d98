/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "sync"

// Level defines a log level for logging messages.
type Level int

// Log levels.
const (
	CRITICAL Level = iota
	ERROR
	WARNING
	INFO
	DEBUG
)

// defaultLevel is used for modules without an explicitly set level.
const defaultLevel = INFO

// nolint:gochecknoglobals // process-wide log level registry
var levels = newModuleLevels()

// SetLevel sets the log level for the given module.
func SetLevel(module string, level Level) {
	levels.setLevel(module, level)
}

// GetLevel returns the log level for the given module, INFO if not set.
func GetLevel(module string) Level {
	return levels.getLevel(module)
}

// GetAllLevels returns all set log levels by module.
func GetAllLevels() map[string]Level {
	return levels.getAllLevels()
}

// IsEnabledFor returns whether the given log level is enabled for the given module.
func IsEnabledFor(module string, level Level) bool {
	return level <= levels.getLevel(module)
}

func newModuleLevels() *moduleLevels {
	return &moduleLevels{levels: make(map[string]Level)}
}

// moduleLevels maintains log levels per module.
type moduleLevels struct {
	rwmutex sync.RWMutex
	levels  map[string]Level
}

func (l *moduleLevels) setLevel(module string, level Level) {
	l.rwmutex.Lock()
	defer l.rwmutex.Unlock()

	l.levels[module] = level
}

func (l *moduleLevels) getLevel(module string) Level {
	l.rwmutex.RLock()
	defer l.rwmutex.RUnlock()

	level, exists := l.levels[module]
	if !exists {
		return defaultLevel
	}

	return level
}

func (l *moduleLevels) getAllLevels() map[string]Level {
	l.rwmutex.RLock()
	defer l.rwmutex.RUnlock()

	all := make(map[string]Level, len(l.levels))
	for module, level := range l.levels {
		all[module] = level
	}

	return all
}
