/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import "sync"

// nolint:gochecknoglobals // process-wide caller info registry
var callerInfos = newCallerInfo()

// ShowCallerInfo enables caller info in log lines for the given module and level.
func ShowCallerInfo(module string, level Level) {
	callerInfos.set(module, level, true)
}

// HideCallerInfo disables caller info in log lines for the given module and level.
func HideCallerInfo(module string, level Level) {
	callerInfos.set(module, level, false)
}

// IsCallerInfoEnabled returns whether caller info is enabled for the given
// module and level. Caller info is shown unless explicitly hidden.
func IsCallerInfoEnabled(module string, level Level) bool {
	return callerInfos.isEnabled(module, level)
}

type callerInfoKey struct {
	module string
	level  Level
}

func newCallerInfo() *callerInfo {
	return &callerInfo{visible: make(map[callerInfoKey]bool)}
}

type callerInfo struct {
	rwmutex sync.RWMutex
	visible map[callerInfoKey]bool
}

func (c *callerInfo) set(module string, level Level, visible bool) {
	c.rwmutex.Lock()
	defer c.rwmutex.Unlock()

	c.visible[callerInfoKey{module, level}] = visible
}

func (c *callerInfo) isEnabled(module string, level Level) bool {
	c.rwmutex.RLock()
	defer c.rwmutex.RUnlock()

	visible, exists := c.visible[callerInfoKey{module, level}]
	if !exists {
		return true
	}

	return visible
}
