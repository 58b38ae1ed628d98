/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package metadata

import (
	"errors"
	"strings"
)

// levelNames maps each supported log level to its canonical name.
// nolint:gochecknoglobals // closed set of level names
var levelNames = map[Level]string{
	CRITICAL: "CRITICAL",
	ERROR:    "ERROR",
	WARNING:  "WARNING",
	INFO:     "INFO",
	DEBUG:    "DEBUG",
}

// ParseLevel returns the log level named by the given string, ignoring case.
func ParseLevel(level string) (Level, error) {
	for l, name := range levelNames {
		if strings.EqualFold(name, level) {
			return l, nil
		}
	}

	return ERROR, errors.New("logger: invalid log level")
}

// ParseString returns the canonical name of the given log level.
func ParseString(level Level) string {
	return levelNames[level]
}
