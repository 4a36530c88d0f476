// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package exceptions provides error types used throughout ini2po
package exceptions

import (
	"fmt"
	"strings"
)

// UserError is an error that must be displayed to the user
// with optional debug information.
type UserError struct {
	Message string
	Debug   string
}

// Error method for the UserError type.
// Returns the message.
func (u UserError) Error() string {
	if u.Debug == "" {
		return u.Message
	}
	return fmt.Sprintf("%s\n----------------------------------\n%s", u.Message, u.Debug)
}

// A ConversionError is returned when one or more files of a batch
// could not be converted.
type ConversionError struct {
	// Failures maps the path of each failed input to its error
	Failures map[string]error
	// Paths lists the failed inputs in processing order
	Paths []string
}

// Add records the failure of the given input
func (c *ConversionError) Add(path string, err error) {
	if c.Failures == nil {
		c.Failures = make(map[string]error)
	}
	if _, exists := c.Failures[path]; !exists {
		c.Paths = append(c.Paths, path)
	}
	c.Failures[path] = err
}

// HasFailures returns true if at least one failure has been recorded
func (c *ConversionError) HasFailures() bool {
	return len(c.Paths) > 0
}

// Error method for the ConversionError type
func (c *ConversionError) Error() string {
	lines := make([]string, len(c.Paths))
	for i, path := range c.Paths {
		lines[i] = fmt.Sprintf("%s: %s", path, c.Failures[path])
	}
	return fmt.Sprintf("%d file(s) could not be converted:\n%s", len(c.Paths), strings.Join(lines, "\n"))
}
