// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package inifile

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultDialect is the name of the dialect used when none is given
const DefaultDialect = "default"

// A Dialect defines how special characters are escaped inside INI values
type Dialect interface {
	// Unescape returns the text represented by the raw INI value s
	Unescape(s string) string
}

var dialects = make(map[string]Dialect)

// GetDialect returns the registered dialect with the given name.
// An empty name returns the default dialect.
func GetDialect(name string) (Dialect, error) {
	if name == "" {
		name = DefaultDialect
	}
	d, ok := dialects[name]
	if !ok {
		return nil, fmt.Errorf("unknown INI dialect '%s'. Should be one of %s", name, strings.Join(Dialects(), ", "))
	}
	return d, nil
}

// registerDialect adds a dialect to the registry.
// It panics if a dialect with this name already exists.
func registerDialect(name string, d Dialect) {
	if _, exists := dialects[name]; exists {
		panic(fmt.Errorf("INI dialect %s is already registered", name))
	}
	dialects[name] = d
}

// Dialects returns the sorted names of all registered dialects
func Dialects() []string {
	res := make([]string, 0, len(dialects))
	for name := range dialects {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// plainDialect leaves values untouched
type plainDialect struct{}

func (plainDialect) Unescape(s string) string { return s }

// innoDialect is the dialect of Inno Setup message files where
// %n is a line break, %t a tab and %% a literal percent sign.
type innoDialect struct{}

// Unescape method of the innoDialect type
func (innoDialect) Unescape(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case '%':
			b.WriteByte('%')
		default:
			// %1, %2... are Inno Setup placeholders
			b.WriteByte('%')
			continue
		}
		i++
	}
	return b.String()
}

func init() {
	registerDialect(DefaultDialect, plainDialect{})
	registerDialect("inno", innoDialect{})
}
