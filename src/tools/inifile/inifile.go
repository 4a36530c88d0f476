// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package inifile reads INI files into an ordered document model.
//
// Parsing is delegated to gopkg.in/ini.v1. Unlike ini.v1's own File type,
// a Document keeps every occurrence of a repeated key so that callers can
// decide how repeats are resolved.
package inifile

import (
	"bytes"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// An Entry is a single key=value line of a section
type Entry struct {
	Key   string
	Value string
}

// A Section is a named and ordered list of entries.
// The name of the top level section is the empty string.
type Section struct {
	Name    string
	Entries []Entry
}

// Resolve walks the section's entries once and returns the keys in the
// order of their first appearance, the last value seen for each key and
// the number of times each key appeared.
func (s *Section) Resolve() ([]string, map[string]string, map[string]int) {
	var keys []string
	values := make(map[string]string)
	counts := make(map[string]int)
	for _, entry := range s.Entries {
		if counts[entry.Key] == 0 {
			keys = append(keys, entry.Key)
		}
		counts[entry.Key]++
		values[entry.Key] = entry.Value
	}
	return keys, values, counts
}

// A Document is the ordered list of sections of an INI file
type Document struct {
	Sections []*Section
}

// loadOptions are the ini.v1 options used for all documents.
//
// Values are taken verbatim up to the end of the line: '#' and ';' only
// start a comment at the beginning of a line, surrounding quotes are kept
// and a trailing backslash does not join the next line. Indented lines
// following a key continue its value.
var loadOptions = ini.LoadOptions{
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	IgnoreInlineComment:        true,
	IgnoreContinuation:         true,
	PreserveSurroundedQuote:    true,
	AllowPythonMultilineValues: true,
}

// Load reads an INI document from r
func Load(r io.Reader) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read INI data")
	}
	return LoadBytes(data)
}

// LoadBytes parses data as an INI document.
func LoadBytes(data []byte) (*Document, error) {
	doc := new(Document)
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	cfg, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse INI data")
	}
	for _, sec := range cfg.Sections() {
		section := &Section{Name: sec.Name()}
		if section.Name == ini.DefaultSection {
			section.Name = ""
		}
		for _, key := range sec.Keys() {
			values := key.ValueWithShadows()
			if len(values) == 0 {
				// ini.v1 returns no value at all for an empty non shadowed key
				values = []string{""}
			}
			for _, val := range values {
				section.Entries = append(section.Entries, Entry{Key: key.Name(), Value: trimContinuation(val)})
			}
		}
		doc.Sections = append(doc.Sections, section)
	}
	return doc, nil
}

// trimContinuation removes the indentation of the continuation lines of a
// multiline value.
func trimContinuation(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	lines := strings.Split(value, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}
