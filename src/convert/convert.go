// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

// Package convert turns INI documents into PO translation units.
//
// Without a template, every non empty value of the input becomes an
// untranslated unit (extraction). With a template, the template defines
// which units exist and in which order, and the input values with the same
// location become their translations (merge).
package convert

import (
	"fmt"

	"github.com/hexya-erp/ini2po/src/tools/inifile"
	"github.com/hexya-erp/ini2po/src/tools/logging"
	"github.com/hexya-erp/ini2po/src/tools/po"
)

var log logging.Logger

// A Unit is a translation unit produced from an INI entry
type Unit struct {
	// Location is the [section]key identifier of the entry
	Location string
	// Source is the text to translate
	Source string
	// Target is the translation of Source, if any
	Target string
	// Duplicate is true if the location appeared more than once in the input
	// and the duplicate style is merge. BuildFile then adds a developer
	// comment to the message.
	Duplicate bool
}

// Location returns the identifier of the given key in the given section
func Location(section, key string) string {
	return fmt.Sprintf("[%s]%s", section, key)
}

// resolvedEntry is an INI entry after resolution of repeated keys
type resolvedEntry struct {
	location string
	value    string
	count    int
}

// resolve returns the entries of doc in file order with a single value
// per location, the last one seen in the file.
func resolve(doc *inifile.Document, dialect inifile.Dialect) ([]resolvedEntry, map[string]resolvedEntry) {
	var entries []resolvedEntry
	byLocation := make(map[string]resolvedEntry)
	if doc == nil {
		return entries, byLocation
	}
	for _, section := range doc.Sections {
		keys, values, counts := section.Resolve()
		for _, key := range keys {
			re := resolvedEntry{
				location: Location(section.Name, key),
				value:    dialect.Unescape(values[key]),
				count:    counts[key],
			}
			if prev, exists := byLocation[re.location]; exists {
				// Same section name declared twice
				re.count += prev.count
				for i := range entries {
					if entries[i].location == re.location {
						entries[i] = re
					}
				}
				byLocation[re.location] = re
				continue
			}
			entries = append(entries, re)
			byLocation[re.location] = re
		}
	}
	return entries, byLocation
}

// Convert returns the translation units of the input document.
//
// If template is nil, units are extracted from input with an empty
// target. Otherwise, units follow the template and take their target from
// the input entry at the same location. Entries with an empty value are
// skipped. The second returned value is true if at least one unit was
// produced.
func Convert(input, template *inifile.Document, cfg Config) ([]Unit, bool) {
	dialect, err := inifile.GetDialect(cfg.Dialect)
	if err != nil {
		log.Warn("Falling back to default dialect", "dialect", cfg.Dialect, "error", err)
		dialect, _ = inifile.GetDialect(inifile.DefaultDialect)
	}
	inputEntries, inputByLocation := resolve(input, dialect)

	var units []Unit
	if template == nil {
		for _, entry := range inputEntries {
			if entry.value == "" {
				continue
			}
			units = append(units, Unit{
				Location:  entry.location,
				Source:    entry.value,
				Duplicate: isDuplicate(entry, cfg.Duplicates),
			})
		}
		return units, len(units) > 0
	}

	templateEntries, _ := resolve(template, dialect)
	for _, tmplEntry := range templateEntries {
		if tmplEntry.value == "" {
			continue
		}
		unit := Unit{
			Location: tmplEntry.location,
			Source:   tmplEntry.value,
		}
		inputEntry, ok := inputByLocation[tmplEntry.location]
		switch {
		case !ok:
			log.Debug("Template entry not found in input", "location", tmplEntry.location)
		case cfg.BlankTarget:
			unit.Duplicate = isDuplicate(inputEntry, cfg.Duplicates)
		default:
			unit.Target = inputEntry.value
			unit.Duplicate = isDuplicate(inputEntry, cfg.Duplicates)
		}
		units = append(units, unit)
	}
	return units, len(units) > 0
}

// isDuplicate returns true if the entry was repeated in its document and
// the duplicate style keeps track of it.
func isDuplicate(entry resolvedEntry, style po.DuplicateStyle) bool {
	if entry.count < 2 {
		return false
	}
	log.Debug("Repeated key resolved to its last value", "location", entry.location, "occurrences", entry.count)
	return style == po.DuplicatesMerge
}

func init() {
	log = logging.GetLogger("convert")
}
