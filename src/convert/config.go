// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package convert

import (
	"time"

	"github.com/hexya-erp/ini2po/src/tools/inifile"
	"github.com/hexya-erp/ini2po/src/tools/po"
	"github.com/pkg/errors"
)

// Generator is the value of the X-Generator header of produced files
const Generator = "ini2po"

// Config holds the options of a conversion
type Config struct {
	// SourceName is the name of the input, written in the PO header
	SourceName string
	// BlankTarget forces all translations to be empty, e.g. to make a POT file
	BlankTarget bool
	// Duplicates is the style used by the PO file for messages with the same msgid.
	// Defaults to po.DuplicatesMsgCtxt.
	Duplicates po.DuplicateStyle
	// Dialect is the name of the INI dialect of the input and template.
	// Defaults to inifile.DefaultDialect.
	Dialect string
	// Now gives the creation date of the PO file. If nil, the gettext
	// placeholder is written instead so that the output is reproducible.
	Now func() time.Time
}

// DefaultConfig returns the default conversion options
func DefaultConfig() Config {
	return Config{
		Duplicates: po.DuplicatesMsgCtxt,
		Dialect:    inifile.DefaultDialect,
	}
}

// Validate returns an error if the options of this Config are not valid
func (c Config) Validate() error {
	if _, err := po.ParseDuplicateStyle(string(c.Duplicates)); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if _, err := inifile.GetDialect(c.Dialect); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// creationDate returns the date to write in the PO header
func (c Config) creationDate() string {
	if c.Now == nil {
		return po.PlaceholderDate
	}
	return c.Now().Format("2006-01-02 15:04-0700")
}
