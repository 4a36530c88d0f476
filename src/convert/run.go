// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package convert

import (
	"fmt"
	"io"

	"github.com/hexya-erp/ini2po/src/tools/inifile"
	"github.com/hexya-erp/ini2po/src/tools/po"
	"github.com/pkg/errors"
)

// RepeatedKeyComment is the developer comment of messages whose key was
// repeated in the source file.
const RepeatedKeyComment = "repeated key, last value kept"

// BuildFile returns the PO file holding the given units.
// Messages sharing a msgid are handled with the configured duplicate style.
// Units marked as Duplicate get RepeatedKeyComment.
func BuildFile(units []Unit, cfg Config) *po.File {
	header := po.NewHeader()
	header.POTCreationDate = cfg.creationDate()
	header.XGenerator = Generator
	header.UnknowFields = map[string]string{"X-Accelerator-Marker": "&"}
	header.ExtractedComment = fmt.Sprintf("extracted from %s", cfg.SourceName)

	msgs := make([]po.Message, len(units))
	for i, unit := range units {
		msgs[i] = po.Message{
			Comment: po.Comment{ReferenceFile: []string{unit.Location}},
			MsgId:   unit.Source,
			MsgStr:  unit.Target,
		}
		if unit.Duplicate {
			msgs[i].ExtractedComment = RepeatedKeyComment
		}
	}
	file := &po.File{
		MimeHeader: header,
		Messages:   msgs,
	}
	duplicates := cfg.Duplicates
	if duplicates == "" {
		duplicates = po.DuplicatesMsgCtxt
	}
	file.RemoveDuplicates(duplicates)
	return file
}

// Run converts the INI data read from input into a PO file written to output.
//
// template may be nil, in which case a PO template is extracted from input.
// Run returns 1 if at least one translation unit was written and 0 if input
// had nothing to translate, in which case output is left untouched.
func Run(input io.Reader, output io.Writer, template io.Reader, cfg Config) (int, error) {
	if err := cfg.Validate(); err != nil {
		return 0, err
	}
	inputDoc, err := inifile.Load(input)
	if err != nil {
		return 0, errors.Wrap(err, "unable to load input")
	}
	var templateDoc *inifile.Document
	if template != nil {
		templateDoc, err = inifile.Load(template)
		if err != nil {
			return 0, errors.Wrap(err, "unable to load template")
		}
	}
	units, ok := Convert(inputDoc, templateDoc, cfg)
	if !ok {
		log.Info("Nothing to translate", "source", cfg.SourceName)
		return 0, nil
	}
	file := BuildFile(units, cfg)
	if _, err := file.WriteTo(output); err != nil {
		return 0, errors.Wrap(err, "unable to write PO file")
	}
	log.Debug("PO file written", "source", cfg.SourceName, "units", len(units), "messages", len(file.Messages))
	return 1, nil
}
