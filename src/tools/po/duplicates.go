// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"fmt"
	"strings"
)

// A DuplicateStyle tells how messages with the same msgid are kept apart
type DuplicateStyle string

const (
	// DuplicatesMsgCtxt gives each duplicate message a context made of its references
	DuplicatesMsgCtxt DuplicateStyle = "msgctxt"
	// DuplicatesMerge merges duplicate messages into one with all references
	DuplicatesMerge DuplicateStyle = "merge"
)

// DuplicateStyles lists the valid duplicate styles
var DuplicateStyles = []DuplicateStyle{DuplicatesMsgCtxt, DuplicatesMerge}

// ParseDuplicateStyle returns the DuplicateStyle with the given name.
// An empty name returns DuplicatesMsgCtxt.
func ParseDuplicateStyle(name string) (DuplicateStyle, error) {
	if name == "" {
		return DuplicatesMsgCtxt, nil
	}
	for _, ds := range DuplicateStyles {
		if string(ds) == name {
			return ds, nil
		}
	}
	return "", fmt.Errorf("unknown duplicate style '%s'. Should be one of 'msgctxt' or 'merge'", name)
}

// RemoveDuplicates makes sure that no two messages of this file share
// the same context and msgid, using the given style.
//
// With DuplicatesMsgCtxt every message of a duplicate group gets its
// references as context. With DuplicatesMerge the group is replaced by
// its first message, which receives the references of the others and
// the first non empty translation.
func (f *File) RemoveDuplicates(style DuplicateStyle) {
	groups := make(map[MessageRef][]int)
	for i, msg := range f.Messages {
		ref := msg.Key()
		groups[ref] = append(groups[ref], i)
	}
	var res []Message
	for i, msg := range f.Messages {
		group := groups[msg.Key()]
		if len(group) == 1 {
			res = append(res, msg)
			continue
		}
		switch style {
		case DuplicatesMerge:
			if group[0] != i {
				continue
			}
			for _, j := range group[1:] {
				other := f.Messages[j]
				for k, file := range other.ReferenceFile {
					line := 0
					if k < len(other.ReferenceLine) {
						line = other.ReferenceLine[k]
					}
					msg.AddReference(file, line)
				}
				if !msg.IsTranslated() {
					msg.MsgStr = other.MsgStr
					msg.MsgStrPlural = other.MsgStrPlural
				}
			}
		default:
			msg.MsgContext = strings.Join(msg.References(), " ")
		}
		res = append(res, msg)
	}
	f.Messages = res
}
