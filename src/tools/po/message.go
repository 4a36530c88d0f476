// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"bytes"
	"fmt"
	"strings"
)

// Comment holds the comment lines of a PO entry
type Comment struct {
	TranslatorComment string   // # translator-comments
	ExtractedComment  string   // #. extracted-comments
	ReferenceFile     []string // #: src/msgcmp.c:338 src/po-lex.c:699
	ReferenceLine     []int    // #: src/msgcmp.c:338 src/po-lex.c:699
	Flags             []string // #, fuzzy,c-format
}

// References returns the formatted references of this comment.
// A reference without a positive line number is written without one.
func (c *Comment) References() []string {
	res := make([]string, len(c.ReferenceFile))
	for i, file := range c.ReferenceFile {
		res[i] = file
		if i < len(c.ReferenceLine) && c.ReferenceLine[i] > 0 {
			res[i] = fmt.Sprintf("%s:%d", file, c.ReferenceLine[i])
		}
	}
	return res
}

// AddReference appends a reference to this comment if it is not there yet
func (c *Comment) AddReference(file string, line int) {
	for i, f := range c.ReferenceFile {
		if f == file && (i >= len(c.ReferenceLine) || c.ReferenceLine[i] == line) {
			return
		}
	}
	for len(c.ReferenceLine) < len(c.ReferenceFile) {
		c.ReferenceLine = append(c.ReferenceLine, 0)
	}
	c.ReferenceFile = append(c.ReferenceFile, file)
	c.ReferenceLine = append(c.ReferenceLine, line)
}

func (c Comment) String() string {
	var buf bytes.Buffer
	writeCommentLines(&buf, "#", c.TranslatorComment)
	writeCommentLines(&buf, "#.", c.ExtractedComment)
	if refs := c.References(); len(refs) > 0 {
		fmt.Fprintf(&buf, "#: %s\n", strings.Join(refs, " "))
	}
	if len(c.Flags) > 0 {
		fmt.Fprintf(&buf, "#, %s\n", strings.Join(c.Flags, ", "))
	}
	return buf.String()
}

// writeCommentLines writes one comment line per line of text
func writeCommentLines(buf *bytes.Buffer, prefix, text string) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			fmt.Fprintln(buf, prefix)
			continue
		}
		fmt.Fprintf(buf, "%s %s\n", prefix, line)
	}
}

// A Message is a single translatable entry of a PO file
type Message struct {
	Comment
	MsgContext   string
	MsgId        string
	MsgIdPlural  string
	MsgStr       string
	MsgStrPlural []string
}

// Key returns the identity of this message inside a catalog,
// i.e. its context and msgid.
func (p *Message) Key() MessageRef {
	return MessageRef{MsgContext: p.MsgContext, MsgId: p.MsgId}
}

// IsTranslated returns true if this message has a non empty translation
func (p *Message) IsTranslated() bool {
	if p.MsgIdPlural != "" {
		for _, s := range p.MsgStrPlural {
			if s != "" {
				return true
			}
		}
		return false
	}
	return p.MsgStr != ""
}

func (p Message) String() string {
	var buf bytes.Buffer
	buf.WriteString(p.Comment.String())
	if p.MsgContext != "" {
		writeField(&buf, "msgctxt", p.MsgContext)
	}
	writeField(&buf, "msgid", p.MsgId)
	if p.MsgIdPlural != "" {
		writeField(&buf, "msgid_plural", p.MsgIdPlural)
		for i, s := range p.MsgStrPlural {
			writeField(&buf, fmt.Sprintf("msgstr[%d]", i), s)
		}
		return buf.String()
	}
	writeField(&buf, "msgstr", p.MsgStr)
	return buf.String()
}

// A MessageRef identifies unique messages in a catalog
type MessageRef struct {
	MsgContext string
	MsgId      string
}

// writeField writes a keyword and its quoted value.
// Values with inner line breaks use the multi-line form.
func writeField(buf *bytes.Buffer, keyword, value string) {
	lines := strings.SplitAfter(value, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) <= 1 {
		fmt.Fprintf(buf, "%s %s\n", keyword, quote(value))
		return
	}
	fmt.Fprintf(buf, "%s \"\"\n", keyword)
	for _, line := range lines {
		fmt.Fprintf(buf, "%s\n", quote(line))
	}
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// quote returns s as a double quoted PO string
func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
