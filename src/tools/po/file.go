// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package po

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"sort"
	"strings"
)

// Placeholder values of an untouched gettext template header
const (
	PlaceholderDate       = "YEAR-MO-DA HO:MI+ZONE"
	PlaceholderTranslator = "FULL NAME <EMAIL@ADDRESS>"
	PlaceholderTeam       = "LANGUAGE <LL@li.org>"
	PlaceholderProject    = "PACKAGE VERSION"
)

// Header is the initial comments "SOME DESCRIPTIVE TITLE", "YEAR"
// and "FIRST AUTHOR <EMAIL@ADDRESS>, YEAR" ought to be replaced by sensible information.
type Header struct {
	Comment                        // Header Comments
	ProjectIdVersion        string // Project-Id-Version: PACKAGE VERSION
	ReportMsgidBugsTo       string // Report-Msgid-Bugs-To: FIRST AUTHOR <EMAIL@ADDRESS>
	POTCreationDate         string // POT-Creation-Date: YEAR-MO-DA HO:MI+ZONE
	PORevisionDate          string // PO-Revision-Date: YEAR-MO-DA HO:MI+ZONE
	LastTranslator          string // Last-Translator: FIRST AUTHOR <EMAIL@ADDRESS>
	LanguageTeam            string // Language-Team: golang-china
	Language                string // Language: zh_CN
	MimeVersion             string // MIME-Version: 1.0
	ContentType             string // Content-Type: text/plain; charset=UTF-8
	ContentTransferEncoding string // Content-Transfer-Encoding: 8bit
	PluralForms             string // Plural-Forms: nplurals=2; plural=n == 1 ? 0 : 1;
	XGenerator              string // X-Generator: Poedit 1.5.5
	UnknowFields            map[string]string
}

// NewHeader returns a template header with gettext placeholders
func NewHeader() Header {
	return Header{
		ProjectIdVersion:        PlaceholderProject,
		POTCreationDate:         PlaceholderDate,
		PORevisionDate:          PlaceholderDate,
		LastTranslator:          PlaceholderTranslator,
		LanguageTeam:            PlaceholderTeam,
		MimeVersion:             "1.0",
		ContentType:             "text/plain; charset=UTF-8",
		ContentTransferEncoding: "8bit",
	}
}

// msgStr returns the header fields as the msgstr of the header entry
func (h *Header) msgStr() string {
	var buf bytes.Buffer
	field := func(name, value string) {
		fmt.Fprintf(&buf, "%s: %s\n", name, value)
	}
	field("Project-Id-Version", h.ProjectIdVersion)
	field("Report-Msgid-Bugs-To", h.ReportMsgidBugsTo)
	field("POT-Creation-Date", h.POTCreationDate)
	field("PO-Revision-Date", h.PORevisionDate)
	field("Last-Translator", h.LastTranslator)
	field("Language-Team", h.LanguageTeam)
	field("Language", h.Language)
	field("MIME-Version", h.MimeVersion)
	field("Content-Type", h.ContentType)
	field("Content-Transfer-Encoding", h.ContentTransferEncoding)
	if h.PluralForms != "" {
		field("Plural-Forms", h.PluralForms)
	}
	if h.XGenerator != "" {
		field("X-Generator", h.XGenerator)
	}
	keys := make([]string, 0, len(h.UnknowFields))
	for k := range h.UnknowFields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		field(k, h.UnknowFields[k])
	}
	return buf.String()
}

func (h Header) String() string {
	var buf bytes.Buffer
	buf.WriteString(h.Comment.String())
	buf.WriteString("msgid \"\"\nmsgstr \"\"\n")
	for _, line := range strings.SplitAfter(h.msgStr(), "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(&buf, "%s\n", quote(line))
	}
	return buf.String()
}

// File represents an PO File.
type File struct {
	MimeHeader Header
	Messages   []Message
}

// Data returns the PO file content
func (f *File) Data() []byte {
	var buf bytes.Buffer
	buf.WriteString(f.MimeHeader.String())
	for _, msg := range f.Messages {
		buf.WriteString("\n")
		buf.WriteString(msg.String())
	}
	return buf.Bytes()
}

// WriteTo writes the PO file content to w
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Data())
	return int64(n), err
}

// Save saves a PO file.
func (f *File) Save(name string) error {
	return ioutil.WriteFile(name, f.Data(), 0666)
}

// String returns the PO format file string.
func (f File) String() string {
	return string(f.Data())
}
