// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

/*
Package po provides support for writing GNU PO files.

Examples:
	file := po.File{
		MimeHeader: po.NewHeader(),
		Messages: []po.Message{
			{
				Comment: po.Comment{ReferenceFile: []string{"[section]key"}},
				MsgId:   "value",
			},
		},
	}
	if err := file.Save("messages.po"); err != nil {
		log.Fatal(err)
	}

The GNU PO file specification is at
http://www.gnu.org/software/gettext/manual/html_node/PO-Files.html.
*/
package po
