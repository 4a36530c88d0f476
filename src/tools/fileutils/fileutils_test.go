// Copyright 2020 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package fileutils_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexya-erp/ini2po/src/tools/fileutils"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFindFiles(t *testing.T) {
	Convey("Testing FindFiles", t, func() {
		root, err := ioutil.TempDir("", "fileutils")
		So(err, ShouldBeNil)
		defer os.RemoveAll(root)
		So(os.MkdirAll(filepath.Join(root, "sub"), 0755), ShouldBeNil)
		for _, name := range []string{"b.ini", "a.INI", "readme.txt", filepath.Join("sub", "c.ini")} {
			So(ioutil.WriteFile(filepath.Join(root, name), []byte("[s]\n"), 0644), ShouldBeNil)
		}
		So(fileutils.IsDir(root), ShouldBeTrue)
		So(fileutils.IsDir(filepath.Join(root, "b.ini")), ShouldBeFalse)

		files, err := fileutils.FindFiles(root, ".ini")
		So(err, ShouldBeNil)
		So(files, ShouldResemble, []string{
			filepath.Join(root, "a.INI"),
			filepath.Join(root, "b.ini"),
			filepath.Join(root, "sub", "c.ini"),
		})

		files, err = fileutils.FindFiles(filepath.Join(root, "readme.txt"), ".ini")
		So(err, ShouldBeNil)
		So(files, ShouldResemble, []string{filepath.Join(root, "readme.txt")})

		_, err = fileutils.FindFiles(filepath.Join(root, "missing"), ".ini")
		So(err, ShouldNotBeNil)
	})
}

func TestPaths(t *testing.T) {
	Convey("Testing path helpers", t, func() {
		So(fileutils.ReplaceExt("locale/fr.ini", ".po"), ShouldEqual, "locale/fr.po")
		So(fileutils.ReplaceExt("README", ".pot"), ShouldEqual, "README.pot")
		p, err := fileutils.MirrorPath("in", filepath.Join("in", "sub", "fr.ini"), "out")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, filepath.Join("out", "sub", "fr.ini"))
		p, err = fileutils.MirrorPath("in/fr.ini", "in/fr.ini", "out")
		So(err, ShouldBeNil)
		So(p, ShouldEqual, filepath.Join("out", "fr.ini"))
	})
}
