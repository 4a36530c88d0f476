// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/hexya-erp/ini2po/src/convert"
	"github.com/hexya-erp/ini2po/src/tools/exceptions"
	. "github.com/smartystreets/goconvey/convey"
)

func writeFiles(root string, files map[string]string) {
	for name, content := range files {
		path := filepath.Join(root, name)
		So(os.MkdirAll(filepath.Dir(path), 0755), ShouldBeNil)
		So(ioutil.WriteFile(path, []byte(content), 0644), ShouldBeNil)
	}
}

func TestPlanJobs(t *testing.T) {
	Convey("Planning conversion jobs", t, func() {
		root, err := ioutil.TempDir("", "ini2po-plan")
		So(err, ShouldBeNil)
		defer os.RemoveAll(root)
		in := filepath.Join(root, "in")
		tmpl := filepath.Join(root, "tmpl")
		out := filepath.Join(root, "out")
		writeFiles(root, map[string]string{
			"in/fr.ini":        "[s]\nk=v\n",
			"in/sub/de.ini":    "[s]\nk=v\n",
			"in/notes.txt":     "",
			"tmpl/fr.ini":      "[s]\nk=v\n",
			"tmpl/sub/de.ini":  "[s]\nk=v\n",
			"single/setup.ini": "[s]\nk=v\n",
		})
		single := filepath.Join(root, "single", "setup.ini")

		Convey("Without output, PO files are next to inputs", func() {
			jobs, err := planJobs([]string{in}, "", "", false)
			So(err, ShouldBeNil)
			So(jobs, ShouldResemble, []job{
				{root: in, input: filepath.Join(in, "fr.ini"), output: filepath.Join(in, "fr.po")},
				{root: in, input: filepath.Join(in, "sub", "de.ini"), output: filepath.Join(in, "sub", "de.po")},
			})
		})
		Convey("Directories are mirrored in output and template", func() {
			jobs, err := planJobs([]string{in}, tmpl, out, true)
			So(err, ShouldBeNil)
			So(jobs, ShouldHaveLength, 2)
			So(jobs[1].template, ShouldEqual, filepath.Join(tmpl, "sub", "de.ini"))
			So(jobs[1].output, ShouldEqual, filepath.Join(out, "sub", "de.pot"))
		})
		Convey("A single file can be written to a given file or stdout", func() {
			jobs, err := planJobs([]string{single}, filepath.Join(tmpl, "fr.ini"), filepath.Join(root, "result.po"), false)
			So(err, ShouldBeNil)
			So(jobs, ShouldResemble, []job{{
				root:     single,
				input:    single,
				template: filepath.Join(tmpl, "fr.ini"),
				output:   filepath.Join(root, "result.po"),
			}})
			jobs, err = planJobs([]string{single}, "", "-", false)
			So(err, ShouldBeNil)
			So(jobs[0].output, ShouldEqual, "-")
		})
		Convey("A single file with an output directory", func() {
			jobs, err := planJobs([]string{single}, "", out+string(filepath.Separator), false)
			So(err, ShouldBeNil)
			So(jobs[0].output, ShouldEqual, filepath.Join(out, "setup.po"))
		})
		Convey("Several files cannot go to stdout", func() {
			_, err := planJobs([]string{in}, "", "-", false)
			So(err, ShouldNotBeNil)
		})
		Convey("Missing inputs are errors", func() {
			_, err := planJobs([]string{filepath.Join(root, "missing.ini")}, "", "", false)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRunJobs(t *testing.T) {
	Convey("Running conversion jobs", t, func() {
		root, err := ioutil.TempDir("", "ini2po-run")
		So(err, ShouldBeNil)
		defer os.RemoveAll(root)
		writeFiles(root, map[string]string{
			"in/fr.ini":       "[section]\nkey=valor\n",
			"in/empty.ini":    "[section]\n",
			"in/broken.ini":   "[section\nkey=value\n",
			"tmpl/fr.ini":     "[section]\nkey=value\n",
			"tmpl/empty.ini":  "[section]\n",
			"tmpl/broken.ini": "[section]\nkey=value\n",
		})
		in := filepath.Join(root, "in")
		out := filepath.Join(root, "out")
		jobs, err := planJobs([]string{in}, filepath.Join(root, "tmpl"), out, false)
		So(err, ShouldBeNil)
		So(jobs, ShouldHaveLength, 3)

		var progress, stdout bytes.Buffer
		reporter, err := newReporter(progressVerbose, &progress, len(jobs))
		So(err, ShouldBeNil)
		err = runJobs(jobs, convert.DefaultConfig(), &stdout, reporter)
		So(err, ShouldNotBeNil)
		convErr, ok := err.(*exceptions.ConversionError)
		So(ok, ShouldBeTrue)
		So(convErr.Paths, ShouldResemble, []string{filepath.Join(in, "broken.ini")})

		data, err := ioutil.ReadFile(filepath.Join(out, "fr.po"))
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "#: [section]key\nmsgid \"value\"\nmsgstr \"valor\"\n")
		So(string(data), ShouldContainSubstring, "extracted from fr.ini")

		_, err = os.Stat(filepath.Join(out, "empty.po"))
		So(os.IsNotExist(err), ShouldBeTrue)
		_, err = os.Stat(filepath.Join(out, "broken.po"))
		So(os.IsNotExist(err), ShouldBeTrue)

		So(progress.String(), ShouldContainSubstring, "empty.ini: nothing to translate, skipped")
		So(progress.String(), ShouldContainSubstring, "broken.ini")
		So(stdout.Len(), ShouldEqual, 0)
	})
	Convey("Writing to stdout", t, func() {
		root, err := ioutil.TempDir("", "ini2po-stdout")
		So(err, ShouldBeNil)
		defer os.RemoveAll(root)
		writeFiles(root, map[string]string{"fr.ini": "[section]\nkey=value\n"})
		jobs, err := planJobs([]string{filepath.Join(root, "fr.ini")}, "", "-", true)
		So(err, ShouldBeNil)
		var stdout bytes.Buffer
		cfg := convert.DefaultConfig()
		cfg.BlankTarget = true
		So(runJobs(jobs, cfg, &stdout, silentReporter{}), ShouldBeNil)
		So(stdout.String(), ShouldContainSubstring, "#: [section]key\nmsgid \"value\"\nmsgstr \"\"\n")
	})
	Convey("Unknown progress styles are rejected", t, func() {
		_, err := newReporter("dots", ioutil.Discard, 1)
		So(err, ShouldNotBeNil)
		r, err := newReporter(progressBar, ioutil.Discard, 1)
		So(err, ShouldBeNil)
		r.report(job{input: "a.ini"}, true, nil)
		r.finish()
	})
}
