// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hexya-erp/ini2po/src/convert"
	"github.com/hexya-erp/ini2po/src/tools/exceptions"
	"github.com/hexya-erp/ini2po/src/tools/fileutils"
	"github.com/hexya-erp/ini2po/src/tools/logging"
	"github.com/pkg/errors"
)

const (
	iniExt = ".ini"
	poExt  = ".po"
	potExt = ".pot"
	// stdStream is the output name meaning standard output
	stdStream = "-"
)

var timeNow = time.Now

// A job is the conversion of a single INI file
type job struct {
	root     string
	input    string
	template string
	output   string
}

// planJobs returns the conversion jobs for the given inputs.
//
// Directories are scanned for INI files. If template is a directory, each
// input is matched with the template file at the same relative path. If
// output is empty, PO files are written next to their inputs; if it is a
// directory, or if there is more than one file to convert, the input tree
// is mirrored into it.
func planJobs(inputs []string, template, output string, pot bool) ([]job, error) {
	ext := poExt
	if pot {
		ext = potExt
	}
	templateIsDir := template != "" && fileutils.IsDir(template)
	outputIsDir := fileutils.IsDir(output) || strings.HasSuffix(output, string(filepath.Separator))
	var jobs []job
	for _, input := range inputs {
		files, err := fileutils.FindFiles(input, iniExt)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to scan input %s", input)
		}
		for _, file := range files {
			j := job{
				root:     input,
				input:    file,
				template: template,
				output:   fileutils.ReplaceExt(file, ext),
			}
			if templateIsDir {
				if j.template, err = fileutils.MirrorPath(input, file, template); err != nil {
					return nil, errors.Wrapf(err, "unable to find template of %s", file)
				}
			}
			jobs = append(jobs, j)
		}
	}
	switch {
	case output == "":
	case output == stdStream:
		if len(jobs) > 1 {
			return nil, errors.New("cannot write more than one file to standard output")
		}
		for i := range jobs {
			jobs[i].output = stdStream
		}
	case len(jobs) == 1 && len(inputs) == 1 && !fileutils.IsDir(inputs[0]) && !outputIsDir:
		jobs[0].output = output
	default:
		for i := range jobs {
			mirrored, err := fileutils.MirrorPath(jobs[i].root, jobs[i].input, output)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to compute output of %s", jobs[i].input)
			}
			jobs[i].output = fileutils.ReplaceExt(mirrored, ext)
		}
	}
	return jobs, nil
}

// runJobs converts all jobs and reports each of them to reporter.
// Failing jobs do not stop the others. The returned error is a
// *exceptions.ConversionError listing all failed inputs.
func runJobs(jobs []job, cfg convert.Config, stdout io.Writer, reporter progressReporter) error {
	failures := new(exceptions.ConversionError)
	for _, j := range jobs {
		written, err := convertFile(j, cfg, stdout)
		if err != nil {
			log.Error("Conversion failed", "input", j.input, "error", err)
			failures.Add(j.input, err)
		}
		reporter.report(j, written, err)
	}
	reporter.finish()
	if failures.HasFailures() {
		return failures
	}
	return nil
}

// convertFile runs the conversion of a single job. It returns true if a
// PO file has been written. No file is created when the input has nothing
// to translate.
func convertFile(j job, cfg convert.Config, stdout io.Writer) (written bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = logging.LogPanicData(r)
			written = false
		}
	}()
	input, err := os.Open(j.input)
	if err != nil {
		return false, err
	}
	defer input.Close()

	// template must stay a nil interface when there is no template file
	var template io.Reader
	if j.template != "" {
		tmplFile, err := os.Open(j.template)
		if err != nil {
			return false, errors.Wrap(err, "unable to open template")
		}
		defer tmplFile.Close()
		template = tmplFile
	}

	cfg.SourceName = filepath.Base(j.input)
	var buf bytes.Buffer
	res, err := convert.Run(input, &buf, template, cfg)
	if err != nil || res == 0 {
		return false, err
	}
	if j.output == stdStream {
		_, err = buf.WriteTo(stdout)
		return err == nil, err
	}
	if err := os.MkdirAll(filepath.Dir(j.output), 0755); err != nil {
		return false, err
	}
	if err := ioutil.WriteFile(j.output, buf.Bytes(), 0644); err != nil {
		return false, err
	}
	log.Info("PO file written", "input", j.input, "output", j.output)
	return true, nil
}

func (j job) String() string {
	if j.template == "" {
		return fmt.Sprintf("%s -> %s", j.input, j.output)
	}
	return fmt.Sprintf("%s (%s) -> %s", j.input, j.template, j.output)
}
