// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
)

const (
	progressNone    = "none"
	progressBar     = "bar"
	progressNames   = "names"
	progressVerbose = "verbose"
)

var progressStyles = []string{progressNone, progressBar, progressNames, progressVerbose}

// A progressReporter shows the progress of a batch conversion
type progressReporter interface {
	report(j job, written bool, err error)
	finish()
}

// newReporter returns the progressReporter for the given style writing to w
func newReporter(style string, w io.Writer, total int) (progressReporter, error) {
	switch style {
	case progressNone:
		return silentReporter{}, nil
	case progressBar, "":
		bar := progressbar.NewOptions(total,
			progressbar.OptionSetWriter(w),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Converting"),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
		return &barReporter{bar: bar, out: w}, nil
	case progressNames, progressVerbose:
		return &textReporter{out: w, verbose: style == progressVerbose}, nil
	}
	return nil, fmt.Errorf("unknown progress style '%s'. Should be one of %s", style, strings.Join(progressStyles, ", "))
}

// silentReporter reports nothing
type silentReporter struct{}

func (silentReporter) report(job, bool, error) {}

func (silentReporter) finish() {}

// barReporter shows a progress bar
type barReporter struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

func (b *barReporter) report(j job, written bool, err error) {
	b.bar.Add(1)
}

func (b *barReporter) finish() {
	b.bar.Finish()
	fmt.Fprintln(b.out)
}

// textReporter prints the name of each processed file
type textReporter struct {
	out     io.Writer
	verbose bool
}

func (t *textReporter) report(j job, written bool, err error) {
	if !t.verbose {
		fmt.Fprintln(t.out, j.input)
		return
	}
	switch {
	case err != nil:
		fmt.Fprintf(t.out, "%s: error: %s\n", j, err)
	case !written:
		fmt.Fprintf(t.out, "%s: nothing to translate, skipped\n", j.input)
	default:
		fmt.Fprintf(t.out, "%s: done\n", j)
	}
}

func (t *textReporter) finish() {}
