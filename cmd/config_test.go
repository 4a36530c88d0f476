// Copyright 2018 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestScaffoldConfig(t *testing.T) {
	Convey("Scaffolding a configuration file", t, func() {
		dir, err := ioutil.TempDir("", "ini2po-config")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)
		viper.Set("Dialect", "inno")
		viper.Set("ConfigFileName", filepath.Join(dir, "other.toml"))
		defer func() {
			viper.Set("Dialect", "")
			viper.Set("ConfigFileName", "")
		}()
		fileName := filepath.Join(dir, "ini2po.toml")
		So(scaffoldConfig(fileName), ShouldBeNil)
		data, err := ioutil.ReadFile(fileName)
		So(err, ShouldBeNil)
		So(string(data), ShouldContainSubstring, "dialect")
		So(string(data), ShouldContainSubstring, "inno")
		So(string(data), ShouldContainSubstring, "msgctxt")
		So(string(data), ShouldNotContainSubstring, "configfilename")
		Convey("Scaffold accepts the conversion flags", func() {
			So(scaffoldCmd.Flags().Lookup("dialect"), ShouldNotBeNil)
			So(scaffoldCmd.Flags().Lookup("pot"), ShouldNotBeNil)
		})
	})
}
