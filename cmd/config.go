// Copyright 2018 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package cmd

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scaffoldKeys are the settings written by 'config scaffold'
var scaffoldKeys = []string{
	"Template", "Output", "Pot", "Duplicates", "Dialect", "Progress", "Timestamp",
	"LogLevel", "LogFile", "LogStdout", "Debug",
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration file utilities",
	Long:  `ini2po configuration file (ini2po.toml) utilities`,
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold",
	Short: "Write the current conversion settings to ini2po.toml",
	Long: `Write the conversion and logging settings to ini2po.toml in the current directory.
Use the -c flag to choose another destination file. The format follows the file extension (toml, yaml or json).
Flags and INI2PO_* environment variables given with this command are saved, e.g.:

	ini2po config scaffold --dialect inno --duplicates merge --pot`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgFile := viper.GetString("ConfigFileName")
		if cfgFile == "" {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			cfgFile = filepath.Join(cwd, "ini2po.toml")
		}
		if err := scaffoldConfig(cfgFile); err != nil {
			return err
		}
		log.Info("Configuration file written", "file", cfgFile)
		return nil
	},
}

// scaffoldConfig writes the current value of scaffoldKeys to fileName
func scaffoldConfig(fileName string) error {
	v := viper.New()
	for _, key := range scaffoldKeys {
		v.Set(key, viper.Get(key))
	}
	if err := v.WriteConfigAs(fileName); err != nil {
		return errors.Wrapf(err, "unable to write %s", fileName)
	}
	return nil
}

func init() {
	Ini2POCmd.AddCommand(configCmd)
	configCmd.AddCommand(scaffoldCmd)
}
