// Copyright 2017 NDP Systèmes. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"os/user"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hexya-erp/ini2po/src/convert"
	"github.com/hexya-erp/ini2po/src/tools/inifile"
	"github.com/hexya-erp/ini2po/src/tools/logging"
	"github.com/hexya-erp/ini2po/src/tools/po"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var log logging.Logger

// Ini2POCmd is the base 'ini2po' command of the commander
var Ini2POCmd = &cobra.Command{
	Use:   "ini2po [flags] INPUT...",
	Short: "Convert INI files to Gettext PO localization files",
	Long: `Convert INI files to Gettext PO localization files.
Each INPUT may be an INI file or a directory which is scanned recursively for
INI files. When a template is given, the INPUT files are considered as
translations of the template and the PO files will hold both.`,
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Initialize()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		defer log.Sync()
		cfg, err := conversionConfig()
		if err != nil {
			return err
		}
		jobs, err := planJobs(args, viper.GetString("Template"), viper.GetString("Output"), viper.GetBool("Pot"))
		if err != nil {
			return err
		}
		reporter, err := newReporter(viper.GetString("Progress"), cmd.OutOrStderr(), len(jobs))
		if err != nil {
			return err
		}
		return runJobs(jobs, cfg, cmd.OutOrStdout(), reporter)
	},
}

// conversionConfig returns the conversion options read from the configuration
func conversionConfig() (convert.Config, error) {
	cfg := convert.DefaultConfig()
	cfg.BlankTarget = viper.GetBool("Pot")
	cfg.Duplicates = po.DuplicateStyle(viper.GetString("Duplicates"))
	cfg.Dialect = viper.GetString("Dialect")
	if viper.GetBool("Timestamp") {
		cfg.Now = timeNow
	}
	return cfg, cfg.Validate()
}

func init() {
	log = logging.GetLogger("cmd")
	cobra.OnInitialize(initConfig)

	Ini2POCmd.PersistentFlags().StringP("config", "c", "", "Alternate configuration file to read. Defaults to $HOME/.ini2po/")
	viper.BindPFlag("ConfigFileName", Ini2POCmd.PersistentFlags().Lookup("config"))

	Ini2POCmd.PersistentFlags().StringP("log-level", "L", "info", "Log level. Should be one of 'debug', 'info', 'warn', 'error' or 'crit'")
	viper.BindPFlag("LogLevel", Ini2POCmd.PersistentFlags().Lookup("log-level"))
	Ini2POCmd.PersistentFlags().String("log-file", "", "File to which the log will be written")
	viper.BindPFlag("LogFile", Ini2POCmd.PersistentFlags().Lookup("log-file"))
	Ini2POCmd.PersistentFlags().Bool("log-stdout", false, "Enable stdout logging. Use for development or debugging.")
	viper.BindPFlag("LogStdout", Ini2POCmd.PersistentFlags().Lookup("log-stdout"))
	Ini2POCmd.PersistentFlags().Bool("debug", false, "Enable debug mode for development")
	viper.BindPFlag("Debug", Ini2POCmd.PersistentFlags().Lookup("debug"))

	Ini2POCmd.Flags().StringP("template", "t", "", "Read template INI from TEMPLATE (file or directory matching INPUT)")
	viper.BindPFlag("Template", Ini2POCmd.Flags().Lookup("template"))
	Ini2POCmd.Flags().StringP("output", "o", "", "Write to OUTPUT. A file, a directory or '-' for stdout. Defaults to files next to the inputs")
	viper.BindPFlag("Output", Ini2POCmd.Flags().Lookup("output"))
	Ini2POCmd.Flags().BoolP("pot", "P", false, "Output PO Templates (.pot) rather than PO files (.po)")
	viper.BindPFlag("Pot", Ini2POCmd.Flags().Lookup("pot"))
	Ini2POCmd.Flags().String("duplicates", string(convert.DefaultConfig().Duplicates),
		"What to do with duplicate strings (identical source text): 'msgctxt' or 'merge'")
	viper.BindPFlag("Duplicates", Ini2POCmd.Flags().Lookup("duplicates"))
	Ini2POCmd.Flags().String("dialect", inifile.DefaultDialect,
		"The dialect of the INI files: "+strings.Join(inifile.Dialects(), ", "))
	viper.BindPFlag("Dialect", Ini2POCmd.Flags().Lookup("dialect"))
	Ini2POCmd.Flags().String("progress", progressBar, "Show progress as: "+strings.Join(progressStyles, ", "))
	viper.BindPFlag("Progress", Ini2POCmd.Flags().Lookup("progress"))
	Ini2POCmd.Flags().Bool("timestamp", false, "Write the current date as POT-Creation-Date instead of a placeholder")
	viper.BindPFlag("Timestamp", Ini2POCmd.Flags().Lookup("timestamp"))

	// conversion flags given to 'config scaffold' are saved
	scaffoldCmd.Flags().AddFlagSet(Ini2POCmd.Flags())
}

func initConfig() {
	cfgFile := viper.GetString("ConfigFileName")
	if runtime.GOOS != "windows" {
		viper.AddConfigPath("/etc/ini2po")
	}
	if osUser, err := user.Current(); err == nil {
		viper.AddConfigPath(filepath.Join(osUser.HomeDir, ".ini2po"))
	}
	viper.AddConfigPath(".")
	viper.SetConfigName("ini2po")

	viper.SetEnvPrefix("INI2PO")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("No configuration file loaded", "error", err)
	}
}
