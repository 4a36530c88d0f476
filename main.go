// Copyright 2017 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package main

import (
	"os"

	"github.com/hexya-erp/ini2po/cmd"
)

func main() {
	if err := cmd.Ini2POCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
