/*
Copyright © 2021 THE RULESCAN AUTHORS

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"rulescan/version"

	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var banner = "\n" +
	"              _                                 \n" +
	" _ __  _   _ | |  ___  ___   ___   __ _  _ __  \n" +
	"| '__|| | | || | / _ \\/ __| / __| / _` || '_ \\ \n" +
	"| |   | |_| || ||  __/\\__ \\| (__ | (_| || | | |\n" +
	"|_|    \\__,_||_| \\___||___/ \\___| \\__,_||_| |_|\n"

var cfgFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rulescan",
	Short: "Search Suricata rule files for service names in the msg field",
	Long: ansi.Color(banner, "cyan") + `
rulescan scans a Suricata rule file line by line and reports every rule
whose msg field contains the given service name, case-insensitively.
Matches go to the console log or to an append-only output file, and can
optionally be archived to a postgres inventory.`,
	Version: version.RootCmdVersion,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return readConfig()
	},
	RunE: RunScan,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional)")

	RootCmd.Flags().StringP("input", "i", "", "path to the input Suricata rule file")
	RootCmd.Flags().StringP("output", "o", "", "path to the output file for matched rules (console log when unset)")
	RootCmd.Flags().StringP("service", "s", "", "service name to search for in the 'msg' field")
	RootCmd.Flags().IntP("workers", "t", 4, "number of scan workers")
	RootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	RootCmd.Flags().Bool("archive", false, "archive matched rules to postgres")

	viper.BindPFlag("input_file", RootCmd.Flags().Lookup("input"))
	viper.BindPFlag("output_file", RootCmd.Flags().Lookup("output"))
	viper.BindPFlag("service_name", RootCmd.Flags().Lookup("service"))
	viper.BindPFlag("workers", RootCmd.Flags().Lookup("workers"))
	viper.BindPFlag("log_level", RootCmd.Flags().Lookup("log-level"))
	viper.BindPFlag("archive", RootCmd.Flags().Lookup("archive"))
}

// readConfig reads in config file and ENV variables if set.
func readConfig() error {
	viper.AutomaticEnv() // read in environment variables that match

	if cfgFile == "" {
		return nil
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	var cfgVersionOnDisk = viper.GetInt("config_version")
	if cfgVersionOnDisk != version.CfgVersion {
		return errors.New("Cannot use the given config file as it does not match rulescan's cfgversion. Wanted " + strconv.Itoa(version.CfgVersion) + " but found " + strconv.Itoa(cfgVersionOnDisk))
	}
	return nil
}
