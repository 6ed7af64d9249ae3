// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.4.0"

func main() {
	InitializeColors()
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(args []string, in io.Reader, out, errOut io.Writer) int {
	rootCmd := newRootCmd(in, out, errOut)
	rootCmd.SetArgs(args)
	return reportError(errOut, rootCmd.Execute())
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	banner := fmt.Sprintf(`Dolmetsch %s%s%s: word-for-word translation through a bilingual dictionary`, Green, version, Reset)

	var (
		configPath string
		progress   bool
	)

	// loadConfig resolves --config and --progress on top of the config file.
	loadConfig := func(cmd *cobra.Command) *Config {
		var (
			cfg *Config
			err error
		)
		if configPath != "" {
			cfg, err = LoadConfigFrom(configPath)
		} else {
			cfg, err = LoadConfig()
		}
		if err != nil {
			log.Printf("Failed to load configuration: %v. Using default settings.", err)
		}
		if cmd.Flags().Changed("progress") {
			cfg.Dictionary.ShowProgress = progress
		}
		return cfg
	}

	dictionaryArg := func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fatal(errors.New("missing dictionary path"))
		}
		return nil
	}

	var rootCmd = &cobra.Command{
		Use:           "dolmetsch <dictionary>",
		Short:         "Translate standard input word by word",
		Long:          fmt.Sprintf("%s\n\n%s", banner, "Reads text on stdin, replaces every word with its dictionary translation and writes the result to stdout."),
		Version:       version,
		Args:          cobra.MatchAll(dictionaryArg, cobra.MaximumNArgs(1)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args[0], loadConfig(cmd), in, out, errOut)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().BoolVar(&progress, "progress", false, "show a progress bar while loading the dictionary")

	var query string
	var cmdLookup = &cobra.Command{
		Use:   "lookup <dictionary> [words...]",
		Short: "Look single words up in a dictionary",
		Args:  dictionaryArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args[0], args[1:], query, loadConfig(cmd), out, errOut)
		},
	}
	cmdLookup.Flags().StringVar(&query, "query", "", "words to look up, split with shell quoting rules")

	var cmdCheck = &cobra.Command{
		Use:   "check <dictionary>",
		Short: "Validate a dictionary file and print its statistics",
		Args:  cobra.MatchAll(dictionaryArg, cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], loadConfig(cmd), out, errOut)
		},
	}

	var cmdBrowse = &cobra.Command{
		Use:   "browse <dictionary>",
		Short: "Browse a dictionary interactively by prefix",
		Args:  cobra.MatchAll(dictionaryArg, cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := openDictionary(args[0], loadConfig(cmd), errOut)
			if err != nil {
				return err
			}
			defer dict.Close()
			if err := runBrowseApp(dict); err != nil {
				return fatal(fmt.Errorf("browser failed: %w", err))
			}
			return nil
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the Dolmetsch usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file if needed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				var err error
				if path, err = getConfigPath(); err != nil {
					return fatal(fmt.Errorf("failed to get config path: %w", err))
				}
			}
			if err := displaySettings(out, path); err != nil {
				return fatal(err)
			}
			return nil
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Dolmetsch version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(out, version)
		},
	}

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.AddCommand(cmdLookup, cmdCheck, cmdBrowse, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}
