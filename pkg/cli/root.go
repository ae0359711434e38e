// Package cli provides the command-line interface for gomeson
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gomeson/gomeson/pkg/logger"
)

var (
	cfgFile   string
	verbosity string
	version   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gomeson",
	Short: "Backend-agnostic compile front end for meson build trees",
	Long: `gomeson dispatches compilation of a previously configured build tree
to the native build driver the tree was configured for (ninja, samu or
msbuild), translating jobs/load-average/clean options into that driver's
own flag dialect and relaying its exit status.`,

	Run: func(cmd *cobra.Command, args []string) {
		// Check if version flag is set
		if v, _ := cmd.Flags().GetBool("version"); v {
			fmt.Printf("gomeson v%s\n", version)
			return
		}
		// If no subcommand, show help
		cmd.Help()
	},
}

// Execute runs the CLI
func Execute(v string) error {
	version = v

	// Initialize the root command explicitly (avoiding init())
	initializeRootCommand()

	return rootCmd.Execute()
}

// initializeRootCommand sets up the root command and its flags.
// This replaces the init() function to make initialization explicit and testable.
func initializeRootCommand() {
	// Set up config initialization
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: gomeson.config.json)")
	rootCmd.PersistentFlags().StringVarP(&verbosity, "verbosity", "v", "info", "log level (debug, info, warn, error)")

	// Add version flag
	rootCmd.Flags().Bool("version", false, "Print version information and quit")

	// Errors surface through main with proper exit codes
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Add subcommands
	rootCmd.AddCommand(NewCompileCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func initConfig() {
	if cfgFile != "" {
		// Use config file from flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in the working directory
		viper.AddConfigPath(".")
		viper.SetConfigName("gomeson.config")
		viper.SetConfigType("json")
	}

	// Read in environment variables
	viper.SetEnvPrefix("GOMESON")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		if verbosity == "debug" {
			fmt.Println("Using config file:", viper.ConfigFileUsed())
		}
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gomeson v%s\n", version)
		},
	}
}

// console carries user-facing CLI messages; log output goes through
// the structured logger instead
var console = logger.NewConsoleLogger()
