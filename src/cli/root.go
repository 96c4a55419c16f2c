// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/devca/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/devca/src/logger"
)

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// app carries the state shared by every command of one invocation.
type app struct {
	hostname string
	base     logger.Logger

	configPath string
	logFormat  string
	quiet      bool

	// Set by the root PersistentPreRunE.
	log    logger.Logger
	config *Config
}

// Execute runs devca with the process arguments. log receives informational
// output in text mode; errors are returned for the caller to report.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	cmd := NewRootCmd(version, log, posix.Hostname())
	cmd.SetArgs(os.Args[1:])
	return cmd.ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. hostname is the machine name used for
// default common names and subject alternative names.
func NewRootCmd(version string, log logger.Logger, hostname string) *cobra.Command {
	if log == nil {
		log = logger.NewCLILogger()
	}
	a := &app{hostname: hostname, base: log}

	rootCmd := &cobra.Command{
		Use:   posix.GetExecutableName(),
		Short: "Issue X.509 certificates for local development",
		Long: `devca creates a self-signed root certificate and issues leaf certificates
signed by it. Each certificate is written as <name>.pem next to its
private key <name>.key.`,
		Version:           version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err}
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "JSON or YAML file with default flag values")
	flags.StringVar(&a.logFormat, "log-format", logFormatText, "log output format: text or json")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress informational output")

	rootCmd.AddCommand(
		newCACmd(a),
		newCertCmd(a),
		newInspectCmd(a),
		newVerifyCmd(a),
	)

	return rootCmd
}

// setup selects the logger and loads the config file before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	switch a.logFormat {
	case logFormatText:
		if a.quiet {
			a.log = logger.Discard{}
		} else {
			a.log = a.base
		}
	case logFormatJSON:
		a.log = logger.NewJSONLogger(cmd.OutOrStdout(), a.quiet)
	default:
		return &usageError{fmt.Errorf("unknown log format %q: use %s or %s", a.logFormat, logFormatText, logFormatJSON)}
	}

	config, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.config = config
	return nil
}

// exactArgs is cobra.ExactArgs reported as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err}
		}
		return nil
	}
}

// pick returns the flag value when it was set on the command line, else the
// config value when present, else the flag's built-in default.
func pick(cmd *cobra.Command, name, flagValue, configValue string) string {
	if cmd.Flags().Changed(name) || configValue == "" {
		return flagValue
	}
	return configValue
}

// pickBool is pick for boolean flags.
func pickBool(cmd *cobra.Command, name string, flagValue bool, configValue *bool) bool {
	if cmd.Flags().Changed(name) || configValue == nil {
		return flagValue
	}
	return *configValue
}
