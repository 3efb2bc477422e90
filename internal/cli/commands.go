package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// CommandType represents the type of CLI command
type CommandType int

const (
	CommandServe CommandType = iota
	CommandVersion
	CommandHelp
)

// Options contains the parsed command-line arguments
type Options struct {
	Type       CommandType
	ConfigPath string
	// Port overrides server.port when non-zero.
	Port int
}

// Parse parses command-line args and returns an Options struct
func Parse(args []string) (*Options, error) {
	result := &Options{Type: CommandServe}

	root := buildRootCommand(result)
	root.AddCommand(
		buildServeCommand(result),
		buildVersionCommand(result),
	)

	root.SetArgs(args)

	if err := root.Execute(); err != nil {
		return nil, err
	}

	if result.Port < 0 || result.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", result.Port)
	}

	return result, nil
}

// buildRootCommand creates the root cobra command
func buildRootCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api-server",
		Short: "Restaurant Finder API",
		Long: `Restaurant Finder API proxies restaurant discovery requests to the
Google Places and Geocoding services and keeps an in-memory list of liked places.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandServe
		},
	}

	cmd.PersistentFlags().StringVarP(&result.ConfigPath, "config", "c", "", "Path to a config file (defaults to configs/config.yaml)")

	cmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		result.Type = CommandHelp
	})

	return cmd
}

// buildServeCommand creates the serve subcommand
func buildServeCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandServe
		},
	}

	cmd.Flags().IntVarP(&result.Port, "port", "p", 0, "Listen port (overrides server.port)")

	return cmd
}

// buildVersionCommand creates the version subcommand
func buildVersionCommand(result *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			result.Type = CommandVersion
		},
	}

	return cmd
}

// Usage is printed for CommandHelp.
const Usage = `Usage:
  api-server [command] [flags]

Commands:
  serve      Start the HTTP server (default)
  version    Show version information

Flags:
  -c, --config string   Path to a config file
  -p, --port int        Listen port (serve only)
  -h, --help            Show this help
`
