package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reoring/itksn/i18n"
	"github.com/reoring/itksn/internal/version"
	"github.com/reoring/itksn/serial"
)

// debugEnv turns on debug logging when set to any non-empty value.
const debugEnv = "ITKSN_DEBUG"

// globals holds the state shared by every subcommand.
type globals struct {
	verbose bool
	lang    string

	log    *slog.Logger
	parser *serial.Parser
}

func addGlobalFlags(f *pflag.FlagSet, g *globals) {
	f.BoolVarP(&g.verbose, "verbose", "v", false, "log registry lookups and failures (also $"+debugEnv+")")
	f.StringVar(&g.lang, "lang", "en", "language of issue messages: en or ja")
}

func newRootCmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:   "itksn",
		Short: "itksn decodes ITk production database serial numbers",
		Long: `itksn decodes ITk serial numbers into their fields, writes them back
and lists the component codes known per pixel sub-area.
`,
		Version:       version.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv(debugEnv) != "" {
				g.verbose = true
			}
			i18n.SetLanguage(g.lang)
			g.log = newLogger(cmd.ErrOrStderr(), g.verbose).With("command", cmd.Name())
			g.parser = serial.NewParser(serial.WithLogger(g.log))
			return nil
		},
	}
	cmd.SetVersionTemplate("itksn version {{.Version}}\n")
	addGlobalFlags(cmd.PersistentFlags(), g)

	cmd.AddCommand(
		newParseCmd(g),
		newEncodeCmd(g),
		newComponentsCmd(g),
		newCheckCmd(g),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "print the itksn version and build settings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version.Print(cmd.OutOrStdout())
		},
	}
}
