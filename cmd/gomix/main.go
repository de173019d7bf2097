// Command gomix is the GoMix-K interpreter's CLI entrypoint: the teacher's
// main/main.go flag-sniffing dispatch rebuilt on spf13/cobra, the CLI
// framework the rest of the pack reaches for (DataDog-datadog-agent's
// comp/cli components). Bare invocation starts the REPL; a file argument
// runs a script; --debug routes klog's SugaredLogger to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gomix-k/gomix-k/config"
	"github.com/gomix-k/gomix-k/eval"
	"github.com/gomix-k/gomix-k/klog"
	"github.com/gomix-k/gomix-k/repl"
)

const (
	version = "v1.0.0"
	author  = "gomix-k contributors"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	banner  = `
   ____       __  __ _      __ __
  / ___| ___ |  \/  (_)_  _|  \/  | _ _ __
 | |  _ / _ \| |\/| | \ \/ / |\/| |/ /| '_ \
 | |_| | (_) | |  | | |>  <| |  | <  _| |_) |
  \____|\___/|_|  |_|_/_/\_\_|  |_|\_(_) .__/
                                       |_|
`
)

var (
	debugFlag bool
	redColor  = color.New(color.FgRed)
)

func main() {
	root := &cobra.Command{
		Use:     "gomix [script]",
		Short:   "GoMix-K is an interpreter for a K/APL-family array language",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE:    run,
	}
	root.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable verbose structured logging")
	root.AddCommand(serverCmd())

	if err := root.Execute(); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := klog.New(debugFlag || cfg.Debug)
	defer logger.Sync()

	if len(args) == 1 {
		logger.Debugw("running script", "path", args[0])
		evaluator := eval.NewEvaluator()
		return repl.RunFile(args[0], os.Stdout, evaluator)
	}

	logger.Debug("starting REPL")
	r := repl.NewRepl(banner, version, author, line, license, cfg.Prompt)
	r.Start(os.Stdin, os.Stdout)
	return nil
}

func serverCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start a REPL server accepting TCP connections",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger := klog.New(debugFlag || cfg.Debug)
			defer logger.Sync()
			return startServer(port, cfg, logger)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "8080", "TCP port to listen on")
	return cmd
}
