// Package cli implements the xpshim harness, which drives a plugin through
// the host lifecycle without the simulator.
package cli

import (
	"github.com/soyeahso/xpshim/internal/config"
	"github.com/soyeahso/xpshim/internal/example"
	"github.com/soyeahso/xpshim/internal/logging"
	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/spf13/cobra"
)

type options struct {
	cfgFile  string
	logLevel string

	// loaded in PersistentPreRunE
	cfgPath string
	log     *logging.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "xpshim",
		Short: "Host a Go plugin inside X-Plane",
		Long:  "xpshim exercises the plugin lifecycle (start, enable, messages, disable, stop) the way the simulator drives it.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfgPath = opts.cfgFile
			if opts.cfgPath == "" {
				p, err := config.ResolvePath()
				if err != nil {
					return err
				}
				opts.cfgPath = p
			}
			level := opts.logLevel
			if level == "" {
				level = "info"
			}
			opts.log = logging.New(logging.Console(cmd.ErrOrStderr()), level)
			if _, _, ok := plugin.Registered(); !ok {
				plugin.Register(example.Kind, example.New, opts.log)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default ~/.xpshim/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newDescribeCmd(opts))
	cmd.AddCommand(newSimulateCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}
