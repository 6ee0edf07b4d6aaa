package cli

import (
	"fmt"
	"io"

	"github.com/soyeahso/xpshim/internal/dispatch"
	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/soyeahso/xpshim/internal/xplm"
	"github.com/spf13/cobra"
)

func newDescribeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "describe",
		Short: "Print the descriptor the plugin reports to the host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, factory, _ := plugin.Registered()

			prev := xplm.SetSink(xplm.WriterSink{W: io.Discard})
			defer xplm.SetSink(prev)

			var failure string
			d := dispatch.New(kind, factory, dispatch.Options{
				Log:  opts.log,
				Sink: xplm.SinkFunc(func(s string) { failure = s }),
			})
			out := newOutputs()
			if !d.Start(out) {
				return fmt.Errorf("%s", trimNewline(failure))
			}
			defer d.Stop()

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Kind:        %s\n", kind)
			fmt.Fprintf(w, "Name:        %s\n", dispatch.CString(out.Name))
			fmt.Fprintf(w, "Signature:   %s\n", dispatch.CString(out.Signature))
			fmt.Fprintf(w, "Description: %s\n", dispatch.CString(out.Description))
			return nil
		},
	}
}

func newOutputs() dispatch.Outputs {
	return dispatch.Outputs{
		Name:        make([]byte, xplm.BufferSize),
		Signature:   make([]byte, xplm.BufferSize),
		Description: make([]byte, xplm.BufferSize),
	}
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}
