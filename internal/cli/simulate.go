package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"sort"
	"strings"
	"unsafe"

	"github.com/soyeahso/xpshim/internal/dispatch"
	"github.com/soyeahso/xpshim/internal/hooks"
	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/soyeahso/xpshim/internal/xplm"
	"github.com/spf13/cobra"
	"github.com/tillberg/autorestart"
)

// restartOnChange re-executes the process when its binary changes on disk.
var restartOnChange = autorestart.RestartOnChange

var faultHooks = []string{"construct", "enable", "disable", "message", "stop"}

func newSimulateCmd(opts *options) *cobra.Command {
	var (
		messages []string
		cycles   int
		fault    string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drive the plugin through a full host lifecycle",
		Long: "simulate starts the plugin, enables it, delivers messages, toggles it\n" +
			"disabled and enabled --cycles times, then disables and stops it.\n" +
			"Host log lines are prefixed with \"log\", hook events with \"hook\".\n" +
			"With --watch it then waits, rerunning whenever the binary is rebuilt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := make([]xplm.Message, 0, len(messages))
			for _, m := range messages {
				code, err := xplm.ParseMessage(strings.TrimSpace(m))
				if err != nil {
					return fmt.Errorf("invalid message %q", m)
				}
				codes = append(codes, code)
			}
			if fault != "" && !slices.Contains(faultHooks, fault) {
				return fmt.Errorf("--fail must be one of %v", faultHooks)
			}

			w := cmd.OutOrStdout()
			prev := xplm.SetSink(xplm.SinkFunc(func(s string) {
				fmt.Fprintf(w, "log   | %s", s)
			}))
			defer xplm.SetSink(prev)

			kind, factory, _ := plugin.Registered()
			if fault != "" {
				factory = faulty(factory, fault)
			}

			hm := hooks.NewManager(opts.log)
			hm.OnAll("simulate", func(_ context.Context, p hooks.Payload) error {
				printEvent(w, p)
				return nil
			})

			d := dispatch.New(kind, factory, dispatch.Options{Log: opts.log, Hooks: hm})
			if !d.Start(newOutputs()) {
				fmt.Fprintf(w, "start failed; plugin left %s\n", d.State())
				return nil
			}
			d.Enable()
			for _, code := range codes {
				d.ReceiveMessage(xplm.XPlaneID, code, nil)
			}
			for i := 0; i < cycles; i++ {
				d.Disable()
				d.Enable()
			}
			d.Disable()
			d.Stop()
			fmt.Fprintf(w, "final state: %s\n", d.State())

			if watch {
				waitForRebuild(cmd.Context(), w)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&messages, "messages", []string{"XPLM_MSG_PLANE_LOADED", "XPLM_MSG_AIRPORT_LOADED"}, "messages to deliver (SDK names or codes)")
	cmd.Flags().IntVar(&cycles, "cycles", 1, "disable/enable cycles after the messages")
	cmd.Flags().StringVar(&fault, "fail", "", "inject a panic into one hook ("+strings.Join(faultHooks, ", ")+")")
	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and rerun when the xpshim binary is rebuilt")

	return cmd
}

// waitForRebuild blocks until interrupted. A rebuild of the binary restarts
// the process with the same arguments, which reruns the simulation.
func waitForRebuild(ctx context.Context, w io.Writer) {
	fmt.Fprintln(w, "watching for rebuilds; interrupt to exit")
	go restartOnChange()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	<-ctx.Done()
}

func printEvent(w io.Writer, p hooks.Payload) {
	keys := make([]string, 0, len(p.Data))
	for k := range p.Data {
		if k == "instance" || k == "kind" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "hook  | %-8s", p.Event)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, p.Data[k])
	}
	fmt.Fprintln(w, b.String())
}

// faultyPlugin panics in one chosen hook and otherwise delegates.
type faultyPlugin struct {
	plugin.Plugin
	hook string
}

func faulty(next plugin.Factory, hook string) plugin.Factory {
	return func() (plugin.Plugin, error) {
		if hook == "construct" {
			panic("injected fault in constructor")
		}
		p, err := next()
		if err != nil || p == nil {
			return p, err
		}
		return &faultyPlugin{Plugin: p, hook: hook}, nil
	}
}

func (f *faultyPlugin) trip(hook string) {
	if f.hook == hook {
		panic("injected fault in " + hook)
	}
}

func (f *faultyPlugin) Enable() error {
	f.trip("enable")
	return f.Plugin.Enable()
}

func (f *faultyPlugin) Disable() error {
	f.trip("disable")
	return f.Plugin.Disable()
}

func (f *faultyPlugin) ReceiveMessage(from xplm.PluginID, msg xplm.Message, param unsafe.Pointer) {
	f.trip("message")
	f.Plugin.ReceiveMessage(from, msg, param)
}

func (f *faultyPlugin) Stop() error {
	f.trip("stop")
	return f.Plugin.Stop()
}
