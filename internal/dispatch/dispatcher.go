// Package dispatch forwards the host's plugin callbacks to the single hosted
// plugin instance. Every call runs behind a recover boundary: failures are
// written to the host log and never propagate back across the C ABI.
package dispatch

import (
	"context"
	"errors"
	"io"
	"strconv"
	"unsafe"

	"github.com/google/uuid"

	"github.com/soyeahso/xpshim/internal/hooks"
	"github.com/soyeahso/xpshim/internal/logging"
	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/soyeahso/xpshim/internal/xplm"
)

var (
	errNoFactory = errors.New("no plugin factory registered")
	errNilPlugin = errors.New("factory returned a nil plugin")
)

// Options configure a Dispatcher. The zero value logs nowhere except the
// current host sink.
type Options struct {
	// Log receives structured lifecycle and failure events.
	Log *logging.Logger
	// Sink receives report lines. Nil means the process-wide xplm sink.
	Sink xplm.Sink
	// Echo mirrors report lines, typically os.Stderr. Nil disables it.
	Echo io.Writer
	// Hooks is notified of every transition. Nil disables notifications.
	Hooks *hooks.Manager
	// Context is passed to hook handlers. Defaults to context.Background.
	Context context.Context
}

// Dispatcher owns the plugin instance and drives its lifecycle.
// It is not safe for concurrent use; the host calls it from one thread.
type Dispatcher struct {
	kind    string
	factory plugin.Factory

	instance plugin.Plugin
	desc     plugin.Descriptor
	id       string
	state    State

	log   *logging.Logger
	sink  xplm.Sink
	echo  io.Writer
	hooks *hooks.Manager
	ctx   context.Context
}

// New returns a Dispatcher in the Unloaded state. kind names the plugin type
// in report lines.
func New(kind string, factory plugin.Factory, opts Options) *Dispatcher {
	if opts.Log == nil {
		opts.Log = logging.Nop()
	}
	if opts.Sink == nil {
		opts.Sink = xplm.SinkFunc(xplm.DebugString)
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Dispatcher{
		kind:    kind,
		factory: factory,
		log:     opts.Log.Sub("dispatch").With("kind", kind),
		sink:    opts.Sink,
		echo:    opts.Echo,
		hooks:   opts.Hooks,
		ctx:     opts.Context,
	}
}

// Kind returns the plugin type name used in diagnostics.
func (d *Dispatcher) Kind() string { return d.kind }

// State returns the current lifecycle state.
func (d *Dispatcher) State() State { return d.state }

// Instance returns the live plugin, or nil when none is loaded.
func (d *Dispatcher) Instance() plugin.Plugin { return d.instance }

// InstanceID returns the id assigned at the last successful start, or "".
func (d *Dispatcher) InstanceID() string { return d.id }

// Descriptor returns the descriptor of the live plugin.
func (d *Dispatcher) Descriptor() (plugin.Descriptor, bool) {
	return d.desc, d.instance != nil
}

// Start constructs the plugin and copies its descriptor into out. It returns
// false if construction failed; the dispatcher then holds no instance.
func (d *Dispatcher) Start(out Outputs) bool {
	if !d.state.canStart() {
		d.ignored("start")
		return false
	}

	var (
		p    plugin.Plugin
		desc plugin.Descriptor
	)
	err := guard(func() error {
		if d.factory == nil {
			return errNoFactory
		}
		var err error
		if p, err = d.factory(); err != nil {
			return err
		}
		if p == nil {
			return errNilPlugin
		}
		desc = plugin.Describe(p)
		return nil
	})
	if err != nil {
		d.report(startFailure, err)
		return false
	}

	out.fill(desc)
	d.instance = p
	d.desc = desc
	d.id = uuid.NewString()
	d.state = Started

	d.log.Info().
		Str("instance", d.id).
		Str("name", desc.Name).
		Str("signature", desc.Signature).
		Msg("plugin started")
	d.emit(hooks.EventStarted, nil)
	return true
}

// Enable calls the plugin's Enable hook. On failure the plugin stays in its
// previous state.
func (d *Dispatcher) Enable() {
	if d.instance == nil || !d.state.canEnable() {
		d.ignored("enable")
		return
	}
	if err := guard(d.instance.Enable); err != nil {
		d.report(enableFailure, err)
		return
	}
	d.state = Enabled
	d.log.Info().Str("instance", d.id).Msg("plugin enabled")
	d.emit(hooks.EventEnabled, nil)
}

// Disable calls the plugin's Disable hook. The plugin is considered disabled
// afterwards even if the hook failed.
func (d *Dispatcher) Disable() {
	if d.instance == nil || d.state != Enabled {
		d.ignored("disable")
		return
	}
	if err := guard(d.instance.Disable); err != nil {
		d.report(disableFailure, err)
	}
	d.state = Disabled
	d.log.Info().Str("instance", d.id).Msg("plugin disabled")
	d.emit(hooks.EventDisabled, nil)
}

// Stop destroys the plugin instance. It is safe to call at any time and any
// number of times.
func (d *Dispatcher) Stop() {
	if d.instance == nil {
		d.log.Debug().Str("state", d.state.String()).Msg("stop without instance")
		d.state = Stopped
		return
	}
	if err := guard(d.instance.Stop); err != nil {
		d.report(stopFailure, err)
	}

	d.state = Stopped
	d.log.Info().Str("instance", d.id).Msg("plugin stopped")
	d.emit(hooks.EventStopped, nil)
	d.instance = nil
	d.desc = plugin.Descriptor{}
	d.id = ""
}

// ReceiveMessage forwards a message to the plugin.
func (d *Dispatcher) ReceiveMessage(from xplm.PluginID, msg xplm.Message, param unsafe.Pointer) {
	if d.instance == nil {
		d.log.Debug().
			Str("from", from.String()).
			Str("message", msg.String()).
			Msg("message without instance dropped")
		return
	}
	err := guard(func() error {
		d.instance.ReceiveMessage(from, msg, param)
		return nil
	})
	if err != nil {
		d.report(messageFailure, err)
		return
	}
	d.emit(hooks.EventMessage, map[string]any{
		"from":      from.String(),
		"message":   msg.String(),
		"code":      strconv.FormatInt(int64(msg), 10),
		"simulator": msg.IsSimulator(),
	})
}

func (d *Dispatcher) ignored(op string) {
	d.log.Warn().
		Str("op", op).
		Str("state", d.state.String()).
		Bool("instance", d.instance != nil).
		Msg("callback ignored in current state")
}

// report writes the single diagnostic line for a failed callback. The sink
// gets that line and nothing else; the structured copy is debug-only.
func (d *Dispatcher) report(f failure, err error) {
	phrase, detail := f.describe(err)
	line := reportLine(d.kind, phrase, detail)

	d.sink.DebugString(line)
	if d.echo != nil {
		_, _ = io.WriteString(d.echo, line)
	}

	text := errorText(err)
	d.log.Debug().
		Str("error", text).
		Str("instance", d.id).
		Str("failure", phrase).
		Msg("plugin callback failed")
	d.emit(hooks.EventFailure, map[string]any{
		"failure": phrase,
		"error":   text,
	})
}

func (d *Dispatcher) emit(event string, extra map[string]any) {
	if d.hooks == nil || d.hooks.Count(event) == 0 {
		return
	}
	data := map[string]any{
		"kind":     d.kind,
		"instance": d.id,
		"state":    d.state.String(),
		"name":     d.desc.Name,
	}
	for k, v := range extra {
		data[k] = v
	}
	d.hooks.Emit(d.ctx, event, data)
}
