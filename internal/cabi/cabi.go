// Package cabi exports the X-Plane plugin entry points from a Go shared
// library. A c-shared main package calls Install from init and nothing else:
//
//	func init() { cabi.Install("MyPlugin", mypkg.New) }
//	func main() {}
package cabi

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/soyeahso/xpshim/internal/config"
	"github.com/soyeahso/xpshim/internal/dispatch"
	"github.com/soyeahso/xpshim/internal/hooks"
	"github.com/soyeahso/xpshim/internal/logging"
	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/soyeahso/xpshim/internal/xplm"
)

var (
	shim           *dispatch.Dispatcher
	lifecycleHooks *hooks.Manager
	log            = logging.Nop()
)

// Install registers factory as the module's plugin and prepares the
// dispatcher behind the exported entry points.
func Install(kind string, factory plugin.Factory) {
	if sink, ok := resolveHostSink(); ok {
		xplm.SetSink(sink)
	}

	cfg := loadConfig()
	log = logging.New(
		logging.Output(cfg.Logging.Output, cfg.Logging.Style, os.Stderr, xplm.Writer(nil)),
		cfg.Logging.Level,
	).With("module", kind)

	plugin.Register(kind, factory, log)

	var echo io.Writer
	if cfg.Logging.Echo() {
		echo = os.Stderr
	}
	kind, factory, _ = plugin.Registered()
	lifecycleHooks = hooks.NewManager(log)
	shim = dispatch.New(kind, factory, dispatch.Options{
		Log:   log,
		Echo:  echo,
		Hooks: lifecycleHooks,
	})
}

// Hooks returns the lifecycle hook manager, or nil before Install.
func Hooks() *hooks.Manager { return lifecycleHooks }

func loadConfig() config.Config {
	path, err := config.ResolvePath()
	if err != nil {
		return config.Defaults()
	}
	cfg, err := config.Load(path)
	if err != nil {
		xplm.DebugString(fmt.Sprintf("xpshim: %v; using defaults\n", err))
		return config.Defaults()
	}
	for _, issue := range config.Validate(&cfg) {
		xplm.DebugString(fmt.Sprintf("xpshim: config %s\n", issue))
	}
	return cfg
}

// boundary stops anything outside the dispatcher's own guards from
// unwinding into the host.
func boundary(op string) {
	if r := recover(); r != nil {
		xplm.DebugString(fmt.Sprintf("xpshim: %s panicked outside the plugin: %v\n", op, r))
	}
}

func installed(op string) bool {
	if shim == nil {
		xplm.DebugString(fmt.Sprintf("xpshim: %s called before Install\n", op))
		return false
	}
	return true
}

func start(out dispatch.Outputs) (ok bool) {
	defer boundary("XPluginStart")
	if !installed("XPluginStart") {
		return false
	}
	return shim.Start(out)
}

func stop() {
	defer boundary("XPluginStop")
	if installed("XPluginStop") {
		shim.Stop()
	}
}

func enable() {
	defer boundary("XPluginEnable")
	if installed("XPluginEnable") {
		shim.Enable()
	}
}

func disable() {
	defer boundary("XPluginDisable")
	if installed("XPluginDisable") {
		shim.Disable()
	}
}

func receive(from xplm.PluginID, msg xplm.Message, param unsafe.Pointer) {
	defer boundary("XPluginReceiveMessage")
	if installed("XPluginReceiveMessage") {
		shim.ReceiveMessage(from, msg, param)
	}
}
