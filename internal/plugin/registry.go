package plugin

import (
	"sync"

	"github.com/soyeahso/xpshim/internal/logging"
)

// A loaded module hosts exactly one plugin, so the registry is a single slot.
var (
	mu         sync.RWMutex
	registered struct {
		kind    string
		factory Factory
	}
)

// Register installs the factory for this module. kind names the plugin type
// in diagnostics. Registering again replaces the previous factory.
func Register(kind string, f Factory, log *logging.Logger) {
	mu.Lock()
	defer mu.Unlock()

	if log == nil {
		log = logging.Nop()
	}
	if registered.factory != nil {
		log.Warn().
			Str("previous", registered.kind).
			Str("kind", kind).
			Msg("plugin factory replaced")
	}
	registered.kind = kind
	registered.factory = f
	log.Debug().Str("kind", kind).Msg("plugin factory registered")
}

// Registered returns the installed factory, if any.
func Registered() (string, Factory, bool) {
	mu.RLock()
	defer mu.RUnlock()
	return registered.kind, registered.factory, registered.factory != nil
}

// Reset clears the slot.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registered.kind = ""
	registered.factory = nil
}
