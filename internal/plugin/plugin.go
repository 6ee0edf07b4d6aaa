// Package plugin defines the contract a concrete X-Plane plugin implements
// and the embeddable Base that supplies its descriptor.
package plugin

import (
	"unsafe"

	"github.com/soyeahso/xpshim/internal/xplm"
)

// Plugin is the interface every hosted plugin implements. The dispatcher owns
// the single instance and calls these methods serially from the host thread.
type Plugin interface {
	// Name is shown in the host's plugin admin.
	Name() string

	// Signature is the unique reverse-DNS id, e.g. "org.example.myplugin".
	Signature() string

	// Description is shown in the host's plugin admin.
	Description() string

	// Enable is called once after start and again whenever the user
	// re-enables the plugin. Return an error if the plugin cannot be enabled;
	// it is reported to the host log.
	Enable() error

	// Disable is called when the host is about to disable the plugin.
	Disable() error

	// ReceiveMessage is called when another plugin or the simulator sends a
	// message. param is owned by the sender and only valid for the call.
	ReceiveMessage(from xplm.PluginID, msg xplm.Message, param unsafe.Pointer)

	// Stop releases the plugin's resources. The instance is discarded after
	// it returns.
	Stop() error
}

// Factory constructs the plugin instance when the host starts the module.
type Factory func() (Plugin, error)

// Descriptor is the name/signature/description triple reported to the host.
type Descriptor struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Description string `json:"description"`
}

// Describe returns the descriptor of p.
func Describe(p Plugin) Descriptor {
	return Descriptor{
		Name:        p.Name(),
		Signature:   p.Signature(),
		Description: p.Description(),
	}
}
