package plugin

import (
	"unsafe"

	"github.com/soyeahso/xpshim/internal/xplm"
)

// Base carries the immutable descriptor and default hooks. Concrete plugins
// embed it and implement Enable, Disable and Stop themselves.
type Base struct {
	desc Descriptor
}

// NewBase returns a Base reporting the given descriptor to the host.
func NewBase(name, signature, description string) Base {
	return Base{desc: Descriptor{Name: name, Signature: signature, Description: description}}
}

func (b *Base) Name() string        { return b.desc.Name }
func (b *Base) Signature() string   { return b.desc.Signature }
func (b *Base) Description() string { return b.desc.Description }

// ReceiveMessage ignores the message.
func (b *Base) ReceiveMessage(xplm.PluginID, xplm.Message, unsafe.Pointer) {}

// Debug writes message to the host log. A newline is appended.
func (b *Base) Debug(message string) {
	xplm.DebugString(message + "\n")
}
