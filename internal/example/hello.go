// Package example holds a small plugin used by the harness and the
// helloplugin shared library.
package example

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/soyeahso/xpshim/internal/plugin"
	"github.com/soyeahso/xpshim/internal/xplm"
)

const (
	Kind        = "HelloPlugin"
	Name        = "Hello"
	Signature   = "org.xpshim.hello"
	Description = "Logs lifecycle events and simulator messages to Log.txt."
)

// Hello writes a line to the host log for every lifecycle event.
type Hello struct {
	plugin.Base

	enables  int
	messages int
	lastMsg  xplm.Message
	stopped  bool
}

// New is the plugin.Factory for Hello.
func New() (plugin.Plugin, error) {
	h := &Hello{Base: plugin.NewBase(Name, Signature, Description)}
	h.Debug("Hello: constructed")
	return h, nil
}

func (h *Hello) Enable() error {
	if h.stopped {
		return errors.New("enable after stop")
	}
	h.enables++
	h.Debug(fmt.Sprintf("Hello: enabled (%d)", h.enables))
	return nil
}

func (h *Hello) Disable() error {
	h.Debug("Hello: disabled")
	return nil
}

func (h *Hello) ReceiveMessage(from xplm.PluginID, msg xplm.Message, _ unsafe.Pointer) {
	h.messages++
	h.lastMsg = msg
	h.Debug(fmt.Sprintf("Hello: %s from %s", msg, from))
}

func (h *Hello) Stop() error {
	h.stopped = true
	h.Debug(fmt.Sprintf("Hello: stopped after %d messages", h.messages))
	return nil
}

// Enables returns how many times the plugin has been enabled.
func (h *Hello) Enables() int { return h.enables }

// Messages returns how many messages the plugin has received.
func (h *Hello) Messages() int { return h.messages }

// LastMessage returns the most recent message code.
func (h *Hello) LastMessage() xplm.Message { return h.lastMsg }
