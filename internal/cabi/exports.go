//go:build cgo && (linux || darwin)

package cabi

// #include <stddef.h>
import "C"

import (
	"unsafe"

	"github.com/soyeahso/xpshim/internal/dispatch"
	"github.com/soyeahso/xpshim/internal/xplm"
)

//export XPluginStart
func XPluginStart(outName, outSig, outDesc *C.char) C.int {
	out := dispatch.Outputs{
		Name:        hostBuffer(outName),
		Signature:   hostBuffer(outSig),
		Description: hostBuffer(outDesc),
	}
	if start(out) {
		return 1
	}
	return 0
}

//export XPluginStop
func XPluginStop() {
	stop()
}

// XPluginEnable always reports success; a failing Enable is only logged.
//
//export XPluginEnable
func XPluginEnable() C.int {
	enable()
	return 1
}

//export XPluginDisable
func XPluginDisable() {
	disable()
}

//export XPluginReceiveMessage
func XPluginReceiveMessage(inFrom C.int, inMessage C.int, inParam unsafe.Pointer) {
	receive(xplm.PluginID(inFrom), xplm.Message(inMessage), inParam)
}

func hostBuffer(p *C.char) []byte {
	if p == nil {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), xplm.BufferSize)
}
