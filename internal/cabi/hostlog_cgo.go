//go:build cgo && (linux || darwin)

package cabi

/*
#cgo linux LDFLAGS: -ldl
#define _GNU_SOURCE
#include <dlfcn.h>
#include <stdlib.h>

#ifndef RTLD_DEFAULT
#define RTLD_DEFAULT ((void *) 0)
#endif

typedef void (*xpshim_debug_string_fn)(const char *);

static xpshim_debug_string_fn xpshim_debug_string;

// XPLMDebugString is looked up at run time so the library links without the
// SDK import library; the host has already loaded XPLM when it loads us.
static int xpshim_resolve_debug_string(void) {
	xpshim_debug_string = (xpshim_debug_string_fn)dlsym(RTLD_DEFAULT, "XPLMDebugString");
	return xpshim_debug_string != NULL;
}

static void xpshim_call_debug_string(const char *s) {
	if (xpshim_debug_string != NULL) {
		xpshim_debug_string(s);
	}
}
*/
import "C"

import (
	"unsafe"

	"github.com/soyeahso/xpshim/internal/xplm"
)

type hostSink struct{}

func (hostSink) DebugString(s string) {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	C.xpshim_call_debug_string(cs)
}

func resolveHostSink() (xplm.Sink, bool) {
	if C.xpshim_resolve_debug_string() == 0 {
		return nil, false
	}
	return hostSink{}, true
}
