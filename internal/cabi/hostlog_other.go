//go:build !cgo || !(linux || darwin)

package cabi

import "github.com/soyeahso/xpshim/internal/xplm"

func resolveHostSink() (xplm.Sink, bool) { return nil, false }
