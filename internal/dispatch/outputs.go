package dispatch

import (
	"unicode/utf8"

	"github.com/soyeahso/xpshim/internal/plugin"
)

// Outputs are the host-owned buffers XPluginStart fills with the descriptor.
type Outputs struct {
	Name        []byte
	Signature   []byte
	Description []byte
}

func (o Outputs) fill(d plugin.Descriptor) {
	copyCString(o.Name, d.Name)
	copyCString(o.Signature, d.Signature)
	copyCString(o.Description, d.Description)
}

// copyCString writes s into dst as a NUL-terminated string, truncating on a
// rune boundary when it does not fit.
func copyCString(dst []byte, s string) {
	if len(dst) == 0 {
		return
	}
	limit := len(dst) - 1
	if len(s) > limit {
		for limit > 0 && !utf8.RuneStart(s[limit]) {
			limit--
		}
		s = s[:limit]
	}
	n := copy(dst, s)
	dst[n] = 0
}

// CString returns the string held in a NUL-terminated buffer.
func CString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
