// Command helloplugin builds the Hello example as an X-Plane plugin:
//
//	go build -buildmode=c-shared -o Hello/64/lin.xpl ./cmd/helloplugin
package main

import (
	"github.com/soyeahso/xpshim/internal/cabi"
	"github.com/soyeahso/xpshim/internal/example"
)

func init() {
	cabi.Install(example.Kind, example.New)
}

func main() {}
