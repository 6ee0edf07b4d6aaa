package example

import (
	"bytes"
	"testing"

	"github.com/soyeahso/xpshim/internal/dispatch"
	"github.com/soyeahso/xpshim/internal/xplm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureHostLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := xplm.SetSink(xplm.WriterSink{W: &buf})
	t.Cleanup(func() { xplm.SetSink(prev) })
	return &buf
}

func TestHello_Descriptor(t *testing.T) {
	captureHostLog(t)
	p, err := New()
	require.NoError(t, err)
	assert.Equal(t, Name, p.Name())
	assert.Equal(t, Signature, p.Signature())
	assert.Equal(t, Description, p.Description())
}

func TestHello_Lifecycle(t *testing.T) {
	log := captureHostLog(t)

	d := dispatch.New(Kind, New, dispatch.Options{})
	out := dispatch.Outputs{
		Name:        make([]byte, xplm.BufferSize),
		Signature:   make([]byte, xplm.BufferSize),
		Description: make([]byte, xplm.BufferSize),
	}
	require.True(t, d.Start(out))
	assert.Equal(t, Signature, dispatch.CString(out.Signature))

	d.Enable()
	d.ReceiveMessage(xplm.XPlaneID, xplm.MsgPlaneLoaded, nil)
	d.ReceiveMessage(xplm.XPlaneID, xplm.MsgSceneryLoaded, nil)
	d.Disable()
	d.Enable()

	h := d.Instance().(*Hello)
	assert.Equal(t, 2, h.Enables())
	assert.Equal(t, 2, h.Messages())
	assert.Equal(t, xplm.MsgSceneryLoaded, h.LastMessage())

	d.Disable()
	d.Stop()

	assert.Equal(t, ""+
		"Hello: constructed\n"+
		"Hello: enabled (1)\n"+
		"Hello: XPLM_MSG_PLANE_LOADED from x-plane\n"+
		"Hello: XPLM_MSG_SCENERY_LOADED from x-plane\n"+
		"Hello: disabled\n"+
		"Hello: enabled (2)\n"+
		"Hello: disabled\n"+
		"Hello: stopped after 2 messages\n", log.String())
}

func TestHello_EnableAfterStop(t *testing.T) {
	captureHostLog(t)
	p, _ := New()
	require.NoError(t, p.Stop())
	assert.EqualError(t, p.Enable(), "enable after stop")
}
