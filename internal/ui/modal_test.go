package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qrpanels/internal/panel"
)

func TestMessageModal_Dismiss(t *testing.T) {
	m := NewMessageModal(panel.SeverityWarning, panel.TitleInputRequired, panel.MsgInputRequired)
	assert.Nil(t, m.Init())

	for _, k := range []string{"esc", "enter"} {
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, DismissModalMsg{}, cmd())
	}
	_, cmd := m.Update(keyMsg("x"))
	assert.Nil(t, cmd)

	out := m.View()
	assert.Contains(t, out, panel.TitleInputRequired)
	assert.Contains(t, out, panel.MsgInputRequired)
}

func TestSaveModal_DefaultFilename(t *testing.T) {
	m := NewSaveModal("panel-2", "QR code 2", "qrcode.png")
	assert.Equal(t, "qrcode.png", m.Path())
	assert.Contains(t, m.View(), "Save QR code 2")

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, SaveMsg{PanelID: "panel-2", Path: "qrcode.png"}, cmd())
}

func TestSaveModal_EditAndCancel(t *testing.T) {
	m := NewSaveModal("panel-1", "QR code 1", "qrcode.png")
	m.Update(keyMsg("x"))
	assert.Equal(t, "qrcode.pngx", m.Path())

	_, cmd := m.Update(keyMsg("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, DismissModalMsg{}, cmd())
}
