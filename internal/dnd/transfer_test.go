package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransfer(t *testing.T) {
	tr := NewTransfer()
	assert.Equal(t, EffectNone, tr.EffectAllowed())
	assert.Empty(t, tr.Types())
	assert.False(t, tr.HasType(MediaTypePlain))

	tr.SetData(MediaTypePlain, "p1")
	tr.SetData("text/uri-list", "https://example.com")
	tr.SetData(MediaTypePlain, "p2")
	tr.SetEffectAllowed(EffectMove)

	assert.Equal(t, []string{MediaTypePlain, "text/uri-list"}, tr.Types())
	assert.Equal(t, "p2", tr.GetData(MediaTypePlain))
	assert.Equal(t, "", tr.GetData("application/json"))
	assert.True(t, tr.HasType(MediaTypePlain))
	assert.Equal(t, EffectMove, tr.EffectAllowed())

	tr.ClearData()
	assert.Empty(t, tr.Types())
	assert.Equal(t, "", tr.GetData(MediaTypePlain))
}
