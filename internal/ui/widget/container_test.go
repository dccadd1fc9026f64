package widget_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/spectra/internal/ui/testutil"
	"github.com/llehouerou/spectra/internal/ui/widget"
)

// newTabs builds a container that grows twice: the spectrum is taller than
// the initial content area and the pad is wider than both.
func newTabs(t *testing.T) (*widget.Container, *widget.Spectrum, *widget.SoundPosition) {
	t.Helper()
	f := testutil.NewFace()
	c := widget.NewContainer(widget.Vec{X: 100, Y: 50}, widget.Vec{}, accent, f)
	spec := widget.NewSpectrum(widget.Vec{X: 300, Y: 200}, widget.Vec{}, barColor, f)
	pad := widget.NewSoundPosition(widget.Vec{X: 400, Y: 100}, widget.Vec{}, accent, f)
	c.AddTab("Spectrum", spec)
	c.AddTab("3D position", pad)
	require.Equal(t, 2, c.Tabs())
	return c, spec, pad
}

func TestContainer_AddTabGrows(t *testing.T) {
	c, spec, pad := newTabs(t)

	assert.Equal(t, widget.Vec{X: 400, Y: 200 + widget.TabHeight}, c.Size())
	for i := range c.Tabs() {
		assert.Equal(t, widget.Vec{X: 200, Y: widget.TabHeight}, c.Button(i).Size(), "button %d", i)
	}
	assert.Equal(t, widget.Vec{X: 0, Y: 0}, c.Button(0).Position())
	assert.Equal(t, widget.Vec{X: 200, Y: 0}, c.Button(1).Position())

	content := widget.Vec{X: 400, Y: 200}
	assert.Equal(t, content, spec.Size())
	assert.Equal(t, content, pad.Size())
	assert.Equal(t, widget.Vec{X: 0, Y: widget.TabHeight}, pad.Position())
}

func TestContainer_FirstTabIsActive(t *testing.T) {
	c, spec, _ := newTabs(t)

	assert.Equal(t, 0, c.Current())
	assert.Same(t, spec, c.CurrentWidget())
	assert.True(t, c.Button(0).Pushed())
	assert.False(t, c.Button(1).Pushed())
}

func TestContainer_ClickSwitchesTab(t *testing.T) {
	c, _, pad := newTabs(t)
	var cv testutil.Canvas
	c.Draw(&cv)

	c.Click(widget.Vec{X: 250, Y: 10})
	assert.Equal(t, 1, c.Current())
	assert.False(t, c.Button(0).Pushed())
	assert.True(t, c.Button(1).Pushed())
	assert.True(t, pad.NeedsRedraw(), "new content must be redrawn")

	c.Click(widget.Vec{X: 250, Y: 10})
	assert.Equal(t, 1, c.Current(), "clicking the active tab is a no-op")
	assert.True(t, c.Button(1).Pushed())
}

func TestContainer_ClickForwardsToContent(t *testing.T) {
	c, _, pad := newTabs(t)
	c.SelectTab(1)

	// Pad center is (200, 125) with radius 98.
	c.Click(widget.Vec{X: 249, Y: 125})
	assert.Equal(t, float32(15), pad.X())
	assert.Equal(t, 1, c.Current())
}

func TestContainer_ClickOnInactiveContentIgnored(t *testing.T) {
	c, _, pad := newTabs(t)

	c.Click(widget.Vec{X: 249, Y: 125})
	assert.Zero(t, pad.X(), "hidden tab received the click")
}

func TestContainer_DrawsOnlyActiveContent(t *testing.T) {
	c, _, _ := newTabs(t)

	var cv testutil.Canvas
	c.Draw(&cv)
	assert.Zero(t, cv.Count("stroke_circle"), "pad drawn while the spectrum is active")
	assert.Equal(t, []string{"Spectrum", "3D position"}, cv.Texts())

	c.SelectTab(1)
	cv.Reset()
	c.Draw(&cv)
	assert.Equal(t, 1, cv.Count("stroke_circle"))

	cv.Reset()
	c.Draw(&cv)
	assert.Zero(t, cv.Count(""), "second draw without changes")
	assert.False(t, c.NeedsRedraw())
}

func TestContainer_SetSize(t *testing.T) {
	c, spec, _ := newTabs(t)

	c.SetSize(widget.Vec{X: 30, Y: 300})
	assert.Equal(t, widget.Vec{X: 400, Y: 225}, c.Size(), "below minimum is rejected")

	c.SetSize(widget.Vec{X: 600, Y: 325})
	assert.Equal(t, widget.Vec{X: 600, Y: 300}, spec.Size())
	assert.Equal(t, widget.Vec{X: 300, Y: widget.TabHeight}, c.Button(1).Size())
	assert.Equal(t, widget.Vec{X: 300, Y: 0}, c.Button(1).Position())
}
