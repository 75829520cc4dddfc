// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"image/color"
	"testing"

	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/BiBongNet/alloy-ui/config"
	"github.com/BiBongNet/alloy-ui/events"
	"github.com/BiBongNet/alloy-ui/styles"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSettled checks that the alpha controls of the palette agree
// with one another and with the given alpha.
func assertSettled(t *testing.T, p *HSVAPalette, alpha int) {
	t.Helper()
	assert.Equal(t, float64(colors.MaxAlpha-alpha), p.AlphaSlider.Value(), "alpha slider")
	if f := p.Field(TypeAlpha); f != nil {
		assert.Equal(t, colors.MaxAlpha, int(p.AlphaSlider.Value())+f.Int(), "alpha slider + alpha field")
	}
	assert.Equal(t, colors.AlphaHex(alpha), p.Hex()[6:], "hex alpha digits")
	assert.InDelta(t, float64(alpha)/colors.MaxAlpha, p.Opacity(), 1e-9, "opacity")
}

func TestNewHSVAPalette(t *testing.T) {
	p := NewHSVAPalette(nil)
	assert.Equal(t, "hsva-palette", p.Name())
	assert.Equal(t, "alloy-hsv-container alloy-hsv-container-alpha", p.ContainerClassName())
	assert.Equal(t, 8, p.Field(TypeHex).MaxLength)

	var labels []string
	for _, f := range p.Fields() {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{"H", "S", "V", "R", "G", "B", "Hex", "A"}, labels)

	zero := 0.0
	want := State{
		Name:  "hsva-palette",
		Color: "hsva(0, 100%, 100%, 255)",
		Hex:   "ff0000ff",
		Fields: map[string]string{
			"hue": "0", "saturation": "100", "value": "100",
			"red": "255", "green": "0", "blue": "0",
			"hex": "ff0000ff", "alpha": "255",
		},
		Thumb:                 [2]float64{-7, -7},
		Preview:               "background-color: #ff0000; opacity: 1;",
		ValueSlider:           0,
		ValueSliderBackground: "#ff0000",
		AlphaSlider:           &zero,
		AlphaSliderBackground: "#ff0000",
	}
	if diff := cmp.Diff(want, p.State()); diff != "" {
		t.Errorf("State() mismatch (-want +got):\n%s", diff)
	}
	assertSettled(t, p, 255)
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, p.NRGBA())
}

func TestHSVAPaletteInitialAlpha(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "00ff0080"
	p := NewHSVAPalette(cfg)
	assert.Equal(t, "00ff0080", p.Hex())
	assert.Equal(t, 127.0, p.AlphaSlider.Value())
	assert.Equal(t, "128", p.Field(TypeAlpha).Value)
	assertSettled(t, p, 128)
	assert.Equal(t, colors.HSVA{H: 120, S: 100, V: 100, A: 128}, p.HSV())
}

func TestHSVAPaletteAlphaSlider(t *testing.T) {
	p := NewHSVAPalette(nil)

	assert.True(t, p.AlphaSlider.SetValue(255, events.SourceUser))
	assert.Equal(t, 0.0, p.Opacity())
	assert.Equal(t, "ff000000", p.Hex())
	assert.Equal(t, "0", p.Field(TypeAlpha).Value)
	assertSettled(t, p, 0)

	assert.True(t, p.AlphaSlider.SetValue(0, events.SourceUser))
	assert.Equal(t, 1.0, p.Opacity())
	assert.Equal(t, "ff0000ff", p.Hex())
	assertSettled(t, p, 255)

	p.SetAlpha(127)
	assert.Equal(t, 128.0, p.AlphaSlider.Value())
	assert.Equal(t, "ff00007f", p.Hex())
	assertSettled(t, p, 127)

	// alpha changes leave the color untouched
	assert.Equal(t, "255", p.Field(TypeRed).Value)
	assert.Equal(t, "0", p.Field(TypeGreen).Value)
	assert.Equal(t, "#ff0000", p.ResultView.Style(styles.BackgroundColor))
}

func TestHSVAPaletteAlphaSliderDrag(t *testing.T) {
	p := NewHSVAPalette(nil)
	p.AlphaSlider.DragTo(90)
	assert.Equal(t, 128.0, p.AlphaSlider.Value())
	assertSettled(t, p, 127)

	p.AlphaSlider.DragTo(1000)
	assertSettled(t, p, 0)
}

func TestHSVAPaletteAlphaSliderUI(t *testing.T) {
	p := NewHSVAPalette(nil)
	p.AlphaSlider.SetValue(100, events.SourceUI)
	assert.Equal(t, "ff0000ff", p.Hex())
	assert.Equal(t, "255", p.Field(TypeAlpha).Value)
	assert.Equal(t, 1.0, p.Opacity())
}

func TestHSVAPaletteInputHex(t *testing.T) {
	p := NewHSVAPalette(nil)
	var got []*events.Event
	p.On(events.HexInputChange, func(ev *events.Event) {
		got = append(got, ev)
	})

	require.NoError(t, p.Input(TypeHex, "00ff0080"))
	assert.Equal(t, "00ff0080", p.Hex())
	assert.Equal(t, "128", p.Field(TypeAlpha).Value)
	assert.Equal(t, "120", p.Field(TypeHue).Value)
	assert.Equal(t, "#00ff00", p.AlphaSliderContainer.Style(styles.BackgroundColor))
	assertSettled(t, p, 128)

	require.Len(t, got, 1)
	assert.Equal(t, events.SourceUser, got[0].Source())
	assert.Equal(t, "00ff0080", got[0].Hex)

	tests := []struct {
		in, hex string
		alpha   int
	}{
		{"f0a", "f0afffff", 255},
		{"ff00aa", "ff00aaff", 255},
		{"FF00AA00", "ff00aa00", 0},
		{"0000ff01", "0000ff01", 1},
	}
	for _, test := range tests {
		require.NoError(t, p.Input(TypeHex, test.in), test.in)
		assert.Equal(t, test.hex, p.Hex(), test.in)
		assertSettled(t, p, test.alpha)
	}

	for _, text := range []string{"ffff", "fffffff", "ff00aa0", "xyz"} {
		err := p.Input(TypeHex, text)
		assert.ErrorIs(t, err, ErrInvalidInput, text)
		assert.ErrorIs(t, err, colors.ErrInvalidHex, text)
		assert.True(t, p.Field(TypeHex).Invalid, text)
	}
	assert.Equal(t, "0000ff01", p.Hex())
	assertSettled(t, p, 1)
}

func TestHSVAPaletteInputAlpha(t *testing.T) {
	p := NewHSVAPalette(nil)
	require.NoError(t, p.Input(TypeAlpha, "64"))
	assert.Equal(t, 191.0, p.AlphaSlider.Value())
	assert.Equal(t, "ff000040", p.Hex())
	assertSettled(t, p, 64)

	require.NoError(t, p.Input(TypeAlpha, "0"))
	assert.Equal(t, "ff000000", p.Hex())
	assertSettled(t, p, 0)

	for _, text := range []string{"256", "-1", "a", "1000"} {
		err := p.Input(TypeAlpha, text)
		assert.ErrorIs(t, err, ErrInvalidInput, text)
	}
	assertSettled(t, p, 0)
}

func TestHSVAPaletteListenersSeeSettledState(t *testing.T) {
	type snapshot struct {
		hex, evHex string
		slider     float64
		alpha      string
		opacity    float64
	}
	p := NewHSVAPalette(nil)
	take := func(ev *events.Event) snapshot {
		return snapshot{
			hex:     p.Hex(),
			evHex:   ev.Hex,
			slider:  p.AlphaSlider.Value(),
			alpha:   p.Field(TypeAlpha).Value,
			opacity: p.Opacity(),
		}
	}
	var alphaSnap, hexSnap []snapshot
	p.On(events.HSVAInputChange, func(ev *events.Event) { alphaSnap = append(alphaSnap, take(ev)) })
	p.On(events.HexInputChange, func(ev *events.Event) { hexSnap = append(hexSnap, take(ev)) })

	require.NoError(t, p.Input(TypeAlpha, "64"))
	require.Len(t, alphaSnap, 1)
	assert.Equal(t, snapshot{"ff000040", "ff000040", 191, "64", 64.0 / 255}, alphaSnap[0])

	require.NoError(t, p.Input(TypeHex, "00ff0080"))
	require.Len(t, hexSnap, 1)
	assert.Equal(t, snapshot{"00ff0080", "00ff0080", 127, "128", 128.0 / 255}, hexSnap[0])

	// a listener that marks the event handled does not stop the palette settling
	p.On(events.HSVAInputChange, func(ev *events.Event) { ev.SetHandled() })
	require.NoError(t, p.Input(TypeAlpha, "10"))
	assertSettled(t, p, 10)
	assert.Len(t, alphaSnap, 1)
}

func TestHSVAPaletteInputHSVKeepsAlpha(t *testing.T) {
	p := NewHSVAPalette(nil)
	p.SetAlpha(64)

	require.NoError(t, p.Input(TypeHue, "120"))
	assert.Equal(t, "00ff0040", p.Hex())
	assert.Equal(t, "#00ff00", p.AlphaSliderContainer.Style(styles.BackgroundColor))
	assertSettled(t, p, 64)

	require.NoError(t, p.Input(TypeBlue, "255"))
	assert.Equal(t, "00ffff40", p.Hex())
	assertSettled(t, p, 64)
}

func TestHSVAPaletteMoveThumb(t *testing.T) {
	p := NewHSVAPalette(nil)
	p.SetAlpha(200)

	p.MoveThumb(90, 90)
	assert.Equal(t, "80ffffc8", p.Hex())
	assert.Equal(t, "#80ffff", p.AlphaSliderContainer.Style(styles.BackgroundColor))
	assertSettled(t, p, 200)

	// the hue 360 corner keeps the alpha of the palette
	p.MoveThumb(180, 0)
	assert.Equal(t, "ff0000c8", p.Hex())
	assertSettled(t, p, 200)

	p.MoveThumb(0, 0)
	p.SetValueSlider(50)
	assert.Equal(t, "800000c8", p.Hex())
	assertSettled(t, p, 200)
}

func TestHSVAPaletteMoveThumbToFromAlphaSlider(t *testing.T) {
	p := NewHSVAPalette(nil)
	p.SetOrigin(100, 50)
	p.AlphaSlider.Start(events.SourceUser)
	p.MoveThumbTo(190, 140)
	assert.Equal(t, "180", p.Field(TypeHue).Value)
	assert.Equal(t, "50", p.Field(TypeSaturation).Value)
}

func TestHSVAPaletteSetColor(t *testing.T) {
	p := NewHSVAPalette(nil)
	var src events.Sources = -1
	p.On(events.HexInputChange, func(ev *events.Event) { src = ev.Source() })

	require.NoError(t, p.SetColor("rgba(0, 0, 255, 10)"))
	assert.Equal(t, "0000ff0a", p.Hex())
	assert.Equal(t, events.SourceUI, src)
	assertSettled(t, p, 10)

	require.NoError(t, p.SetColor("hsva(120, 100%, 100%, 128)"))
	assert.Equal(t, "00ff0080", p.Hex())
	assertSettled(t, p, 128)
}

func TestHSVAPaletteNoControls(t *testing.T) {
	cfg := config.Default()
	cfg.Controls = false
	p := NewHSVAPalette(cfg)
	require.Len(t, p.Fields(), 1)
	assert.Nil(t, p.Field(TypeAlpha))

	p.SetAlpha(51)
	assert.Equal(t, "ff000033", p.Hex())
	assertSettled(t, p, 51)

	require.NoError(t, p.Input(TypeHex, "00ff0080"))
	assertSettled(t, p, 128)

	assert.ErrorIs(t, p.Input(TypeAlpha, "1"), ErrUnknownField)
}

func TestHSVAPaletteMarkup(t *testing.T) {
	cfg := config.Default()
	cfg.ClassPrefix = "cp"
	m := NewHSVAPalette(cfg).Markup()
	assert.Equal(t, `<span class="cp-hsv-alpha-canvas"></span>`, m.AlphaCanvas)
	assert.Equal(t, `<div class="cp-hsv-alpha-slider-container"></div>`, m.AlphaSliderContainer)
	assert.Equal(t, `<span class="cp-hsv-alpha-thumb"><span class="cp-hsv-alpha-image"></span></span>`, m.AlphaThumb)
}
