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

func TestNewHSVPalette(t *testing.T) {
	p := NewHSVPalette(nil)
	assert.Equal(t, "hsv-palette", p.Name())
	assert.Equal(t, "alloy-hsv-container", p.ContainerClassName())

	want := State{
		Name:  "hsv-palette",
		Color: "hsva(0, 100%, 100%, 255)",
		Hex:   "ff0000",
		Fields: map[string]string{
			"hue": "0", "saturation": "100", "value": "100",
			"red": "255", "green": "0", "blue": "0",
			"hex": "ff0000",
		},
		Thumb:                 [2]float64{-7, -7},
		Preview:               "background-color: #ff0000;",
		ValueSlider:           0,
		ValueSliderBackground: "#ff0000",
	}
	if diff := cmp.Diff(want, p.State()); diff != "" {
		t.Errorf("State() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, p.NRGBA())
}

func TestHSVPaletteConfigCopied(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "0000ff"
	cfg.ClassPrefix = "my"
	p := NewHSVPalette(cfg)

	cfg.Width = 1
	cfg.Strings.H = "Hue"
	assert.Equal(t, 180.0, p.Config.Width)
	assert.Equal(t, "H", p.Config.Strings.H)
	assert.Equal(t, "my-hsv-container", p.ContainerClassName())
	assert.Equal(t, "my-hsv-hs-thumb", p.Thumb.Class)
	assert.Equal(t, "0000ff", p.Hex())
	assert.Equal(t, "240", p.Field(TypeHue).Value)
}

func TestHSVPaletteInvalidInitialColor(t *testing.T) {
	cfg := config.Default()
	cfg.Color = "not a color"
	p := NewHSVPalette(cfg)
	assert.Equal(t, "ff0000", p.Hex())
}

func TestHSVPaletteFields(t *testing.T) {
	p := NewHSVPalette(nil)
	var labels []string
	for _, f := range p.Fields() {
		labels = append(labels, f.Label)
	}
	assert.Equal(t, []string{"H", "S", "V", "R", "G", "B", "Hex"}, labels)
	assert.Equal(t, "%", p.Field(TypeSaturation).Unit)
	assert.Equal(t, 6, p.Field(TypeHex).MaxLength)
	assert.Same(t, p.Field(TypeBlue), p.FieldByLabel("B"))
	assert.Nil(t, p.Field(TypeAlpha))
	assert.Nil(t, p.FieldByLabel("A"))
}

func TestHSVPaletteNoControls(t *testing.T) {
	cfg := config.Default()
	cfg.Controls = false
	p := NewHSVPalette(cfg)
	require.Len(t, p.Fields(), 1)
	assert.Equal(t, TypeHex, p.Fields()[0].Type)

	require.NoError(t, p.Input(TypeHex, "00ff00"))
	assert.Equal(t, "00ff00", p.Hex())

	err := p.Input(TypeRed, "1")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestHSVPaletteMoveThumb(t *testing.T) {
	p := NewHSVPalette(nil)
	var got []*events.Event
	p.On(events.HSThumbChange, func(ev *events.Event) {
		got = append(got, ev)
	})

	p.MoveThumb(90, 90)
	assert.Equal(t, colors.HSVA{H: 180, S: 50, V: 100, A: 255}, p.HSV())
	assert.Equal(t, "80ffff", p.Hex())
	assert.Equal(t, "180", p.Field(TypeHue).Value)
	assert.Equal(t, "50", p.Field(TypeSaturation).Value)
	assert.Equal(t, "128", p.Field(TypeRed).Value)
	assert.Equal(t, "83px", p.Thumb.Style("left"))
	assert.Equal(t, "83px", p.Thumb.Style("top"))
	assert.Equal(t, "#80ffff", p.ResultView.Style(styles.BackgroundColor))

	require.Len(t, got, 1)
	assert.Equal(t, events.SourceUser, got[0].Source())
	assert.Equal(t, "#80ffff", got[0].HexColor)
	assert.Equal(t, "80ffff", got[0].Hex)

	// positions outside of the plane are clamped
	p.MoveThumb(-10, 500)
	assert.Equal(t, colors.HSVA{H: 0, S: 0, V: 100, A: 255}, p.HSV())
	assert.Equal(t, "ffffff", p.Hex())
	x, y := p.ThumbXY()
	assert.Equal(t, [2]float64{-7, 173}, [2]float64{x, y})
}

func TestHSVPaletteMoveThumbHueBoundary(t *testing.T) {
	p := NewHSVPalette(nil)
	p.MoveThumb(180, 0)
	assert.Equal(t, "360", p.Field(TypeHue).Value)
	assert.Equal(t, "ff0000", p.Hex())
	assert.Equal(t, "255", p.Field(TypeRed).Value)
}

func TestHSVPaletteMoveThumbTo(t *testing.T) {
	p := NewHSVPalette(nil)
	p.SetOrigin(100, 50)

	// the origin is only picked up when a slide starts
	p.MoveThumbTo(190, 140)
	assert.Equal(t, "360", p.Field(TypeHue).Value)
	assert.Equal(t, "22", p.Field(TypeSaturation).Value)

	p.ValueSlider.Start(events.SourceUser)
	p.MoveThumbTo(190, 140)
	assert.Equal(t, "180", p.Field(TypeHue).Value)
	assert.Equal(t, "50", p.Field(TypeSaturation).Value)

	p.SetOrigin(0, 0)
	p.ValueSlider.PressRail(events.SourceUser)
	p.MoveThumbTo(45, 0)
	assert.Equal(t, "90", p.Field(TypeHue).Value)
	assert.Equal(t, "100", p.Field(TypeSaturation).Value)
}

func TestHSVPaletteValueSlider(t *testing.T) {
	p := NewHSVPalette(nil)
	assert.True(t, p.ValueSlider.SetValue(50, events.SourceUser))
	assert.Equal(t, "800000", p.Hex())
	assert.Equal(t, "50", p.Field(TypeValue).Value)
	assert.Equal(t, "128", p.Field(TypeRed).Value)
	// the value slider background is the color at full value
	assert.Equal(t, "#ff0000", p.ValueSliderContainer.Style(styles.BackgroundColor))

	// programmatic slider changes do not resync the palette
	p.ValueSlider.SetValue(100, events.SourceUI)
	assert.Equal(t, "800000", p.Hex())

	p.ValueSlider.DragTo(0)
	assert.Equal(t, "ff0000", p.Hex())
	assert.Equal(t, "100", p.Field(TypeValue).Value)
}

func TestHSVPaletteInputHex(t *testing.T) {
	p := NewHSVPalette(nil)
	var src []events.Sources
	p.On(events.HexInputChange, func(ev *events.Event) {
		src = append(src, ev.Source())
	})

	require.NoError(t, p.Input(TypeHex, "00FF00"))
	assert.Equal(t, "00ff00", p.Hex())
	assert.Equal(t, "120", p.Field(TypeHue).Value)
	assert.Equal(t, "53px", p.Thumb.Style("left"))

	require.NoError(t, p.Input(TypeHex, "f0a"))
	assert.Equal(t, "ff00aa", p.Hex())

	for _, text := range []string{"", "ffff", "00ff0080", "gggggg"} {
		err := p.Input(TypeHex, text)
		assert.ErrorIs(t, err, ErrInvalidInput, text)
		assert.True(t, p.Field(TypeHex).Invalid, text)
		assert.Equal(t, "ff00aa", p.Hex(), text)
	}
	err := p.Input(TypeHex, "12345")
	assert.ErrorIs(t, err, colors.ErrInvalidHex)
	assert.Equal(t, []events.Sources{events.SourceUser, events.SourceUser}, src)

	require.NoError(t, p.SetColor("blue"))
	assert.False(t, p.Field(TypeHex).Invalid)
	assert.Equal(t, events.SourceUI, src[len(src)-1])
}

func TestHSVPaletteInputHSV(t *testing.T) {
	p := NewHSVPalette(nil)
	require.NoError(t, p.Input(TypeHue, "120"))
	assert.Equal(t, "00ff00", p.Hex())
	assert.Equal(t, "53px", p.Thumb.Style("left"))

	require.NoError(t, p.Input(TypeValue, " 50 "))
	assert.Equal(t, "008000", p.Hex())
	assert.Equal(t, 50.0, p.ValueSlider.Value())

	require.NoError(t, p.Input(TypeSaturation, "0"))
	assert.Equal(t, "808080", p.Hex())
	assert.Equal(t, "128", p.Field(TypeGreen).Value)

	for _, text := range []string{"361", "-1", "abc", "1000", ""} {
		err := p.Input(TypeHue, text)
		assert.ErrorIs(t, err, ErrInvalidInput, text)
		assert.True(t, p.Field(TypeHue).Invalid)
	}
	assert.Equal(t, "808080", p.Hex())
	assert.Equal(t, "120", p.Field(TypeHue).Value)
}

func TestHSVPaletteInputRGB(t *testing.T) {
	p := NewHSVPalette(nil)
	var n int
	p.On(events.RGBInputChange, func(ev *events.Event) { n++ })

	require.NoError(t, p.Input(TypeRed, "0"))
	assert.Equal(t, "000000", p.Hex())
	assert.Equal(t, 100.0, p.ValueSlider.Value())

	require.NoError(t, p.Input(TypeBlue, "255"))
	assert.Equal(t, "0000ff", p.Hex())
	assert.Equal(t, "240", p.Field(TypeHue).Value)
	assert.Equal(t, "100", p.Field(TypeValue).Value)
	assert.Equal(t, 2, n)

	err := p.Input(TypeGreen, "256")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, 2, n)
}

func TestHSVPaletteSetColor(t *testing.T) {
	p := NewHSVPalette(nil)
	tests := []struct {
		in, hex string
	}{
		{"rgb(0, 0, 255)", "0000ff"},
		{"#00f", "0000ff"},
		{"00ff00", "00ff00"},
		{"hsv(0, 0%, 100%)", "ffffff"},
		{"CornflowerBlue", "6495ed"},
	}
	for _, test := range tests {
		require.NoError(t, p.SetColor(test.in), test.in)
		assert.Equal(t, test.hex, p.Hex(), test.in)
	}
	assert.Error(t, p.SetColor("nope"))
	assert.Equal(t, "6495ed", p.Hex())
}
