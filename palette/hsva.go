// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"log/slog"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/BiBongNet/alloy-ui/config"
	"github.com/BiBongNet/alloy-ui/events"
	"github.com/BiBongNet/alloy-ui/slider"
	"github.com/BiBongNet/alloy-ui/styles"
)

// HSVAPalette is an [HSVPalette] with an alpha channel: an alpha
// slider, an alpha field and 8 digit hex values (RRGGBBAA).
//
// The alpha slider is inverted: a slider value of 0 is fully opaque
// (alpha 255) and 255 is fully transparent. After any settling event
// the alpha slider and the alpha field add up to 255, and the opacity
// of the preview is alpha/255.
type HSVAPalette struct {
	*HSVPalette

	// AlphaSlider is the slider for the alpha, from 0 (alpha 255)
	// to 255 (alpha 0).
	AlphaSlider *slider.Slider

	// AlphaSliderContainer holds the alpha slider; its background
	// is the current opaque color.
	AlphaSliderContainer *styles.Element
}

// NewHSVAPalette returns a new HSVA palette with the given config,
// which is copied. A nil config uses [config.Default].
func NewHSVAPalette(cfg *config.Config) *HSVAPalette {
	p := &HSVAPalette{}
	p.HSVPalette = newHSVPalette(cfg, p)
	p.renderAlphaSliderContainer()
	p.createAlphaSlider()
	p.renderAlphaField()

	p.onSettle(events.HSThumbChange, p.afterHSThumbChange)
	p.onSettle(events.HSVAInputChange, p.afterHSVAInputChange)
	p.onSettle(events.RGBInputChange, p.afterRGBInputChange)
	p.onSettle(events.HexInputChange, p.afterHexInputChange)

	p.init()
	return p
}

func (p *HSVAPalette) Name() string { return "hsva-palette" }

// ContainerClassName returns the CSS classes of the palette container.
func (p *HSVAPalette) ContainerClassName() string {
	return p.HSVPalette.ContainerClassName() + " " + p.className("hsv-container-alpha")
}

func (p *HSVAPalette) renderAlphaSliderContainer() {
	p.AlphaSliderContainer = styles.NewElement("alpha", p.className("hsv-alpha-slider-container"))
}

func (p *HSVAPalette) createAlphaSlider() {
	p.AlphaSlider = slider.New(slider.Y, colors.MinAlpha, colors.MaxAlpha).SetLength(p.Config.AlphaSliderLength)
	p.AlphaSlider.On(events.SlideStart, p.setHSContainerXY)
	p.AlphaSlider.On(events.RailMouseDown, p.setHSContainerXY)
	p.AlphaSlider.OnChange(p.onAlphaChange)
}

func (p *HSVAPalette) renderAlphaField() {
	if !p.Config.Controls {
		return
	}
	p.addField(Field{
		Label:     p.Config.Strings.A,
		Type:      TypeAlpha,
		Suffix:    "-a",
		MaxLength: 3,
		Max:       colors.MaxAlpha,
		Value:     "255",
	})
}

// Alpha returns the alpha given by the alpha slider.
func (p *HSVAPalette) Alpha() int {
	return colors.MaxAlpha - int(p.AlphaSlider.Value())
}

// HexValue returns the 8 digit hex value for the given hex color and components.
func (p *HSVAPalette) HexValue(hexColor string, rgba [4]int) string {
	return colors.HexValue(hexColor, rgba)
}

// NormalizeHex pads 3 and 6 digit hex input to 8 digits.
func (p *HSVAPalette) NormalizeHex(hex string) string {
	return colors.NormalizeHex(hex)
}

// ValidHex accepts 3, 6 and 8 digit hex input.
func (p *HSVAPalette) ValidHex(hex string) bool {
	return colors.ValidHexAlpha(hex)
}

// HexField returns the configuration of the 8 digit hex field.
func (p *HSVAPalette) HexField(strs config.Strings) Field {
	return Field{Label: strs.Hex, Type: TypeHex, Suffix: "-hex", MaxLength: 8, Value: "ff0000ff"}
}

// Opacity returns the opacity of the preview swatch.
func (p *HSVAPalette) Opacity() float64 {
	return p.ResultView.StyleFloat(styles.Opacity, 1)
}

// SetAlpha sets the alpha (0-255) as if the user moved the alpha slider to it.
func (p *HSVAPalette) SetAlpha(a int) {
	p.AlphaSlider.SetValue(float64(colors.MaxAlpha-a), events.SourceUser)
}

// onAlphaChange syncs the palette after the user moved the alpha slider.
func (p *HSVAPalette) onAlphaChange(ev *events.Event) {
	if ev.IsUI() {
		return
	}
	alpha := ev.New
	p.ResultView.SetStyleFloat(styles.Opacity, 1-alpha/colors.MaxAlpha)

	c := p.HSV()
	rgbColor := colors.RGBAFromHSVA(c.H, c.S, c.V, colors.MaxAlpha-int(alpha))
	rgba := errors.Log1(colors.ToArray(rgbColor))
	rgba[3] = colors.MaxAlpha - int(alpha)
	hexValue := colors.HexValue(errors.Log1(colors.ToHex(rgbColor)), rgba)

	p.setField(TypeHex, hexValue)
	if p.Config.Controls {
		p.setField(TypeAlpha, colors.MaxAlpha-int(alpha))
		p.setField(TypeRed, rgba[0])
		p.setField(TypeGreen, rgba[1])
		p.setField(TypeBlue, rgba[2])
	}
	slog.Debug("palette: alpha changed", "slider", alpha, "hex", hexValue)
}

func (p *HSVAPalette) afterHSThumbChange(ev *events.Event) {
	p.AlphaSliderContainer.SetStyle(styles.BackgroundColor, ev.HexColor)
}

func (p *HSVAPalette) afterHexInputChange(ev *events.Event) {
	alpha := errors.Log1(colors.AlphaFromHex(ev.Hex))
	p.AlphaSlider.SetValue(float64(colors.MaxAlpha-alpha), events.SourceUI)
	p.AlphaSliderContainer.SetStyle(styles.BackgroundColor, ev.HexColor)
	p.ResultView.SetStyleFloat(styles.Opacity, float64(alpha)/colors.MaxAlpha)
	if p.Config.Controls {
		p.setField(TypeAlpha, alpha)
	}
}

func (p *HSVAPalette) afterHSVAInputChange(ev *events.Event) {
	alpha := p.Alpha()
	if f := p.Field(TypeAlpha); f != nil {
		alpha = f.Int()
	}
	p.AlphaSlider.SetValue(float64(colors.MaxAlpha-alpha), events.SourceUI)
	p.AlphaSliderContainer.SetStyle(styles.BackgroundColor, ev.HexColor)
	p.ResultView.SetStyleFloat(styles.Opacity, float64(alpha)/colors.MaxAlpha)
	if hex := p.Hex(); len(hex) == 8 {
		p.setField(TypeHex, hex[:6]+colors.AlphaHex(alpha))
	}
}

func (p *HSVAPalette) afterRGBInputChange(ev *events.Event) {
	p.AlphaSliderContainer.SetStyle(styles.BackgroundColor, ev.HexColor)
}
