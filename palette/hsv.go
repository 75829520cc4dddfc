// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette provides headless HSV and HSVA color palettes: a
// hue/saturation plane, a value slider, an optional alpha slider and
// numeric and hex text fields, all kept in sync with one another.
package palette

import (
	"fmt"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"github.com/BiBongNet/alloy-ui/base/errors"
	"github.com/BiBongNet/alloy-ui/colors"
	"github.com/BiBongNet/alloy-ui/config"
	"github.com/BiBongNet/alloy-ui/events"
	"github.com/BiBongNet/alloy-ui/slider"
	"github.com/BiBongNet/alloy-ui/styles"
	"github.com/jinzhu/copier"
)

// HSVPalette is a color palette made of a hue/saturation plane,
// a value slider, numeric hue, saturation, value, red, green and
// blue fields, a hex field and a preview swatch.
//
// The plane maps x to hue (0 at the left, 360 at the right) and y to
// saturation (100 at the top, 0 at the bottom). The value slider is
// inverted: a slider value of 0 is a value of 100.
type HSVPalette struct {

	// Config is the configuration of the palette. It is a copy
	// owned by the palette.
	Config config.Config

	// ViewContainer holds the plane, the sliders and the preview.
	ViewContainer *styles.Element

	// HSContainer is the hue/saturation plane.
	HSContainer *styles.Element

	// Thumb is the draggable handle of the hue/saturation plane.
	Thumb *styles.Element

	// ValueSlider is the slider for the value, from 0 (value 100)
	// to 100 (value 0).
	ValueSlider *slider.Slider

	// ValueSliderContainer holds the value slider; its background
	// is the current hue and saturation at full value.
	ValueSliderContainer *styles.Element

	// ResultView is the preview swatch of the current color.
	ResultView *styles.Element

	fields []*Field
	model  ColorModel

	// settle holds the handlers that bring the palette's own controls
	// in line with an event. They run before listeners.
	settle events.Listeners

	// listeners holds the handlers added with [HSVPalette.On].
	listeners events.Listeners

	// origin is the page position of the plane as laid out by the renderer.
	origin [2]float64

	// hsContainerXY is the origin cached at the start of a slide,
	// used to convert page positions into plane positions.
	hsContainerXY [2]float64

	// thumbX and thumbY are the center of the thumb on the plane.
	thumbX, thumbY float64
}

// NewHSVPalette returns a new HSV palette with the given config,
// which is copied. A nil config uses [config.Default].
func NewHSVPalette(cfg *config.Config) *HSVPalette {
	p := newHSVPalette(cfg, hsvModel{})
	p.init()
	return p
}

func newHSVPalette(cfg *config.Config, model ColorModel) *HSVPalette {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &HSVPalette{model: model}
	errors.Must(copier.CopyWithOption(&p.Config, cfg, copier.Option{DeepCopy: true}))

	p.ViewContainer = styles.NewElement("view", p.className("hsv-view-container"))
	p.HSContainer = styles.NewElement("hs", p.className("hsv-hs-container"))
	p.Thumb = styles.NewElement("thumb", p.className("hsv-hs-thumb"))
	p.ResultView = styles.NewElement("result", p.className("hsv-result-view"))
	p.ValueSliderContainer = styles.NewElement("value", p.className("hsv-value-slider-container"))

	p.ValueSlider = slider.New(slider.Y, 0, colors.MaxValue).SetLength(p.Config.ValueSliderLength)
	p.ValueSlider.On(events.SlideStart, p.setHSContainerXY)
	p.ValueSlider.On(events.RailMouseDown, p.setHSContainerXY)
	p.ValueSlider.OnChange(p.onValueChange)

	p.renderFields()
	return p
}

// init applies the configured color once the palette is fully built.
func (p *HSVPalette) init() {
	if err := p.SetColor(p.Config.Color); err != nil {
		errors.Log(fmt.Errorf("palette: invalid initial color: %w", err))
		errors.Log(p.SetColor(config.Default().Color))
	}
}

func (p *HSVPalette) Name() string { return "hsv-palette" }

// ContainerClassName returns the CSS class of the palette container.
func (p *HSVPalette) ContainerClassName() string {
	return p.className("hsv-container")
}

func (p *HSVPalette) className(parts ...string) string {
	return styles.PrefixedClassName(p.Config.ClassPrefix, parts...)
}

func (p *HSVPalette) renderFields() {
	strs := p.Config.Strings
	if p.Config.Controls {
		p.addField(Field{Label: strs.H, Type: TypeHue, Suffix: "-h", MaxLength: 3, Max: colors.MaxHue, Value: "0"})
		p.addField(Field{Label: strs.S, Type: TypeSaturation, Suffix: "-s", Unit: "%", MaxLength: 3, Max: colors.MaxSaturation, Value: "100"})
		p.addField(Field{Label: strs.V, Type: TypeValue, Suffix: "-v", Unit: "%", MaxLength: 3, Max: colors.MaxValue, Value: "100"})
		p.addField(Field{Label: strs.R, Type: TypeRed, Suffix: "-r", MaxLength: 3, Max: 255, Value: "255"})
		p.addField(Field{Label: strs.G, Type: TypeGreen, Suffix: "-g", MaxLength: 3, Max: 255, Value: "0"})
		p.addField(Field{Label: strs.B, Type: TypeBlue, Suffix: "-b", MaxLength: 3, Max: 255, Value: "0"})
	}
	p.addField(p.model.HexField(strs))
}

func (p *HSVPalette) addField(f Field) *Field {
	nf := &f
	p.fields = append(p.fields, nf)
	return nf
}

// Fields returns the text fields of the palette, in display order.
func (p *HSVPalette) Fields() []*Field { return p.fields }

// Field returns the field of the given type, or nil if there is none.
func (p *HSVPalette) Field(typ FieldTypes) *Field {
	for _, f := range p.fields {
		if f.Type == typ {
			return f
		}
	}
	return nil
}

// FieldByLabel returns the field with the given label, or nil if there is none.
func (p *HSVPalette) FieldByLabel(label string) *Field {
	for _, f := range p.fields {
		if f.Label == label {
			return f
		}
	}
	return nil
}

func (p *HSVPalette) setField(typ FieldTypes, v any) {
	if f := p.Field(typ); f != nil {
		f.SetValue(v)
	}
}

// On adds a listener for the given palette event type. Listeners
// run after the palette has settled all of its controls, most
// recently added first.
func (p *HSVPalette) On(typ events.Types, fun func(ev *events.Event)) {
	p.listeners.Add(typ, fun)
}

func (p *HSVPalette) onSettle(typ events.Types, fun func(ev *events.Event)) {
	p.settle.Add(typ, fun)
}

func (p *HSVPalette) send(typ events.Types, src events.Sources, hexColor string) {
	ev := events.NewEvent(typ, src)
	ev.HexColor = hexColor
	if f := p.Field(TypeHex); f != nil {
		ev.Hex = f.Value
	}
	p.settle.Call(ev)
	if f := p.Field(TypeHex); f != nil {
		ev.Hex = f.Value
	}
	p.listeners.Call(ev)
}

// Hex returns the value of the hex field.
func (p *HSVPalette) Hex() string {
	return p.Field(TypeHex).Value
}

// HSV returns the current color as given by the thumb position,
// the value slider and the alpha of the palette.
func (p *HSVPalette) HSV() colors.HSVA {
	return colors.HSVA{
		H: p.calculateHue(p.thumbX),
		S: p.calculateSaturation(p.thumbY),
		V: colors.MaxValue - p.ValueSlider.Value(),
		A: uint8(p.model.Alpha()),
	}
}

// NRGBA returns the current color as given by the hex field.
func (p *HSVPalette) NRGBA() color.NRGBA {
	return errors.Log1(colors.FromHex(p.Hex()))
}

// SetOrigin sets the page position of the hue/saturation plane, as
// laid out by the renderer. It takes effect at the next slide start.
func (p *HSVPalette) SetOrigin(x, y float64) {
	p.origin = [2]float64{x, y}
}

// StartDrag caches the plane origin, as when the user grabs the thumb
// of the plane. [HSVPalette.MoveThumbTo] positions are relative to it.
func (p *HSVPalette) StartDrag() {
	p.hsContainerXY = p.origin
}

func (p *HSVPalette) setHSContainerXY(ev *events.Event) {
	p.StartDrag()
}

// ThumbXY returns the top-left position of the thumb on the plane.
func (p *HSVPalette) ThumbXY() (x, y float64) {
	return p.thumbX - p.Config.ThumbGutter, p.thumbY - p.Config.ThumbGutter
}

// calculateHue returns the hue at the given x position on the plane.
func (p *HSVPalette) calculateHue(x float64) float64 {
	return clamp(math.Round(x*colors.MaxHue/p.Config.Width), 0, colors.MaxHue)
}

// calculateSaturation returns the saturation at the given y position on the plane.
func (p *HSVPalette) calculateSaturation(y float64) float64 {
	return clamp(math.Round(colors.MaxSaturation-y*colors.MaxSaturation/p.Config.Height), 0, colors.MaxSaturation)
}

// placeThumb moves the thumb to the position of the given hue and saturation.
func (p *HSVPalette) placeThumb(h, s float64) {
	p.setThumb(h*p.Config.Width/colors.MaxHue, (colors.MaxSaturation-s)*p.Config.Height/colors.MaxSaturation)
}

func (p *HSVPalette) setThumb(x, y float64) {
	p.thumbX, p.thumbY = x, y
	tx, ty := p.ThumbXY()
	p.Thumb.SetStyle("left", px(tx)).SetStyle("top", px(ty))
}

// MoveThumb handles the user dragging the hue/saturation thumb so
// that its center is at the given position on the plane.
func (p *HSVPalette) MoveThumb(x, y float64) {
	x = clamp(x, 0, p.Config.Width)
	y = clamp(y, 0, p.Config.Height)
	p.setThumb(x, y)
	h, s := p.calculateHue(x), p.calculateSaturation(y)
	v := colors.MaxValue - p.ValueSlider.Value()
	hexColor := p.push(h, s, v, nil)
	p.send(events.HSThumbChange, events.SourceUser, hexColor)
}

// MoveThumbTo is like [HSVPalette.MoveThumb] with a page position,
// relative to the plane origin cached at the last slide start.
func (p *HSVPalette) MoveThumbTo(pageX, pageY float64) {
	p.MoveThumb(pageX-p.hsContainerXY[0], pageY-p.hsContainerXY[1])
}

// SetValueSlider sets the value slider as if the user moved it.
func (p *HSVPalette) SetValueSlider(v float64) {
	p.ValueSlider.SetValue(v, events.SourceUser)
}

func (p *HSVPalette) onValueChange(ev *events.Event) {
	if ev.IsUI() {
		return
	}
	c := p.HSV()
	p.push(c.H, c.S, c.V, nil)
}

// SetColor sets the color of the palette from any color string
// accepted by [colors.Parse]. It updates every control and sends
// [events.HexInputChange] tagged [events.SourceUI].
func (p *HSVPalette) SetColor(s string) error {
	ls := strings.ToLower(strings.TrimSpace(s))
	if colors.ValidHexAlpha(ls) {
		ls = "#" + ls
	}
	c, err := colors.Parse(ls)
	if err != nil {
		return fmt.Errorf("palette.SetColor: %w", err)
	}
	p.applyColor(c, events.SourceUI)
	return nil
}

// Input handles the user entering the given text in the field of
// the given type. Rejected text marks the field invalid and leaves
// the palette unchanged.
func (p *HSVPalette) Input(typ FieldTypes, text string) error {
	f := p.Field(typ)
	if f == nil {
		return fmt.Errorf("palette.Input: %w: %q", ErrUnknownField, typ)
	}
	var err error
	switch typ {
	case TypeHex:
		err = p.inputHex(text)
	case TypeRed, TypeGreen, TypeBlue:
		err = p.inputRGB(f, text)
	default:
		err = p.inputHSVA(f, text)
	}
	if err != nil {
		f.Invalid = true
		slog.Debug("palette: rejected input", "field", typ, "text", text, "err", err)
		return fmt.Errorf("palette.Input: %w", err)
	}
	return nil
}

func (p *HSVPalette) inputHex(text string) error {
	text = strings.TrimSpace(text)
	if !p.model.ValidHex(text) {
		return fmt.Errorf("%w: %w: %q", ErrInvalidInput, colors.ErrInvalidHex, text)
	}
	c, err := colors.FromHex(p.model.NormalizeHex(text))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	p.applyColor(c, events.SourceUser)
	return nil
}

// applyColor moves every control to the given color, keeping its
// exact components, and sends [events.HexInputChange].
func (p *HSVPalette) applyColor(c color.NRGBA, src events.Sources) {
	hsv := colors.HSVAFromColor(c)
	hsv.Round()
	p.placeThumb(hsv.H, hsv.S)
	p.ValueSlider.SetValue(colors.MaxValue-hsv.V, events.SourceUI)
	rgba := colors.ArrayFromColor(c)
	hexColor := p.push(hsv.H, hsv.S, hsv.V, &rgba)
	p.send(events.HexInputChange, src, hexColor)
}

func (p *HSVPalette) inputRGB(f *Field, text string) error {
	n, err := f.validateNumber(text)
	if err != nil {
		return err
	}
	f.SetValue(n)
	rgba := [4]int{p.Field(TypeRed).Int(), p.Field(TypeGreen).Int(), p.Field(TypeBlue).Int(), p.model.Alpha()}
	hsv := colors.HSVAFromColor(color.NRGBA{uint8(rgba[0]), uint8(rgba[1]), uint8(rgba[2]), 255})
	hsv.Round()
	p.placeThumb(hsv.H, hsv.S)
	p.ValueSlider.SetValue(colors.MaxValue-hsv.V, events.SourceUI)
	hexColor := p.push(hsv.H, hsv.S, hsv.V, &rgba)
	p.send(events.RGBInputChange, events.SourceUser, hexColor)
	return nil
}

func (p *HSVPalette) inputHSVA(f *Field, text string) error {
	n, err := f.validateNumber(text)
	if err != nil {
		return err
	}
	f.SetValue(n)
	c := p.HSV()
	switch f.Type {
	case TypeHue:
		c.H = float64(n)
	case TypeSaturation:
		c.S = float64(n)
	case TypeValue:
		c.V = float64(n)
	}
	p.placeThumb(c.H, c.S)
	p.ValueSlider.SetValue(colors.MaxValue-c.V, events.SourceUI)
	hexColor := p.push(c.H, c.S, c.V, nil)
	p.send(events.HSVAInputChange, events.SourceUser, hexColor)
	return nil
}

// push recomputes the color from the given hue, saturation and value
// and pushes it to the fields and the preview. The given components,
// if any, are used as is instead of being converted from HSV.
// It returns the '#'-prefixed 6 digit hex color.
func (p *HSVPalette) push(h, s, v float64, rgba *[4]int) string {
	var arr [4]int
	if rgba != nil {
		arr = *rgba
	} else {
		arr = errors.Log1(colors.ToArray(colors.RGBAFromHSVA(h, s, v, p.model.Alpha())))
		// the alpha always comes from the model, even at the hue 360 boundary
		arr[3] = p.model.Alpha()
	}
	hexColor := fmt.Sprintf("#%02x%02x%02x", arr[0], arr[1], arr[2])

	p.setField(TypeHex, p.model.HexValue(hexColor, arr))
	p.setField(TypeHue, int(math.Round(h)))
	p.setField(TypeSaturation, int(math.Round(s)))
	p.setField(TypeValue, int(math.Round(v)))
	p.setField(TypeRed, arr[0])
	p.setField(TypeGreen, arr[1])
	p.setField(TypeBlue, arr[2])

	p.ResultView.SetStyle(styles.BackgroundColor, hexColor)
	full := errors.Log1(colors.ToArray(colors.RGBAFromHSVA(h, s, colors.MaxValue, colors.MaxAlpha)))
	p.ValueSliderContainer.SetStyle(styles.BackgroundColor, fmt.Sprintf("#%02x%02x%02x", full[0], full[1], full[2]))

	slog.Debug("palette: synced", "h", h, "s", s, "v", v, "hex", hexColor)
	return hexColor
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func px(v float64) string {
	return fmt.Sprintf("%gpx", v)
}
