// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import "fmt"

// Markup holds the HTML fragments a palette contributes
// to its host page.
type Markup struct {
	AlphaCanvas          string `yaml:"alpha_canvas,omitempty"`
	AlphaSliderContainer string `yaml:"alpha_slider_container,omitempty"`
	AlphaThumb           string `yaml:"alpha_thumb,omitempty"`
}

// Markup returns the alpha canvas (the slider rail), the alpha
// slider container and the alpha thumb fragments.
func (p *HSVAPalette) Markup() Markup {
	return Markup{
		AlphaCanvas:          fmt.Sprintf(`<span class="%s"></span>`, p.className("hsv-alpha-canvas")),
		AlphaSliderContainer: fmt.Sprintf(`<div class="%s"></div>`, p.AlphaSliderContainer.Class),
		AlphaThumb: fmt.Sprintf(`<span class="%s"><span class="%s"></span></span>`,
			p.className("hsv-alpha-thumb"), p.className("hsv-alpha-image")),
	}
}
