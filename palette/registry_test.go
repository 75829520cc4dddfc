// Copyright (c) 2024, The Alloy UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"
	"testing"

	"github.com/BiBongNet/alloy-ui/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"hsv-palette", "hsva-palette"}, TypeNames())

	typ, ok := Lookup("hsva-palette")
	require.True(t, ok)
	assert.Equal(t, "hsv-palette", typ.Extends)
	assert.Equal(t, "hsva-palette", typ.NS)

	_, ok = Lookup("rgb-palette")
	assert.False(t, ok)

	err := Register(Type{Name: "hsv-palette"})
	assert.ErrorIs(t, err, ErrDuplicateType)

	err = Register(Type{Name: "lab-palette", Extends: "lch-palette"})
	assert.Error(t, err)
	_, ok = Lookup("lab-palette")
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	w, err := New("hsva-palette", nil)
	require.NoError(t, err)
	require.IsType(t, &HSVAPalette{}, w)
	assert.Equal(t, "hsva-palette", w.Name())
	assert.Equal(t, "ff0000ff", w.State().Hex)

	cfg := config.Default()
	cfg.Color = "00f"
	w, err = New("hsv-palette", cfg)
	require.NoError(t, err)
	require.IsType(t, &HSVPalette{}, w)
	assert.Equal(t, "0000ff", w.State().Hex)
	assert.Nil(t, w.State().AlphaSlider)

	_, err = New("rgb-palette", nil)
	assert.Error(t, err)
}

func TestWidgetInput(t *testing.T) {
	for _, name := range TypeNames() {
		w, err := New(name, nil)
		require.NoError(t, err)
		require.NoError(t, w.SetColor("#00ff00"), name)
		require.NoError(t, w.Input(TypeSaturation, "0"), name)
		assert.Equal(t, "ffffff", w.State().Hex[:6], name)
	}
}

func ExampleNew() {
	w, err := New("hsva-palette", nil)
	if err != nil {
		panic(err)
	}
	if err := w.Input(TypeHex, "00ff0080"); err != nil {
		panic(err)
	}
	st := w.State()
	fmt.Println(st.Hex, st.Fields["alpha"], *st.AlphaSlider)
	// Output: 00ff0080 128 127
}
