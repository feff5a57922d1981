// Package ui provides the control panel and heads-up display drawn over the
// simulation. Widgets come from raygui; everything else is plain raylib.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	RunningColor  rl.Color
	StoppedColor  rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	SliderHeight  int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 20, G: 25, B: 30, A: 200},
		PanelBorder:   rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader: rl.Yellow,
		LabelColor:    rl.LightGray,
		ValueColor:    rl.RayWhite,
		RunningColor:  rl.Color{R: 100, G: 200, B: 100, A: 255},
		StoppedColor:  rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:       8,
		LineHeight:    24,
		LabelWidth:    70,
		SliderHeight:  16,
		FontSize:      12,
		TitleFontSize: 14,
	}
}
