package ui

import "image/color"

type Theme struct {
	MenuBar       color.RGBA
	MenuHover     color.RGBA
	MenuText      color.RGBA
	Dropdown      color.RGBA
	DropdownHover color.RGBA
	Border        color.RGBA
	StatusBar     color.RGBA
	Text          color.RGBA
	MutedText     color.RGBA
	ErrorText     color.RGBA
	Accent        color.RGBA
	Panel         color.RGBA
	Input         color.RGBA
	InputFocus    color.RGBA
	Button        color.RGBA
	Overlay       color.RGBA
	MenuHeight    int
	StatusHeight  int
	RowHeight     int
}

func DefaultTheme() Theme {
	return Theme{
		MenuBar:       color.RGBA{0x2B, 0x57, 0x9A, 0xFF},
		MenuHover:     color.RGBA{0x3A, 0x66, 0xAC, 0xFF},
		MenuText:      color.RGBA{0xF4, 0xF8, 0xFF, 0xFF},
		Dropdown:      color.RGBA{0xF9, 0xFB, 0xFE, 0xFF},
		DropdownHover: color.RGBA{0xDF, 0xEC, 0xFC, 0xFF},
		Border:        color.RGBA{0xB2, 0xBF, 0xD0, 0xFF},
		StatusBar:     color.RGBA{0xEA, 0xEF, 0xF6, 0xFF},
		Text:          color.RGBA{0x2A, 0x38, 0x50, 0xFF},
		MutedText:     color.RGBA{0x4A, 0x58, 0x70, 0xFF},
		ErrorText:     color.RGBA{0xA5, 0x23, 0x23, 0xFF},
		Accent:        color.RGBA{0x2E, 0x66, 0xB6, 0xFF},
		Panel:         color.RGBA{0xF8, 0xFA, 0xFD, 0xFF},
		Input:         color.RGBA{0xFF, 0xFF, 0xFF, 0xFF},
		InputFocus:    color.RGBA{0xF4, 0xF9, 0xFF, 0xFF},
		Button:        color.RGBA{0xD9, 0xE9, 0xFA, 0xFF},
		Overlay:       color.RGBA{0x00, 0x00, 0x00, 0x5A},
		MenuHeight:    26,
		StatusHeight:  24,
		RowHeight:     30,
	}
}
