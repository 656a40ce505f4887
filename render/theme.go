package render

import "github.com/gdamore/tcell/v2"

// theme bundles the styles one skin theme uses
type theme struct {
	background tcell.Style
	net        tcell.Style
	left       tcell.Style
	right      tcell.Style
	ball       tcell.Style
	hud        tcell.Style
	overlay    tcell.Style
}

// themeStyles resolves a sprites theme name; unknown names fall back to
// the classic palette so a bad config still renders
func themeStyles(name string) theme {
	switch name {
	case "neon":
		return theme{
			background: tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray),
			net:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
			left:       tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
			right:      tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true),
			ball:       tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true),
			hud:        tcell.StyleDefault.Foreground(tcell.ColorTeal),
			overlay:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorAqua),
		}
	case "mono":
		return theme{
			background: tcell.StyleDefault.Dim(true),
			net:        tcell.StyleDefault.Dim(true),
			left:       tcell.StyleDefault,
			right:      tcell.StyleDefault,
			ball:       tcell.StyleDefault.Bold(true),
			hud:        tcell.StyleDefault,
			overlay:    tcell.StyleDefault.Reverse(true),
		}
	default: // classic
		return theme{
			background: tcell.StyleDefault.Foreground(tcell.ColorGray),
			net:        tcell.StyleDefault.Foreground(tcell.ColorGray),
			left:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
			right:      tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
			ball:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
			hud:        tcell.StyleDefault.Foreground(tcell.ColorSilver),
			overlay:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite),
		}
	}
}
