package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnToday   lipgloss.Color
	TextOnWarning lipgloss.Color

	Modal ModalColors

	light bool
	bgHex string
	fgHex string
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg       lipgloss.Color
	Border   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Backdrop lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent:  lipgloss.Color(readableOn(t.Accent, t.Fg, t.Bg)),
		TextOnToday:   lipgloss.Color(readableOn(t.Today, t.Fg, t.Bg)),
		TextOnWarning: lipgloss.Color(readableOn(t.Warning, t.Fg, t.Bg)),

		Modal: ModalColors{
			Bg:       lipgloss.Color(t.ModalBg),
			Border:   lipgloss.Color(t.ModalBorder),
			Text:     lipgloss.Color(t.ModalText),
			Muted:    lipgloss.Color(t.ModalMuted),
			Backdrop: lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
		},

		light: relativeLuminance(t.Bg) > 0.55,
		bgHex: t.Bg,
		fgHex: t.Fg,
	}
}

// EventBg tones an event's color down into a block background that sits
// comfortably on the theme background. Event colors arrive from user data,
// so any malformed hex falls through unchanged.
func (p *Palette) EventBg(hex string) lipgloss.Color {
	if p.light {
		return lipgloss.Color(blend(hex, p.bgHex, 0.72))
	}
	return lipgloss.Color(blend(hex, "#000000", 0.45))
}

// EventFg picks the readable text color for an event block produced by
// EventBg.
func (p *Palette) EventFg(hex string) lipgloss.Color {
	bg := string(p.EventBg(hex))
	return lipgloss.Color(readableOn(bg, p.fgHex, p.bgHex))
}

// readableOn returns whichever of the two candidates contrasts better
// against bg.
func readableOn(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := splitHex(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blend mixes a towards b by ratio. ratio 0 keeps a, ratio 1 yields b.
func blend(a, b string, ratio float64) string {
	ar, ag, ab, okA := splitHex(a)
	br, bg, bb, okB := splitHex(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Min(math.Max(ratio, 0), 1)

	return joinHex(
		int(float64(ar)*(1-ratio)+float64(br)*ratio),
		int(float64(ag)*(1-ratio)+float64(bg)*ratio),
		int(float64(ab)*(1-ratio)+float64(bb)*ratio),
	)
}

func splitHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	for i := 1; i < 7; i++ {
		v, valid := hexDigit(hex[i])
		if !valid {
			return 0, 0, 0, false
		}
		switch {
		case i < 3:
			r = r*16 + v
		case i < 5:
			g = g*16 + v
		default:
			b = b*16 + v
		}
	}
	return r, g, b, true
}

func hexDigit(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func joinHex(r, g, b int) string {
	const digits = "0123456789abcdef"
	return string([]byte{
		'#',
		digits[(r>>4)&0xf], digits[r&0xf],
		digits[(g>>4)&0xf], digits[g&0xf],
		digits[(b>>4)&0xf], digits[b&0xf],
	})
}
