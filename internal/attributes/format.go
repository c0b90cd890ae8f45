// Package attributes names screen colors and cell attributes for the
// RevReadAttributes command, and bridges termenv colors to the X11 rgb:
// strings used when responding to OSC 10/11 queries from the child shell.
package attributes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// Color is a cell's foreground or background color, mirroring the parser's
// Default | Indexed(0..255) | Rgb(r,g,b) color model.
type Color struct {
	Kind ColorKind
	Idx  int
	R, G, B uint8
}

type ColorKind int

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorRGB
)

// Cell describes the rendering attributes recovered from a parser Format's
// rendered SGR escape sequence, plus the double-width flag carried
// separately from the grid (SGR has no code for character width).
type Cell struct {
	Fg, Bg                             Color
	Bold, Italic, Underline, Inverse   bool
	Faint, Blink, Strikethrough, Conceal bool
	Wide                               bool
}

// ParseSGR parses an SGR escape sequence (as produced by a terminal
// Format's Render method, e.g. "\x1b[1;38;5;196m") into a Cell. Unknown or
// unsupported codes are ignored rather than erroring, since Render always
// emits well-formed SGR sequences.
func ParseSGR(seq string) Cell {
	var c Cell
	seq = strings.TrimPrefix(seq, "\x1b[")
	seq = strings.TrimSuffix(seq, "m")
	if seq == "" {
		return c
	}
	parts := strings.Split(seq, ";")
	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		switch {
		case n == 0:
			c = Cell{}
		case n == 1:
			c.Bold = true
		case n == 2:
			c.Faint = true
		case n == 3:
			c.Italic = true
		case n == 4:
			c.Underline = true
		case n == 5 || n == 6:
			c.Blink = true
		case n == 7:
			c.Inverse = true
		case n == 8:
			c.Conceal = true
		case n == 9:
			c.Strikethrough = true
		case n >= 30 && n <= 37:
			c.Fg = Color{Kind: ColorIndexed, Idx: n - 30}
		case n >= 90 && n <= 97:
			c.Fg = Color{Kind: ColorIndexed, Idx: n - 90 + 8}
		case n >= 40 && n <= 47:
			c.Bg = Color{Kind: ColorIndexed, Idx: n - 40}
		case n >= 100 && n <= 107:
			c.Bg = Color{Kind: ColorIndexed, Idx: n - 100 + 8}
		case n == 39:
			c.Fg = Color{Kind: ColorDefault}
		case n == 49:
			c.Bg = Color{Kind: ColorDefault}
		case n == 38 || n == 48:
			isFg := n == 38
			if i+1 >= len(parts) {
				break
			}
			mode, _ := strconv.Atoi(parts[i+1])
			if mode == 5 && i+2 < len(parts) {
				idx, _ := strconv.Atoi(parts[i+2])
				col := Color{Kind: ColorIndexed, Idx: idx}
				if isFg {
					c.Fg = col
				} else {
					c.Bg = col
				}
				i += 2
			} else if mode == 2 && i+4 < len(parts) {
				r, _ := strconv.Atoi(parts[i+2])
				g, _ := strconv.Atoi(parts[i+3])
				b, _ := strconv.Atoi(parts[i+4])
				col := Color{Kind: ColorRGB, R: uint8(r), G: uint8(g), B: uint8(b)}
				if isFg {
					c.Fg = col
				} else {
					c.Bg = col
				}
				i += 4
			}
		}
	}
	return c
}

// IsHighlighted reports whether the cell is fg=Indexed(0) on bg=Indexed(11),
// the convention the upstream implementation uses for highlighted text.
func (c Cell) IsHighlighted() bool {
	return c.Fg.Kind == ColorIndexed && c.Fg.Idx == 0 &&
		c.Bg.Kind == ColorIndexed && c.Bg.Idx == 11
}

// Name returns the human-readable name for a color: "default" for the
// default color, the 256-color table entry for an indexed color, the
// table entry for an RGB color that exactly matches a cube/grayscale
// entry, else a "#RRGGBB" literal.
func (col Color) Name() string {
	switch col.Kind {
	case ColorDefault:
		return "default"
	case ColorIndexed:
		if name, ok := colorNames[col.Idx]; ok {
			return name
		}
		return fmt.Sprintf("color %d", col.Idx)
	case ColorRGB:
		if idx, ok := rgbToCubeIndex(col.R, col.G, col.B); ok {
			if name, ok := colorNames[idx]; ok {
				return name
			}
		}
		return fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	default:
		return "default"
	}
}

// cubeLevels are the six intensity steps the xterm 256-color cube uses for
// indices 16-231. The 16 fixed ANSI/aixterm colors (0-15) and their exact
// RGB values are out of scope for reverse lookup; an RGB triple landing on
// one of those falls back to a hex literal instead.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

func nearestCubeLevel(v uint8) (level, idx int) {
	best, bestIdx := 256, 0
	for i, l := range cubeLevels {
		d := int(v) - l
		if d < 0 {
			d = -d
		}
		if d < best {
			best = d
			bestIdx = i
		}
	}
	return cubeLevels[bestIdx], bestIdx
}

// rgbToCubeIndex returns the exact 256-color index matching (r,g,b), if the
// triple exactly equals one of the 216 cube entries (16-231) or one of the
// 24 grayscale ramp entries (232-255, steps of 10 starting at 8).
func rgbToCubeIndex(r, g, b uint8) (int, bool) {
	if r == g && g == b {
		// grayscale ramp: value = 8 + 10*n for n in 0..23
		v := int(r)
		if (v-8)%10 == 0 {
			n := (v - 8) / 10
			if n >= 0 && n <= 23 {
				return 232 + n, true
			}
		}
	}
	rl, ri := nearestCubeLevel(r)
	gl, gi := nearestCubeLevel(g)
	bl, bi := nearestCubeLevel(b)
	if rl != int(r) || gl != int(g) || bl != int(b) {
		return 0, false
	}
	return 16 + 36*ri + 6*gi + bi, true
}

// ToX11 converts a termenv.Color to an X11 "rgb:RRRR/GGGG/BBBB" string, for
// responding to OSC 10/11 queries from the child shell.
func ToX11(c termenv.Color) string {
	if c == nil {
		return ""
	}
	if rgb, ok := c.(termenv.RGBColor); ok {
		hex := string(rgb)
		if len(hex) == 7 && hex[0] == '#' {
			r, _ := strconv.ParseUint(hex[1:3], 16, 8)
			g, _ := strconv.ParseUint(hex[3:5], 16, 8)
			b, _ := strconv.ParseUint(hex[5:7], 16, 8)
			return fmt.Sprintf("rgb:%04x/%04x/%04x", r*0x101, g*0x101, b*0x101)
		}
	}
	converted := termenv.ConvertToRGB(c)
	r := uint8(converted.R*255 + 0.5)
	g := uint8(converted.G*255 + 0.5)
	b := uint8(converted.B*255 + 0.5)
	return fmt.Sprintf("rgb:%04x/%04x/%04x", uint16(r)*0x101, uint16(g)*0x101, uint16(b)*0x101)
}

// FallbackPalette guesses reasonable default fg/bg X11 colors from a
// COLORFGBG environment variable when OSC 10/11 queries go unanswered.
func FallbackPalette(colorfgbg string) (fg, bg string) {
	parts := strings.Split(strings.TrimSpace(colorfgbg), ";")
	bgDark := true
	bgField := ""
	if len(parts) >= 2 {
		bgField = strings.TrimSpace(parts[1])
	} else if len(parts) == 1 {
		bgField = strings.TrimSpace(parts[0])
	}
	if bgField != "" {
		if idx, err := strconv.Atoi(bgField); err == nil {
			bgDark = idx < 8
		}
	}
	if bgDark {
		return "rgb:ffff/ffff/ffff", "rgb:0000/0000/0000"
	}
	return "rgb:0000/0000/0000", "rgb:ffff/ffff/ffff"
}
