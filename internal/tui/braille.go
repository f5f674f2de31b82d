package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/sketch"
)

type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	fg   [][]string // per-cell hex colour of the last dot set, "" for none
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	fg := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		fg[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, fg: fg}
}

// dotBits is the braille bit for each (column, row) of the 2x4 cell.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, hex string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[rx][ry]
	b.fg[cy][cx] = hex
}

// toLines renders the buffer, colouring each cell with its dot colour when
// colour is true.
func (b *brailleBuf) toLines(colour bool) []string {
	out := make([]string, b.h)
	styles := map[string]lipgloss.Style{}
	for y := 0; y < b.h; y++ {
		var sb strings.Builder
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				sb.WriteByte(' ')
				continue
			}
			r := string(rune(0x2800 + int(mask)))
			if !colour {
				sb.WriteString(r)
				continue
			}
			hex := b.fg[y][x]
			st, ok := styles[hex]
			if !ok {
				st = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			sb.WriteString(st.Render(r))
		}
		out[y] = sb.String()
	}
	return out
}

// renderSurface samples img onto a w x h cell braille grid. A dot is set
// when the sampled pixel is more than half opaque.
func renderSurface(img *image.RGBA, w, h int, colour bool) []string {
	br := newBrailleBuf(w, h)
	bw, bh := img.Bounds().Dx(), img.Bounds().Dy()
	wMic, hMic := w*2, h*4
	for my := 0; my < hMic; my++ {
		py := int((float64(my) + 0.5) * float64(bh) / float64(hMic))
		for mx := 0; mx < wMic; mx++ {
			px := int((float64(mx) + 0.5) * float64(bw) / float64(wMic))
			c := img.RGBAAt(px, py)
			if c.A <= 127 {
				continue
			}
			hex := ""
			if colour {
				hex = unpremultiply(c.R, c.G, c.B, c.A).Hex()
			}
			br.setPixel(mx, my, hex)
		}
	}
	return br.toLines(colour)
}

func unpremultiply(r, g, b, a uint8) sketch.RGBA {
	fa := float64(a)
	return sketch.RGB(float64(r)/fa, float64(g)/fa, float64(b)/fa)
}
