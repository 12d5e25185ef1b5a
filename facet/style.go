package facet

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how the assembled facet table is drawn. It is
// threaded explicitly through every builder; there is no ambient
// global styling state.
type Style struct {
	Background color.Color

	Title       draw.TextStyle
	TitleHeight vg.Length

	Panel struct {
		Background color.Color
		Border     draw.LineStyle
		PadX       vg.Length
		PadY       vg.Length
	}

	// HStrip styles the horizontal column-label strips above the
	// panels, VStrip the vertical row-label strips right of them.
	HStrip struct {
		Background color.Color
		Pad        vg.Length
		draw.TextStyle
	}
	VStrip struct {
		Background color.Color
		Pad        vg.Length
		draw.TextStyle
	}

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}

	XAxis struct {
		Tick struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
	}

	YAxis struct {
		Tick struct {
			draw.LineStyle
			Length vg.Length
			Label  draw.TextStyle
		}
	}
}

// DefaultStyle returns a Style which mimics the appearance of ggplot2.
// The baseFontSize is the font size for strip labels, the title is a
// bit bigger, tick labels a bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	titleFont, err := vg.MakeFont("Helvetica-Bold", scale(baseFontSize, 1.2))
	if err != nil {
		panic(err)
	}
	baseFont, err := vg.MakeFont("Helvetica-Bold", baseFontSize)
	if err != nil {
		panic(err)
	}
	tickFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	sty := Style{}
	sty.Background = color.White

	sty.TitleHeight = scale(baseFontSize, 3)
	sty.Title.Color = color.Black
	sty.Title.Font = titleFont
	sty.Title.XAlign = draw.XCenter
	sty.Title.YAlign = draw.YTop

	sty.Panel.Background = color.Gray16{0xeeee}
	sty.Panel.Border.Color = nil
	sty.Panel.Border.Width = 0
	sty.Panel.PadX = scale(baseFontSize, 0.5)
	sty.Panel.PadY = sty.Panel.PadX

	sty.HStrip.Background = color.Gray16{0xcccc}
	sty.HStrip.Font = baseFont
	sty.HStrip.Pad = scale(baseFontSize, 0.4)
	sty.HStrip.XAlign = draw.XCenter
	sty.HStrip.YAlign = -0.3 // draw.YCenter
	sty.VStrip.Background = color.Gray16{0xcccc}
	sty.VStrip.Font = baseFont
	sty.VStrip.Pad = scale(baseFontSize, 0.4)
	sty.VStrip.XAlign = draw.XCenter
	sty.VStrip.YAlign = -0.3
	sty.VStrip.Rotation = -math.Pi / 2

	sty.Grid.Major.Color = color.White
	sty.Grid.Major.Width = vg.Length(1)
	sty.Grid.Minor.Color = color.White
	sty.Grid.Minor.Width = vg.Length(0.5)

	sty.XAxis.Tick.Color = color.Gray16{0x1111}
	sty.XAxis.Tick.Width = vg.Length(1)
	sty.XAxis.Tick.Length = vg.Length(5)
	sty.XAxis.Tick.Label.Color = color.Black
	sty.XAxis.Tick.Label.Font = tickFont
	sty.XAxis.Tick.Label.XAlign = draw.XCenter
	sty.XAxis.Tick.Label.YAlign = draw.YTop

	sty.YAxis.Tick.Color = color.Gray16{0x1111}
	sty.YAxis.Tick.Width = vg.Length(1)
	sty.YAxis.Tick.Length = vg.Length(5)
	sty.YAxis.Tick.Label.Color = color.Black
	sty.YAxis.Tick.Label.Font = tickFont
	sty.YAxis.Tick.Label.XAlign = draw.XRight
	sty.YAxis.Tick.Label.YAlign = -0.3

	return sty
}

// styleConfig is the TOML surface for style overrides. Only the knobs
// people actually tune are exposed; everything else keeps the default.
type styleConfig struct {
	BaseFontSize    float64 `toml:"base_font_size"`
	Background      string  `toml:"background"`
	PanelBackground string  `toml:"panel_background"`
	StripBackground string  `toml:"strip_background"`
	PanelPad        float64 `toml:"panel_pad"`
	PanelBorder     float64 `toml:"panel_border"`
	TickLength      float64 `toml:"tick_length"`
}

// StyleFromTOML reads style overrides from the TOML file at path and
// applies them on top of the default style.
func StyleFromTOML(path string) (Style, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("facet: reading style: %w", err)
	}
	var cfg styleConfig
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Style{}, fmt.Errorf("facet: parsing style %s: %w", path, err)
	}

	base := vg.Length(12)
	if cfg.BaseFontSize > 0 {
		base = vg.Length(cfg.BaseFontSize)
	}
	sty := DefaultStyle(base)

	if cfg.Background != "" {
		c, err := parseHexColor(cfg.Background)
		if err != nil {
			return Style{}, err
		}
		sty.Background = c
	}
	if cfg.PanelBackground != "" {
		c, err := parseHexColor(cfg.PanelBackground)
		if err != nil {
			return Style{}, err
		}
		sty.Panel.Background = c
	}
	if cfg.StripBackground != "" {
		c, err := parseHexColor(cfg.StripBackground)
		if err != nil {
			return Style{}, err
		}
		sty.HStrip.Background = c
		sty.VStrip.Background = c
	}
	if cfg.PanelPad > 0 {
		sty.Panel.PadX = vg.Length(cfg.PanelPad)
		sty.Panel.PadY = vg.Length(cfg.PanelPad)
	}
	if cfg.PanelBorder > 0 {
		sty.Panel.Border.Color = color.Gray16{0x4444}
		sty.Panel.Border.Width = vg.Length(cfg.PanelBorder)
	}
	if cfg.TickLength > 0 {
		sty.XAxis.Tick.Length = vg.Length(cfg.TickLength)
		sty.YAxis.Tick.Length = vg.Length(cfg.TickLength)
	}
	return sty, nil
}

// parseHexColor parses "#rrggbb" or "rrggbb".
func parseHexColor(s string) (color.Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("facet: bad color %q: want 6 hex digits", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return nil, fmt.Errorf("facet: bad color %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
