package cli

import (
	"image/color"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/relias08/ggplot2/data"
	"github.com/relias08/ggplot2/facet"
	"github.com/relias08/ggplot2/geom"
)

type renderOptions struct {
	formula string
	xCol    string
	yCol    string
	out     string
	title   string
	margins bool
	scales  string
	space   string
	labels  string
	style   string
	width   float64
	height  float64
}

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <data.csv>",
		Short: "Render a faceted scatter plot from a CSV file",
		Long: `Render reads a CSV file with a header row, splits it into panels by
the facet formula (e.g. "cyl ~ gear", "." for an empty side) and draws
one scatter panel per combination into a PNG file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.formula, "facet", "f", "", `facet formula "rowvars ~ colvars"`)
	cmd.Flags().StringVarP(&opts.xCol, "x", "x", "", "column plotted on the x axis")
	cmd.Flags().StringVarP(&opts.yCol, "y", "y", "", "column plotted on the y axis")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "plot.png", "output PNG path")
	cmd.Flags().StringVar(&opts.title, "title", "", "plot title")
	cmd.Flags().BoolVar(&opts.margins, "margins", false, `add "(all)" margin panels`)
	cmd.Flags().StringVar(&opts.scales, "scales", "fixed", "fixed, free_x, free_y or free")
	cmd.Flags().StringVar(&opts.space, "space", "fixed", "fixed or free panel sizing")
	cmd.Flags().StringVar(&opts.labels, "labels", "value", "strip labels: value or both")
	cmd.Flags().StringVar(&opts.style, "style", "", "TOML style override file")
	cmd.Flags().Float64Var(&opts.width, "width", 800, "image width in points")
	cmd.Flags().Float64Var(&opts.height, "height", 600, "image height in points")
	cobra.CheckErr(cmd.MarkFlagRequired("facet"))
	cobra.CheckErr(cmd.MarkFlagRequired("x"))
	cobra.CheckErr(cmd.MarkFlagRequired("y"))

	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOptions) error {
	logger := loggerFromContext(cmd.Context())
	facet.SetLogger(logger)
	start := time.Now()

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	frame, err := data.ReadCSV(in)
	in.Close()
	if err != nil {
		return err
	}
	logger.Debug("read dataset", "path", path, "records", frame.Len())

	grid, err := facet.GridFromFormula(opts.formula)
	if err != nil {
		return err
	}
	grid.Margins = opts.margins
	if grid.Scales, err = facet.ParseScaleMode(opts.scales); err != nil {
		return err
	}
	if grid.Space, err = facet.ParseSpaceMode(opts.space); err != nil {
		return err
	}
	if opts.labels == "both" {
		grid.Labeller = facet.LabelBoth
	}

	sty := facet.DefaultStyle(12)
	if opts.style != "" {
		if sty, err = facet.StyleFromTOML(opts.style); err != nil {
			return err
		}
	}

	layout, err := grid.Train(frame)
	if err != nil {
		return err
	}
	assignments, err := layout.Locate(frame)
	if err != nil {
		return err
	}

	// Fan the records out into per-panel point sets and train the
	// per-scale-group ranges on the way.
	n := layout.NumPanels()
	points := make([]plotter.XYs, n)
	ranges := facet.NewRanges()
	dropped := 0
	for i, ids := range assignments {
		if len(ids) == 0 {
			dropped++
			continue
		}
		x, err := frame.Float(opts.xCol, i)
		if err != nil {
			return err
		}
		y, err := frame.Float(opts.yCol, i)
		if err != nil {
			return err
		}
		for _, id := range ids {
			p := layout.Panel(id)
			ranges.ObserveX(p.ScaleX, x)
			ranges.ObserveY(p.ScaleY, y)
			points[id-1] = append(points[id-1], plotter.XY{X: x, Y: y})
		}
	}
	if dropped > 0 {
		logger.Debug("records without facet assignment", "count", dropped)
	}

	layer := make(facet.Layer, n)
	glyph := draw.GlyphStyle{
		Color:  color.RGBA{R: 0x33, G: 0x66, B: 0xaa, A: 0xff},
		Radius: 2,
		Shape:  draw.CircleGlyph{},
	}
	for _, p := range layout.Panels() {
		if len(points[p.ID-1]) == 0 {
			continue
		}
		layer[p.ID-1] = geom.Points{
			XY:    points[p.ID-1],
			Range: ranges.PanelRange(p),
			Style: glyph,
		}
	}

	tbl, err := grid.Render(facet.RenderInput{
		Layout: layout,
		Ranges: ranges,
		Layers: []facet.Layer{layer},
		Coord:  facet.Cartesian{},
		Style:  sty,
		Title:  opts.title,
	})
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Length(opts.width), vg.Length(opts.height))
	dc := draw.New(img)
	if sty.Background != nil {
		dc.SetColor(sty.Background)
		dc.Fill(dc.Rectangle.Path())
	}
	tbl.Draw(dc)

	w, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Infof("wrote %s with %d panels (%s)",
		opts.out, n, time.Since(start).Round(time.Millisecond))
	return nil
}
