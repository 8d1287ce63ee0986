package chart

import (
	"fmt"
	"image/color"
	"os"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/DjordjeVuckovic/autocomplete-bench/internal/bench/metrics"
)

const titleBand = 36 // points reserved above the panels for the figure title

// yRange pins the y axis. Max is ignored when zero.
type yRange struct {
	Min, Max float64
}

var (
	fromZero = yRange{Min: 0}
	percent  = yRange{Min: 0, Max: 100}
)

type panel struct {
	Title  string
	XLabel string
	YLabel string
	Metric metrics.Metric
	Range  yRange
}

// newPanel plots metric against word count, one line per table.
func (st Style) newPanel(pn panel, tables []*metrics.Table) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = pn.Title
	p.X.Label.Text = pn.XLabel
	p.Y.Label.Text = pn.YLabel

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 220}
	grid.Horizontal.Color = color.Gray{Y: 220}
	p.Add(grid)

	for _, t := range tables {
		words, values := t.Words(), t.Column(pn.Metric)
		xys := make(plotter.XYs, len(words))
		for i := range xys {
			xys[i].X, xys[i].Y = words[i], values[i]
		}

		ss := st.series(t.Label.Variant)

		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, fmt.Errorf("%s line: %w", t.Label, err)
		}
		line.LineStyle = st.lineStyle(ss)

		marks, err := plotter.NewScatter(every(xys, st.MarkEvery))
		if err != nil {
			return nil, fmt.Errorf("%s markers: %w", t.Label, err)
		}
		marks.GlyphStyle = st.glyphStyle(ss)

		p.Add(line, marks)
		p.Legend.Add(t.Label.Variant, line, marks)
	}
	p.Legend.Top = true

	p.Y.Min = pn.Range.Min
	if pn.Range.Max != 0 {
		p.Y.Max = pn.Range.Max
	}

	return p, nil
}

// every keeps points 0, n, 2n, ...
func every(xys plotter.XYs, n int) plotter.XYs {
	if n <= 1 {
		return xys
	}
	out := make(plotter.XYs, 0, len(xys)/n+1)
	for i := 0; i < len(xys); i += n {
		out = append(out, xys[i])
	}
	return out
}

// emptyPanel stands in for a dataset that has no tables.
func emptyPanel(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.HideAxes()
	return p
}

// saveFigure lays plots out in one row under title and writes a PNG to path.
func (st Style) saveFigure(path, title string, plots []*plot.Plot, panelHeight float64) error {
	width := vg.Length(st.PanelWidth*float64(len(plots))) * vg.Inch
	height := vg.Length(panelHeight)*vg.Inch + vg.Points(titleBand)

	img := vgimg.NewWith(
		vgimg.UseWH(width, height),
		vgimg.UseDPI(st.DPI),
		vgimg.UseBackgroundColor(color.White),
	)
	dc := draw.New(img)

	titleFont := plot.DefaultFont
	titleFont.Size = vg.Points(16)
	titleFont.Weight = xfont.WeightBold
	dc.FillText(draw.TextStyle{
		Color:   color.Black,
		Font:    titleFont,
		XAlign:  draw.XCenter,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}, vg.Point{X: (dc.Min.X + dc.Max.X) / 2, Y: dc.Max.Y - vg.Points(8)}, title)

	body := draw.Crop(dc, 0, 0, 0, -vg.Points(titleBand))
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      len(plots),
		PadX:      vg.Millimeter * 6,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 4,
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, body)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write png %s: %w", path, err)
	}
	return f.Close()
}
