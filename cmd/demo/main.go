// Command demo renders a canned weekly-usage dataset so the chart pipeline
// can be eyeballed without preparing a data file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
	"github.com/janekbaraniewski/barview/internal/dataload"
	"github.com/janekbaraniewski/barview/internal/svgrender"
	"github.com/janekbaraniewski/barview/internal/termrender"
	"github.com/janekbaraniewski/barview/internal/tui"
)

func demoDataset(palette []lipgloss.Color) dataload.Dataset {
	spend := &chart.Legend{Color: palette[0], Label: "spend"}
	points := []chart.DataPoint{
		{Value: 12, Label: "Mon", Legend: spend},
		{Value: 31, Label: "Tue", Legend: spend},
		{Value: 24, Label: "Wed", Legend: spend},
		{Value: 48, Label: "Thu", Legend: spend},
		{Value: 19, Label: "Fri", Legend: spend},
		{Value: 5, Label: "Sat", Legend: spend},
		{Value: 9, Label: "Sun", Legend: spend},
	}
	limit := chart.DataPoint{
		Value:  40,
		Label:  "budget",
		Legend: &chart.Legend{Color: palette[1%len(palette)], Label: "budget"},
	}
	return dataload.Dataset{Points: points, Limit: &limit}
}

func main() {
	svgPath := flag.String("svg", "", "also write the chart as SVG to this path")
	width := flag.Int("width", 72, "chart width in layout units")
	height := flag.Int("height", 18, "chart height in layout units")
	themeName := flag.String("theme", "Catppuccin Mocha", "color theme name")
	flag.Parse()

	theme := tui.ThemeByName(*themeName)
	ds := demoDataset(theme.Palette)
	style := theme.Style(chart.DefaultBarStyle())
	// One terminal cell per layout unit: the pixel-sized minimum track height
	// would overflow the requested bounds here.
	style.BarMinHeight = 1

	ctx := chart.WithStyle(context.Background(), style)
	root := ds.Chart().Layout(ctx, chart.Rect{W: float64(*width), H: float64(*height)})

	fmt.Println(termrender.Render(root))

	if *svgPath != "" {
		doc := svgrender.Render(root, svgrender.Options{Scale: 10, Background: "#1E1E2E"})
		if err := os.WriteFile(*svgPath, []byte(doc+"\n"), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "writing %s: %v\n", *svgPath, err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *svgPath)
	}
}
