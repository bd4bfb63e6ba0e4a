package scraper

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/soupyhq/soupy/internal/fetcher"
)

// visualizer prints scrape progress when verbose mode is on. Each run is
// tagged with a short scrape ID so interleaved output from callers running
// their own loops stays attributable.
type visualizer struct {
	enabled bool
	id      string
	url     string
}

func newVisualizer(enabled bool, url string) *visualizer {
	return &visualizer{
		enabled: enabled,
		id:      uuid.New().String()[:8],
		url:     url,
	}
}

func (v *visualizer) start() {
	if !v.enabled {
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	banner := "==============================================================================\n"
	banner += green("       🌐 Scrape Started 🌐\n")
	banner += "==============================================================================\n"
	banner += fmt.Sprintf("Scrape ID:  %s\n", v.id)
	banner += fmt.Sprintf("Target URL: %s\n", v.url)
	banner += "=============================================================================="
	fmt.Println(banner)
}

func (v *visualizer) fetched(result *fetcher.Result) {
	if !v.enabled {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Field", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: 20},
		{Number: 2, Align: text.AlignLeft, WidthMax: 80},
	})
	t.AppendRow(table.Row{"Final URL", result.URL})
	t.AppendRow(table.Row{"Status", strconv.Itoa(result.StatusCode)})
	t.AppendRow(table.Row{"HTML Length", strconv.Itoa(len(result.HTML))})
	t.AppendSeparator()
	t.Render()
}

func (v *visualizer) saved(path string, size int) {
	if !v.enabled {
		return
	}
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("[%s] %s %s (%d bytes)\n", v.id, green("✔ saved"), path, size)
}

func (v *visualizer) fail(err error) {
	if !v.enabled {
		return
	}
	red := color.New(color.FgRed).SprintFunc()
	fmt.Printf("[%s] %s %v\n", v.id, red("⚠ error:"), err)
}
