package benchmark

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// PrintSummary renders one row per finished sweep
func PrintSummary(w io.Writer, reports []SweepReport) {
	if len(reports) == 0 {
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Shape", "Implementation", "Epochs", "Max values", "Total ms", "Results"})
	table.SetAutoWrapText(false)

	for _, r := range reports {
		p := r.Series.Params
		maxValues := 0
		if n := len(r.Series.Points); n > 0 {
			maxValues = r.Series.Points[n-1].DatasetSize
		}
		table.Append([]string{
			string(p.Shape),
			p.Name,
			strconv.Itoa(len(r.Series.Points)),
			strconv.Itoa(maxValues),
			fmt.Sprintf("%.3f", r.Series.TotalMs()),
			r.Path,
		})
	}

	table.Render()
}
