package results

import (
	"io"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

var summaryHeaders = []string{
	"Chunk [KB]", "Compression", "Flush [ms]", "Flush stdev [ms]", "Space",
	"Stalls", "Stall mean [ms]", "Stall p99 [ms]",
}

func round(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(3)
}

// DrawSummary renders document as a table, one row per configuration.
func DrawSummary(w io.Writer, document []ResultSet) {
	output := tablewriter.NewWriter(w)
	output.SetHeader(summaryHeaders)
	for _, set := range document {
		for _, result := range set.Results {
			output.Append([]string{
				strconv.Itoa(set.ChunkLen),
				result.Name,
				round(result.FlushTimeMean),
				round(result.FlushTimeStdev),
				bytefmt.ByteSize(uint64(result.Space)),
				round(result.StallNumMean),
				round(result.StallTimeMean),
				round(result.StallTimeP99),
			})
		}
	}
	output.Render()
}
