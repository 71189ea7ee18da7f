package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// EnergyCSV writes one row per step: the time t followed by each series'
// value. Series shorter than the longest leave their cells empty.
func EnergyCSV(out io.Writer, series [][]float64, dt float64) error {
	w := csv.NewWriter(out)

	header := []string{"t"}
	rows := 0
	for i, s := range series {
		header = append(header, fmt.Sprintf("e%d", i))
		if len(s) > rows {
			rows = len(s)
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for step := 0; step < rows; step++ {
		row := []string{strconv.FormatFloat(float64(step)*dt, 'f', 6, 64)}
		for _, s := range series {
			if step < len(s) {
				row = append(row, strconv.FormatFloat(s[step], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
