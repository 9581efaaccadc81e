package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

func writeCSV(w io.Writer, r *Result) error {
	writer := csv.NewWriter(w)

	ds := r.Dataset
	header := append(append([]string{}, ds.DataColumns()...), ds.TargetColumn())
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	rows, cols := ds.Data().Dims()
	record := make([]string, cols+1)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(ds.Data().At(i, j), 'g', -1, 64)
		}
		if r.EncodedTarget != nil {
			record[cols] = strconv.FormatFloat(r.EncodedTarget[i], 'g', -1, 64)
		} else {
			record[cols] = ds.Target()[i]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
