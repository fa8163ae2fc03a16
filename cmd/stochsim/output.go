// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/katalvlaran/stochkin/ssa"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

// jsonResult is the JSON rendering of a run.
type jsonResult struct {
	Status     string    `json:"status"`
	StatusCode int       `json:"status_code"`
	Species    []string  `json:"species"`
	Times      []float64 `json:"times"`
	States     [][]int64 `json:"states"`
}

func writeResult(w io.Writer, format string, species []string, res *ssa.Result) error {
	if format == formatJSON {
		return json.NewEncoder(w).Encode(jsonResult{
			Status:     res.Status.String(),
			StatusCode: int(res.Status),
			Species:    species,
			Times:      res.Times,
			States:     res.States,
		})
	}

	cw := csv.NewWriter(w)
	row := make([]string, len(species)+1)
	row[0] = "t"
	copy(row[1:], species)
	if err := cw.Write(row); err != nil {
		return err
	}
	for k, t := range res.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for i, v := range res.States[k] {
			row[i+1] = strconv.FormatInt(v, 10)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
