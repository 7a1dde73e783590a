package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

func writeText(w io.Writer, rows []row, sensitivities bool) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	header := "CASE\tCORRELATION\tGOR\tPB\tBO\tITER"
	if sensitivities {
		header += "\tDP/DGOR\tDP/DAPI\tDP/DGG\tDP/DT"
	}
	fmt.Fprintln(tw, header+"\tERROR")
	for _, r := range rows {
		if r.Err != "" {
			fmt.Fprintf(tw, "%s\t%s\t%g\t-\t-\t%d", r.Name, r.Correlation, r.GOR, r.Iterations)
			if sensitivities {
				fmt.Fprint(tw, "\t-\t-\t-\t-")
			}
			fmt.Fprintf(tw, "\t%s\n", r.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%g\t%.2f\t%.4f\t%d", r.Name, r.Correlation, r.GOR, r.Pressure, r.Bo, r.Iterations)
		if sensitivities {
			fmt.Fprintf(tw, "\t%.4g\t%.4g\t%.4g\t%.4g", r.DGOR, r.DAPI, r.DGasGravity, r.DTemperature)
		}
		fmt.Fprint(tw, "\t\n")
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, rows []row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
