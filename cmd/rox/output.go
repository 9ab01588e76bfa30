package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// Data is the output shape every subcommand prints: the object the data
// describes (usually a file path) and an arbitrary metadata bag.
type Data struct {
	Object string         `json:"object"`
	Meta   map[string]any `json:"meta"`
}

// printData writes data to w using the named format ("console" or "json").
func printData(w io.Writer, format string, data *Data) error {
	switch format {
	case "", "console":
		return printConsole(w, data)
	case "json":
		return printJSON(w, data)
	default:
		return fmt.Errorf("unknown output format %q (want console or json)", format)
	}
}

func printConsole(w io.Writer, data *Data) error {
	fmt.Fprintln(w, data.Object)

	keys := make([]string, 0, len(data.Meta))
	for k := range data.Meta {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 2, 1, ' ', 0)

	for _, k := range keys {
		fmt.Fprintf(tw, "  %s:\t%v\n", k, data.Meta[k])
	}

	return tw.Flush()
}

func printJSON(w io.Writer, data *Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}
