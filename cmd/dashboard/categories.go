package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"emmanuelos.dev/internal/manifest"
	"emmanuelos.dev/internal/services"
)

// printCategories reads src once and writes each derived category with
// the number of apps the filter would show.
func printCategories(ctx context.Context, out io.Writer, src manifest.Source) error {
	m, err := src.Fetch(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tAPPS")
	for _, category := range services.DeriveCategories(m.Apps) {
		fmt.Fprintf(tw, "%s\t%d\n", category, len(services.FilterApps(m.Apps, category)))
	}
	return tw.Flush()
}
