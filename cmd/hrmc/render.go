package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"hrmc/internal/paging"
)

func renderTable(header []string, rows [][]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if len(header) > 0 {
		fmt.Fprintln(w, strings.Join(header, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func renderPaging(pg paging.State) {
	if pg.HasTotal {
		fmt.Printf("page %d of %d (%d total)\n", pg.Page, pg.TotalPages(), pg.Total)
		return
	}
	fmt.Printf("page %d\n", pg.Page)
}

func itoa(id int) string {
	return strconv.Itoa(id)
}

func money(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

// pager is the slice of PageController every page type exposes through Ctrl.
type pager interface {
	NextPage(ctx context.Context) error
	Paging() paging.State
}

// advanceTo walks the controller forward to the requested page. Controllers
// always mount on page 1; walking keeps the paging rules in one place.
func advanceTo(ctx context.Context, ctrl pager, page int) error {
	for ctrl.Paging().Page < page {
		before := ctrl.Paging().Page
		if err := ctrl.NextPage(ctx); err != nil {
			return err
		}
		if ctrl.Paging().Page == before {
			break // no further pages
		}
	}
	return nil
}
