package main

import (
	"fmt"
	"strings"

	"github.com/matst80/slask-orders/pkg/types"
)

func (r *repl) show() {
	page := r.engine.View()
	state := r.engine.State()

	if len(page.Items) == 0 {
		fmt.Println("no orders found")
	} else {
		fmt.Printf("%-6s %-20s %-20s %-10s %-8s %-14s %5s %-14s %-12s\n",
			"OID", "STATUS", "STATUS2", "TYPE", "LOCK", "CUSTOMER", "DAYS", "MODEL", "DESIGNER")
		for _, o := range page.Items {
			fmt.Printf("%-6d %-20s %-20s %-10s %-8s %-14s %5d %-14s %-12s\n",
				o.Oid, o.StatusLeft, o.StatusRight, o.Type, o.Lock,
				o.Customer, o.DaysSinceOrder, o.Model, o.Designer)
		}
	}

	active := make([]string, 0)
	for _, field := range types.FilterFields {
		sel := state.Filters[field]
		if !sel.IsEmpty() {
			active = append(active, fmt.Sprintf("%s=%s", field, strings.Join(sel, "|")))
		}
	}
	filterInfo := "none"
	if len(active) > 0 {
		filterInfo = strings.Join(active, " ")
	}
	fmt.Printf("page %d/%d  sort %s %s  filters: %s\n",
		page.Number, page.TotalPages, state.SortKey, state.SortDirection, filterInfo)
}
