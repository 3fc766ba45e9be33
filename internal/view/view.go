// Package view computes display aggregates from repository data. Everything
// here is a pure function over collection snapshots; nothing is stored.
package view

import (
	"sort"
	"time"

	"github.com/Abdulaty-Ahmed/maasli-dashboard/internal/model"
)

// ProductTotal is one row of the per-product unit totals.
type ProductTotal struct {
	Product string `json:"product"`
	Count   int    `json:"count"`
}

// ProductTotals sums machine counts per product name, preserving the order
// in which products first appear in the machine list.
func ProductTotals(machines []model.Machine) []ProductTotal {
	totals := []ProductTotal{}
	index := make(map[string]int)
	for _, m := range machines {
		if i, ok := index[m.Product]; ok {
			totals[i].Count += m.Count
			continue
		}
		index[m.Product] = len(totals)
		totals = append(totals, ProductTotal{Product: m.Product, Count: m.Count})
	}
	return totals
}

// CombinedProductNames returns the union of product-type names and the
// product names machines currently reference, deduplicated by exact string
// match and sorted ascending. This union is the "all products" view; it is
// never stored.
func CombinedProductNames(types []model.ProductType, machines []model.Machine) []string {
	seen := make(map[string]struct{})
	names := []string{}
	add := func(name string) {
		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	for _, t := range types {
		add(t.Name)
	}
	for _, m := range machines {
		add(m.Product)
	}
	sort.Strings(names)
	return names
}

// ProductRow is one entry of the products overview: usage figures plus the
// metadata record when one exists.
type ProductRow struct {
	Name         string     `json:"name"`
	MachineCount int        `json:"machineCount"`
	TotalUnits   int        `json:"totalUnits"`
	InUse        bool       `json:"inUse"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// ProductOverview builds one row per combined product name. A product is
// deletable exactly when InUse is false and a type record exists.
func ProductOverview(types []model.ProductType, machines []model.Machine) []ProductRow {
	byName := make(map[string]model.ProductType, len(types))
	for _, t := range types {
		byName[t.Name] = t
	}

	rows := []ProductRow{}
	for _, name := range CombinedProductNames(types, machines) {
		row := ProductRow{Name: name}
		for _, m := range machines {
			if m.Product == name {
				row.MachineCount++
				row.TotalUnits += m.Count
			}
		}
		row.InUse = row.MachineCount > 0
		if t, ok := byName[name]; ok {
			row.Description = t.Description
			created := t.CreatedAt
			row.CreatedAt = &created
		}
		rows = append(rows, row)
	}
	return rows
}

// Series is one named line of a chart payload.
type Series struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

// Chart is the payload shape consumed by the charting collaborator.
type Chart struct {
	Labels []string `json:"labels"`
	Series []Series `json:"series"`
}
