package ggplot

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/aclements/go-gg/table"
)

// flattenGrouping concatenates all groups of g into a single table.
// Grouped inputs are accepted anywhere a dataset is, but the grammar
// builds its own groups from the aesthetic mapping.
func flattenGrouping(g table.Grouping) *table.Table {
	if g == nil {
		return nil
	}
	if t, ok := g.(*table.Table); ok {
		return t
	}
	gids := g.Tables()
	if len(gids) == 0 {
		return new(table.Table)
	}
	if len(gids) == 1 {
		return g.Table(gids[0])
	}
	b := new(table.Builder)
	for _, col := range g.Columns() {
		var merged reflect.Value
		for i, gid := range gids {
			cv := reflect.ValueOf(g.Table(gid).Column(col))
			if i == 0 {
				merged = reflect.MakeSlice(cv.Type(), 0, cv.Len())
			}
			merged = reflect.AppendSlice(merged, cv)
		}
		b.Add(col, merged.Interface())
	}
	return b.Done()
}

// subsetRows builds a new table holding the given rows of t, in order.
func subsetRows(t *table.Table, rows []int) *table.Table {
	b := new(table.Builder)
	for _, col := range t.Columns() {
		cv := reflect.ValueOf(t.Column(col))
		out := reflect.MakeSlice(cv.Type(), len(rows), len(rows))
		for i, r := range rows {
			out.Index(i).Set(cv.Index(r))
		}
		b.Add(col, out.Interface())
	}
	return b.Done()
}

// columnValue returns row i of column col as an any.
func columnValue(t *table.Table, col string, i int) any {
	return reflect.ValueOf(t.Column(col)).Index(i).Interface()
}

// compareValues orders two column values: numerically when both are
// numeric, by string form otherwise.
func compareValues(a, b any) int {
	af, aok := asFloat(a)
	bf, bok := asFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		}
		return 0
	}
	as, bs := fmt.Sprint(a), fmt.Sprint(b)
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	}
	return 0
}

// compareRows orders two rows of t by the given columns.
func compareRows(t *table.Table, cols []string, i, j int) int {
	for _, col := range cols {
		if c := compareValues(columnValue(t, col, i), columnValue(t, col, j)); c != 0 {
			return c
		}
	}
	return 0
}

// partitionBy splits t into subtables with equal values in cols, sorted
// by those columns. Row order within a partition is preserved.
func partitionBy(t *table.Table, cols []string) []*table.Table {
	if t == nil || len(cols) == 0 || t.Len() == 0 {
		if t == nil {
			return nil
		}
		return []*table.Table{t}
	}
	order := make([]int, t.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return compareRows(t, cols, order[a], order[b]) < 0
	})

	var parts []*table.Table
	start := 0
	for i := 1; i <= len(order); i++ {
		if i == len(order) || compareRows(t, cols, order[start], order[i]) != 0 {
			parts = append(parts, subsetRows(t, order[start:i]))
			start = i
		}
	}
	return parts
}

// levelKey builds a comparable key for one row of the given columns.
func levelKey(vals []any) string {
	key := ""
	for i, v := range vals {
		if i > 0 {
			key += "\x00"
		}
		key += fmt.Sprint(v)
	}
	return key
}

// uniqueLevels returns the distinct value tuples of cols in t, sorted.
// Each level carries its raw values (for labels) and its key.
func uniqueLevels(t *table.Table, cols []string) []level {
	if t == nil || t.Len() == 0 {
		return nil
	}
	seen := map[string]bool{}
	var levels []level
	for i := 0; i < t.Len(); i++ {
		vals := make([]any, len(cols))
		for j, col := range cols {
			vals[j] = columnValue(t, col, i)
		}
		key := levelKey(vals)
		if seen[key] {
			continue
		}
		seen[key] = true
		levels = append(levels, level{vals: vals, key: key})
	}
	sortLevels(levels)
	return levels
}

// sortLevels orders levels by their value tuples in place.
func sortLevels(levels []level) {
	sort.SliceStable(levels, func(a, b int) bool {
		la, lb := levels[a], levels[b]
		for i := range la.vals {
			if c := compareValues(la.vals[i], lb.vals[i]); c != 0 {
				return c < 0
			}
		}
		return false
	})
}

// matchLevel returns the rows of t whose cols equal the level tuple.
func matchLevel(t *table.Table, cols []string, lv level) []int {
	var rows []int
	for i := 0; i < t.Len(); i++ {
		vals := make([]any, len(cols))
		for j, col := range cols {
			vals[j] = columnValue(t, col, i)
		}
		if levelKey(vals) == lv.key {
			rows = append(rows, i)
		}
	}
	return rows
}

// level is one distinct combination of faceting variable values.
type level struct {
	vals []any
	key  string
}

func (l level) String() string {
	s := ""
	for i, v := range l.vals {
		if i > 0 {
			s += "\n"
		}
		s += fmt.Sprint(v)
	}
	return s
}

// hasColumn reports whether the dataset has the named column.
func hasColumn(t *table.Table, col string) bool {
	if t == nil {
		return false
	}
	for _, c := range t.Columns() {
		if c == col {
			return true
		}
	}
	return false
}
