/*
PURPOSE:
  Orders result rows by F1 and assigns ranks.

REQUIREMENTS:
  User-specified:
  - Descending F1, ranks dense and 1-based.
  - Ties keep the order the rows had in the file.

  Implementation-discovered:
  - Main and attack rows rank the same way, so the sort is generic.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (table.go, summary.go)

ERROR HANDLING:
  - None. Ranking cannot fail.

IMPLEMENTATION RULES:
  - Stable sort on a copy; never reorder the caller's slice.

USAGE:
  ranked := engine.Rank(rows)

SELF-HEALING INSTRUCTIONS:
  - If ties start reordering, check that SortStableFunc is still used.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"cmp"
	"slices"

	"github.com/daryltucker/evalreport/internal/model"
)

// sortByF1 returns a copy of rows ordered by descending F1.
// Ties keep their input order.
func sortByF1[T any](rows []T, f1 func(T) float64) []T {
	out := slices.Clone(rows)
	slices.SortStableFunc(out, func(a, b T) int {
		return cmp.Compare(f1(b), f1(a))
	})
	return out
}

// Rank assigns dense 1-based ranks by descending F1. The input is not modified.
func Rank(rows []model.ResultRow) []model.RankedRow {
	sorted := sortByF1(rows, func(r model.ResultRow) float64 { return r.F1 })

	ranked := make([]model.RankedRow, len(sorted))
	for i, r := range sorted {
		ranked[i] = model.RankedRow{Rank: i + 1, ResultRow: r}
	}
	return ranked
}

// RankAttacks ranks attack rows the same way. Callers filter to a single
// attack type first.
func RankAttacks(rows []model.AttackResultRow) []model.RankedAttackRow {
	sorted := sortByF1(rows, func(r model.AttackResultRow) float64 { return r.F1 })

	ranked := make([]model.RankedAttackRow, len(sorted))
	for i, r := range sorted {
		ranked[i] = model.RankedAttackRow{Rank: i + 1, AttackResultRow: r}
	}
	return ranked
}
