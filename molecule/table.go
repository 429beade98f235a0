// SPDX-License-Identifier: MIT
//
// File: table.go
// Role: Generic row table backing per-entity attributes.
// Policy:
//   - insert and remove are the only mutators that change the row count.
//   - Row order is insertion order; removal is stable.

package molecule

// table stores one row per entity. Keeping every attribute of an entity in
// one row means no two attribute columns can drift apart in length.
type table[R any] struct {
	rows []R
}

// size returns the number of rows.
func (t *table[R]) size() int { return len(t.rows) }

// at returns a pointer to row i. Callers validate i.
func (t *table[R]) at(i int) *R { return &t.rows[i] }

// insert appends r and returns its index.
func (t *table[R]) insert(r R) int {
	t.rows = append(t.rows, r)

	return len(t.rows) - 1
}

// remove deletes row i, shifting higher rows down by one, and returns it.
func (t *table[R]) remove(i int) R {
	r := t.rows[i]
	copy(t.rows[i:], t.rows[i+1:])
	var zero R
	t.rows[len(t.rows)-1] = zero
	t.rows = t.rows[:len(t.rows)-1]

	return r
}

// removeIf deletes, in one stable pass, every row for which drop returns
// true, and returns the dropped rows in their original order. Surviving rows
// are visited too, so drop may also rewrite them in place.
func (t *table[R]) removeIf(drop func(r *R) bool) []R {
	var dropped []R
	kept := 0
	var i int
	for i = range t.rows {
		if drop(&t.rows[i]) {
			dropped = append(dropped, t.rows[i])
			continue
		}
		t.rows[kept] = t.rows[i]
		kept++
	}
	var zero R
	for i = kept; i < len(t.rows); i++ {
		t.rows[i] = zero
	}
	t.rows = t.rows[:kept]

	return dropped
}

// clone returns an independent copy. Rows are copied by value.
func (t *table[R]) clone() table[R] {
	return table[R]{rows: append([]R(nil), t.rows...)}
}
