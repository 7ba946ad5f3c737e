package repository

import (
	"fmt"
	"strings"
)

// updateBuilder accumulates column assignments for a dynamically built
// partial UPDATE. Placeholders are numbered from start upwards so callers can
// reserve the lower positions for WHERE arguments.
type updateBuilder struct {
	assignments []string
	args        []any
	next        int
}

func newUpdateBuilder(start int) *updateBuilder {
	return &updateBuilder{next: start}
}

// Set adds one column assignment bound to a placeholder argument.
func (b *updateBuilder) Set(column string, value any) {
	b.assignments = append(b.assignments, fmt.Sprintf("%s = $%d", column, b.next))
	b.args = append(b.args, value)
	b.next++
}

// SetRaw adds an assignment whose right-hand side is a SQL expression rather
// than a placeholder, e.g. "updated_at = NOW()".
func (b *updateBuilder) SetRaw(assignment string) {
	b.assignments = append(b.assignments, assignment)
}

// Empty reports whether no assignments have been added.
func (b *updateBuilder) Empty() bool {
	return len(b.assignments) == 0
}

// Clause returns the comma-joined SET clause.
func (b *updateBuilder) Clause() string {
	return strings.Join(b.assignments, ", ")
}

// Args returns the placeholder arguments in the order they were added.
func (b *updateBuilder) Args() []any {
	return b.args
}
