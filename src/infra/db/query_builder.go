package db

import (
	"fmt"
	"strconv"
	"strings"
)

// bindMarker is the unnumbered placeholder clauses are written with.
const bindMarker = "$?"

// Predicate is a single condition holding exactly one bindMarker and the
// value bound to it.
type Predicate struct {
	SQL string
	Arg any
}

// QueryBuilder renders a statement line by line. Every bindMarker is
// rewritten to $N where N is the argument's final position, so clauses can
// be appended conditionally without renumbering by hand.
type QueryBuilder struct {
	sql  strings.Builder
	args []any
}

// Add appends one clause and binds args to its markers in order.
// A marker/argument count mismatch is a programming error and panics.
func (qb *QueryBuilder) Add(clause string, args ...any) {
	if n := strings.Count(clause, bindMarker); n != len(args) {
		panic(fmt.Sprintf("db: clause %q has %d placeholders, got %d args", clause, n, len(args)))
	}

	rest := clause
	for _, arg := range args {
		i := strings.Index(rest, bindMarker)
		qb.sql.WriteString(rest[:i])
		qb.args = append(qb.args, arg)
		qb.sql.WriteByte('$')
		qb.sql.WriteString(strconv.Itoa(len(qb.args)))
		rest = rest[i+len(bindMarker):]
	}
	qb.sql.WriteString(rest)
	qb.sql.WriteByte('\n')
}

// Conditions appends keyword followed by preds joined with AND, e.g.
// "WHERE a = $1 AND b = $2". Nothing is written when preds is empty.
func (qb *QueryBuilder) Conditions(keyword string, preds []Predicate) {
	if len(preds) == 0 {
		return
	}
	conds := make([]string, 0, len(preds))
	args := make([]any, 0, len(preds))
	for _, p := range preds {
		conds = append(conds, p.SQL)
		args = append(args, p.Arg)
	}
	qb.Add(keyword+" "+strings.Join(conds, " AND "), args...)
}

func (qb *QueryBuilder) String() string {
	return qb.sql.String()
}

func (qb *QueryBuilder) Args() []any {
	return qb.args
}
