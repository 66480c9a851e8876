// Package specification turns domain specifications into GORM where clauses.
package specification

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ecommerce/domain/shared"
)

// Leaf translates one concrete specification. ok is false for predicates
// that only exist in memory.
type Leaf[T any] func(spec shared.Specification[T]) (expr clause.Expression, ok bool)

// Translate walks the And/Or/Not tree. The returned expression may be nil
// (nothing can be pushed down); exact reports whether it is equivalent to
// spec or only a superset that must still be filtered in memory.
func Translate[T any](spec shared.Specification[T], leaf Leaf[T]) (expr clause.Expression, exact bool) {
	switch s := spec.(type) {
	case nil:
		return nil, true
	case shared.AndSpecification[T]:
		left, leftExact := Translate(s.Left, leaf)
		right, rightExact := Translate(s.Right, leaf)
		switch {
		case left == nil:
			return right, false
		case right == nil:
			return left, false
		}
		return clause.And(left, right), leftExact && rightExact
	case shared.OrSpecification[T]:
		left, leftExact := Translate(s.Left, leaf)
		right, rightExact := Translate(s.Right, leaf)
		if left == nil || right == nil || !leftExact || !rightExact {
			return nil, false
		}
		return clause.Or(left, right), true
	case shared.NotSpecification[T]:
		inner, innerExact := Translate(s.Spec, leaf)
		if inner == nil || !innerExact {
			return nil, false
		}
		return clause.Not(inner), true
	default:
		e, ok := leaf(spec)
		if !ok {
			return nil, false
		}
		return e, true
	}
}

// Apply adds the translated clause to db and returns whether the caller still
// has to filter the rows in memory.
func Apply[T any](db *gorm.DB, spec shared.Specification[T], leaf Leaf[T]) (*gorm.DB, bool) {
	expr, exact := Translate(spec, leaf)
	if expr != nil {
		db = db.Clauses(clause.Where{Exprs: []clause.Expression{expr}})
	}
	return db, !exact
}

// Refine filters candidates when the query was only an approximation.
func Refine[T any](ctx context.Context, spec shared.Specification[T], candidates []T, needed bool) []T {
	if !needed || spec == nil {
		return candidates
	}
	return shared.Filter(ctx, spec, candidates)
}
