package shared

import "context"

// Specification encapsulates a business predicate over T. Repositories may
// translate known specifications into queries; everything else can filter
// in memory.
type Specification[T any] interface {
	IsSatisfiedBy(ctx context.Context, candidate T) bool
}

// SpecFunc lifts a plain predicate into a Specification.
type SpecFunc[T any] func(ctx context.Context, candidate T) bool

func (f SpecFunc[T]) IsSatisfiedBy(ctx context.Context, candidate T) bool {
	return f(ctx, candidate)
}

type AndSpecification[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (s AndSpecification[T]) IsSatisfiedBy(ctx context.Context, candidate T) bool {
	return s.Left.IsSatisfiedBy(ctx, candidate) && s.Right.IsSatisfiedBy(ctx, candidate)
}

func And[T any](left, right Specification[T]) Specification[T] {
	return AndSpecification[T]{Left: left, Right: right}
}

type OrSpecification[T any] struct {
	Left  Specification[T]
	Right Specification[T]
}

func (s OrSpecification[T]) IsSatisfiedBy(ctx context.Context, candidate T) bool {
	return s.Left.IsSatisfiedBy(ctx, candidate) || s.Right.IsSatisfiedBy(ctx, candidate)
}

func Or[T any](left, right Specification[T]) Specification[T] {
	return OrSpecification[T]{Left: left, Right: right}
}

type NotSpecification[T any] struct {
	Spec Specification[T]
}

func (s NotSpecification[T]) IsSatisfiedBy(ctx context.Context, candidate T) bool {
	return !s.Spec.IsSatisfiedBy(ctx, candidate)
}

func Not[T any](inner Specification[T]) Specification[T] {
	return NotSpecification[T]{Spec: inner}
}

// Filter keeps the candidates satisfying spec.
func Filter[T any](ctx context.Context, spec Specification[T], candidates []T) []T {
	out := make([]T, 0, len(candidates))
	for _, c := range candidates {
		if spec.IsSatisfiedBy(ctx, c) {
			out = append(out, c)
		}
	}
	return out
}
