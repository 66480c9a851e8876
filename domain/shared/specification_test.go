package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecificationComposition(t *testing.T) {
	ctx := context.Background()
	even := SpecFunc[int](func(_ context.Context, n int) bool { return n%2 == 0 })
	positive := SpecFunc[int](func(_ context.Context, n int) bool { return n > 0 })
	nums := []int{-4, -1, 0, 3, 6}

	assert.Equal(t, []int{6}, Filter(ctx, And[int](even, positive), nums))
	assert.Equal(t, []int{-4, 0, 3, 6}, Filter(ctx, Or[int](even, positive), nums))
	assert.Equal(t, []int{-1, 3}, Filter(ctx, Not[int](even), nums))
	assert.Empty(t, Filter(ctx, even, nil))
}
