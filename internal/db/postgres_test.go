package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCommitWithoutTransactionRunsImmediately(t *testing.T) {
	ran := false

	AfterCommit(context.Background(), func() { ran = true })
	assert.True(t, ran)
}

func TestAfterCommitDefersUntilTransactionCommits(t *testing.T) {
	state := &txState{}
	ctx := context.WithValue(context.Background(), txKey{}, state)

	var order []int
	AfterCommit(ctx, func() { order = append(order, 1) })
	AfterCommit(ctx, func() { order = append(order, 2) })

	require.Empty(t, order, "callbacks must not run before the commit")

	state.runAfterCommit()
	assert.Equal(t, []int{1, 2}, order)
}

func TestAfterCommitJoinedContextSharesOuterState(t *testing.T) {
	state := &txState{}
	ctx := context.WithValue(context.Background(), txKey{}, state)

	// A nested WithTransaction joins by passing the same context on, so
	// callbacks registered there land on the outermost state.
	nested := context.WithValue(ctx, struct{ k string }{"other"}, "value")

	ran := false
	AfterCommit(nested, func() { ran = true })

	require.False(t, ran)
	require.Len(t, state.afterCommit, 1)

	state.runAfterCommit()
	assert.True(t, ran)
}
