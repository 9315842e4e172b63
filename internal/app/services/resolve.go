package services

import (
	"context"

	"prospecta/internal/pkg/apperrors"
)

// resolveRelation turns an "id or inline object" pair into a concrete
// id. A zero id counts as absent, same as a missing one. Exactly one
// form must be supplied: an id is verified with lookup, an inline
// object is created on the spot, and both absent is an input error.
// Lookup and create report their own failures, so their errors pass
// through unchanged.
func resolveRelation[R any](
	ctx context.Context,
	id *int64,
	inline *R,
	missingMessage string,
	lookup func(ctx context.Context, id int64) error,
	create func(ctx context.Context, inline *R) (int64, error),
) (int64, error) {
	if id != nil && *id != 0 {
		if err := lookup(ctx, *id); err != nil {
			return 0, err
		}
		return *id, nil
	}

	if inline != nil {
		return create(ctx, inline)
	}

	return 0, apperrors.InvalidInput(missingMessage)
}
