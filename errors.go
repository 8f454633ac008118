package kvec

import (
	"github.com/hupe1980/kvec/internal/errs"
	"github.com/hupe1980/kvec/kmeans"
)

var (
	// ErrInvalidArgument marks violated preconditions such as mismatched
	// dimensions, k out of range or labels outside the category range.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrDomain marks numeric failures such as empty clusters or an undefined score.
	ErrDomain = errs.ErrDomain

	// ErrDataFormat marks malformed dataset records.
	ErrDataFormat = errs.ErrDataFormat

	// ErrNotConverged is returned when the iteration cap is reached before convergence.
	ErrNotConverged = kmeans.ErrNotConverged
)
