package graphmodel

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidArgument is the sentinel every graphkit kernel wraps a
// validation failure in. Callers branch on it with errors.Is; the wrapped
// message carries the offending field.
var ErrInvalidArgument = errors.New("graphkit: invalid argument")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateNodes runs struct-tag validation over every node (required
// ID/Type, non-negative Weight when present) and wraps the first failure
// as ErrInvalidArgument. Duplicate IDs are permitted, so this never checks
// uniqueness — callers needing uniqueness (e.g. analysis.Validate) dedupe
// themselves.
func ValidateNodes(nodes []Node) error {
	for i := range nodes {
		if err := validate.Struct(nodes[i]); err != nil {
			return fmt.Errorf("%w: node[%d]: %v", ErrInvalidArgument, i, err)
		}
	}

	return nil
}

// ValidateEdges runs struct-tag validation over every edge (required
// From/To/Type, non-negative Weight, LossPercentage clamped to [0,100],
// each only when present) and wraps the first failure as
// ErrInvalidArgument. Dangling endpoints are permitted, so From/To are
// only checked to be non-empty strings, never that they resolve to a known
// node.
func ValidateEdges(edges []Edge) error {
	for i := range edges {
		if err := validate.Struct(edges[i]); err != nil {
			return fmt.Errorf("%w: edge[%d]: %v", ErrInvalidArgument, i, err)
		}
	}

	return nil
}
