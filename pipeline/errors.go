package pipeline

import (
	"errors"
	"fmt"
)

// ErrEmptyRegistry is a pipeline-level composition error: a run was
// asked to proceed with a DivisionRegistry that names no units at all.
// Not part of spec section 7's leaf error taxonomy (which concerns
// individual stage violations); this is an orchestration-level
// precondition.
var ErrEmptyRegistry = errors.New("pipeline: division registry has no units")

// stageError wraps an underlying leaf error with the stage name (and,
// when relevant, the unit id) it occurred in, per spec section 7's
// propagation policy: "the pipeline aborts on the first error and
// returns it unchanged" — unchanged in kind (errors.Is still matches the
// sentinel), wrapped only with stage context for operator diagnosis,
// exactly as the teacher wraps only at composition boundaries
// (matrix/errors.go's "ERROR PRIORITY" discipline, see DESIGN.md).
func stageError(stage, unitID string, err error) error {
	if unitID == "" {
		return fmt.Errorf("pipeline: stage %s: %w", stage, err)
	}
	return fmt.Errorf("pipeline: stage %s (unit %s): %w", stage, unitID, err)
}
