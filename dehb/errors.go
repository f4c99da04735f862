package dehb

import "fmt"

// ErrInvalidStrategy is returned at construction time when Options.Strategy
// does not name a known mutation/crossover pair.
type ErrInvalidStrategy struct {
	Strategy string
}

func (e *ErrInvalidStrategy) Error() string {
	return fmt.Sprintf("dehb: unknown strategy %q", e.Strategy)
}

// ErrInsufficientPopulation is returned at construction time when PopSize is
// smaller than the minimum distinct-parent count the chosen strategy needs.
type ErrInsufficientPopulation struct {
	Strategy string
	PopSize  int
	MinSize  int
}

func (e *ErrInsufficientPopulation) Error() string {
	return fmt.Sprintf("dehb: strategy %q requires pop size >= %d, got %d", e.Strategy, e.MinSize, e.PopSize)
}

// ErrInvalidResult is returned from Tell/objective evaluation when the
// reported fitness or cost violates the objective contract (§6).
type ErrInvalidResult struct {
	Reason string
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("dehb: invalid objective result: %s", e.Reason)
}

func wrapObjective(err error) error {
	return fmt.Errorf("dehb: objective evaluation failed: %w", err)
}
