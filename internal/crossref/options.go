package crossref

import "fmt"

// RebuildPolicy controls what happens to existing cell values when an
// axis is replaced.
type RebuildPolicy int

const (
	// Wipe discards every cell on an axis change, so all cells hold the
	// zero value afterwards, including cells whose keys survived.
	Wipe RebuildPolicy = iota

	// Preserve copies forward each cell whose row and column keys both
	// exist in the new axes. Only new cells get the zero value.
	Preserve
)

func (p RebuildPolicy) String() string {
	switch p {
	case Wipe:
		return "wipe"
	case Preserve:
		return "preserve"
	default:
		return fmt.Sprintf("RebuildPolicy(%d)", int(p))
	}
}

// ParseRebuildPolicy takes "wipe" or "preserve" and returns the policy.
func ParseRebuildPolicy(s string) (RebuildPolicy, error) {
	switch s {
	case "wipe":
		return Wipe, nil
	case "preserve":
		return Preserve, nil
	default:
		return Wipe, invalidArgumentf("rebuild policy %q (must be \"wipe\" or \"preserve\")", s)
	}
}

type options struct {
	policy RebuildPolicy
}

// Option configures a Table at construction time.
type Option func(*options)

// WithRebuildPolicy sets the policy applied by SetRows, SetColumns,
// AddRows and AddColumns. The default is Wipe.
func WithRebuildPolicy(p RebuildPolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}
