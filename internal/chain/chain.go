package chain

import "context"

// Check is one link of a chain. Evaluate returns nil to let the request
// through, or a *model.Failure describing the rejection.
type Check[R any] interface {
	Name() string
	Evaluate(ctx context.Context, req R) error
}

type checkFunc[R any] struct {
	name string
	fn   func(ctx context.Context, req R) error
}

func (c checkFunc[R]) Name() string { return c.name }

func (c checkFunc[R]) Evaluate(ctx context.Context, req R) error {
	return c.fn(ctx, req)
}

// Func adapts a plain function into a named Check.
func Func[R any](name string, fn func(ctx context.Context, req R) error) Check[R] {
	return checkFunc[R]{name: name, fn: fn}
}

// Chain is an ordered, immutable list of checks for one request kind.
type Chain[R any] struct {
	checks []Check[R]
}

func New[R any](checks ...Check[R]) *Chain[R] {
	out := make([]Check[R], 0, len(checks))
	for _, c := range checks {
		if c != nil {
			out = append(out, c)
		}
	}
	return &Chain[R]{checks: out}
}

// Then returns a new chain with check appended; c itself is left unchanged.
func (c *Chain[R]) Then(check Check[R]) *Chain[R] {
	next := make([]Check[R], 0, len(c.checks)+1)
	next = append(next, c.checks...)
	if check != nil {
		next = append(next, check)
	}
	return &Chain[R]{checks: next}
}

// Handle runs the checks in order and stops at the first rejection.
func (c *Chain[R]) Handle(ctx context.Context, req R) error {
	if c == nil {
		return nil
	}
	for _, check := range c.checks {
		if err := check.Evaluate(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

func (c *Chain[R]) Names() []string {
	names := make([]string, len(c.checks))
	for i, check := range c.checks {
		names[i] = check.Name()
	}
	return names
}
