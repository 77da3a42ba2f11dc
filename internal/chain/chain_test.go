package chain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nurpe/hr-contracts/internal/chain"
)

type probe struct {
	calls []string
}

func record[R any](p *probe, name string, err error) chain.Check[R] {
	return chain.Func(name, func(_ context.Context, _ R) error {
		p.calls = append(p.calls, name)
		return err
	})
}

func TestChain_RunsChecksInOrder(t *testing.T) {
	p := &probe{}
	c := chain.New(
		record[int](p, "first", nil),
		record[int](p, "second", nil),
		record[int](p, "third", nil),
	)

	assert.NoError(t, c.Handle(context.Background(), 1))
	assert.Equal(t, []string{"first", "second", "third"}, p.calls)
	assert.Equal(t, []string{"first", "second", "third"}, c.Names())
}

func TestChain_StopsAtFirstFailure(t *testing.T) {
	p := &probe{}
	boom := errors.New("boom")
	c := chain.New(
		record[int](p, "first", nil),
		record[int](p, "second", boom),
		record[int](p, "third", nil),
	)

	err := c.Handle(context.Background(), 1)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second"}, p.calls)
}

func TestChain_EmptySucceeds(t *testing.T) {
	assert.NoError(t, chain.New[string]().Handle(context.Background(), "x"))

	var nilChain *chain.Chain[string]
	assert.NoError(t, nilChain.Handle(context.Background(), "x"))
}

func TestChain_ThenDoesNotMutateOriginal(t *testing.T) {
	p := &probe{}
	base := chain.New(record[int](p, "base", nil))
	extended := base.Then(record[int](p, "extra", errors.New("stop")))

	assert.NoError(t, base.Handle(context.Background(), 0))
	assert.Error(t, extended.Handle(context.Background(), 0))
	assert.Equal(t, []string{"base"}, base.Names())
	assert.Equal(t, []string{"base", "extra"}, extended.Names())
}

func TestChain_SkipsNilChecks(t *testing.T) {
	c := chain.New[int](nil, chain.Func("ok", func(context.Context, int) error { return nil }))
	assert.Equal(t, []string{"ok"}, c.Names())
}
