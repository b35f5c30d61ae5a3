package locomotion

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	ErrBatchMismatch = errors.New("locomotion: batch length mismatch")
	ErrNilController = errors.New("locomotion: nil controller")
)

// TickAll ticks each controller with the input at the same index, running up
// to limit controllers at once (unbounded when limit <= 0). Controllers must
// be distinct; outputs are index-aligned with the inputs.
//
// The batch is all or nothing: a nil controller or a context that is already
// done is reported before any controller ticks. Once started, every
// controller ticks, so no caller sees a state change without its output.
func TickAll(ctx context.Context, ctrls []*Controller, inputs []TickInput, limit int) ([]TickOutput, error) {
	if len(ctrls) != len(inputs) {
		return nil, fmt.Errorf("%w: %d controllers, %d inputs", ErrBatchMismatch, len(ctrls), len(inputs))
	}
	for i, c := range ctrls {
		if c == nil {
			return nil, fmt.Errorf("%w: controller %d is nil", ErrNilController, i)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]TickOutput, len(ctrls))
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range ctrls {
		g.Go(func() error {
			out[i] = ctrls[i].Tick(inputs[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
