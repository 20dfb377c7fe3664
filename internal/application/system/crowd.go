package system

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/younwookim/platformer/internal/domain/entity"
)

// Crowd steps many independent controllers concurrently. Controllers share
// the read-only world query and nothing else, so each tick's result is the
// same as stepping them one after another.
type Crowd struct {
	members []*Controller
	limit   int
}

// NewCrowd creates a crowd that runs at most limit controllers at once.
// A limit below 1 means no limit.
func NewCrowd(limit int, members ...*Controller) *Crowd {
	if limit < 1 {
		limit = -1
	}
	return &Crowd{members: members, limit: limit}
}

// Add appends a controller and returns its index.
func (c *Crowd) Add(ctrl *Controller) int {
	c.members = append(c.members, ctrl)
	return len(c.members) - 1
}

// Len returns the number of controllers.
func (c *Crowd) Len() int {
	return len(c.members)
}

// Member returns the controller at index i.
func (c *Crowd) Member(i int) *Controller {
	return c.members[i]
}

// Set replaces the controller at index i.
func (c *Crowd) Set(i int, ctrl *Controller) {
	c.members[i] = ctrl
}

// Step ticks every controller with its own input. inputs must have one entry
// per controller.
func (c *Crowd) Step(ctx context.Context, inputs []entity.RawInput, now, dt float64) ([]entity.Frame, error) {
	if len(inputs) != len(c.members) {
		return nil, fmt.Errorf("crowd: got %d inputs for %d controllers", len(inputs), len(c.members))
	}

	frames := make([]entity.Frame, len(c.members))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.limit)
	for i, m := range c.members {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frames[i] = m.Tick(inputs[i], now, dt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("crowd step: %w", err)
	}
	return frames, nil
}
