package resources

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/client/client"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// Repository is the subset of a resource repository the controller drives.
type Repository[T Identifiable] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id int64, item T) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Controller serializes FetchAll, Create, Update and Delete: a call issued
// while another is in flight waits its turn, or gives up with
// client.KindCancelled / client.KindTimeout when its context ends first.
// Results that arrive after the caller's context was cancelled are dropped.
//
// Listeners are called synchronously after each replacement, in order, and
// must not invoke controller operations from the callback.
type Controller[T Identifiable] struct {
	repo Repository[T]
	log  logging.Logger

	sem   chan struct{}
	pubMu sync.Mutex

	mu        sync.RWMutex
	state     ListState[T]
	listeners map[int]func(ListState[T])
	nextID    int
}

func NewController[T Identifiable](repo Repository[T], log logging.Logger) *Controller[T] {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller[T]{
		repo:      repo,
		log:       log.With("component", "resources"),
		sem:       make(chan struct{}, 1),
		state:     ListState[T]{Items: []T{}},
		listeners: make(map[int]func(ListState[T])),
	}
}

func (c *Controller[T]) State() ListState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// FetchAll replaces Items with the repository listing. On failure the
// previous Items are kept.
func (c *Controller[T]) FetchAll(ctx context.Context) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	c.publish(func(s ListState[T]) ListState[T] {
		s.ErrorMessage, s.ErrorKind = "", ""
		s.IsLoading = true
		return s
	})

	items, err := c.repo.List(ctx)
	if dropped, derr := discarded(ctx, err); dropped {
		c.publish(func(s ListState[T]) ListState[T] {
			s.IsLoading = false
			return s
		})
		return derr
	}
	if err != nil {
		c.log.Warn(ctx, "fetch failed", "error", err)
		c.publish(func(s ListState[T]) ListState[T] {
			s.IsLoading = false
			return withError(s, err)
		})
		return err
	}

	c.publish(func(s ListState[T]) ListState[T] {
		s.Items = slices.Clone(items)
		if s.Items == nil {
			s.Items = []T{}
		}
		s.IsLoading = false
		return s
	})
	return nil
}

// Create appends the server's copy of item to the end of Items.
func (c *Controller[T]) Create(ctx context.Context, item T) (T, error) {
	var zero T
	if err := c.acquire(ctx); err != nil {
		return zero, err
	}
	defer c.release()

	created, err := c.repo.Create(ctx, item)
	if err := c.settle(ctx, "create", err); err != nil {
		return zero, err
	}

	c.publish(func(s ListState[T]) ListState[T] {
		s.Items = append(slices.Clone(s.Items), created)
		return s
	})
	return created, nil
}

// Update replaces the item with the given id in place. Items without a
// match are left as they are.
func (c *Controller[T]) Update(ctx context.Context, id int64, item T) (T, error) {
	var zero T
	if err := c.acquire(ctx); err != nil {
		return zero, err
	}
	defer c.release()

	updated, err := c.repo.Update(ctx, id, item)
	if err := c.settle(ctx, "update", err); err != nil {
		return zero, err
	}

	c.publish(func(s ListState[T]) ListState[T] {
		items := slices.Clone(s.Items)
		for i := range items {
			if items[i].GetID() == id {
				items[i] = updated
			}
		}
		s.Items = items
		return s
	})
	return updated, nil
}

// Delete removes the item with the given id.
func (c *Controller[T]) Delete(ctx context.Context, id int64) error {
	if err := c.acquire(ctx); err != nil {
		return err
	}
	defer c.release()

	err := c.repo.Delete(ctx, id)
	if err := c.settle(ctx, "delete", err); err != nil {
		return err
	}

	c.publish(func(s ListState[T]) ListState[T] {
		s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(it T) bool { return it.GetID() == id })
		return s
	})
	return nil
}

// ClearError drops the error without touching Items or IsLoading. It does
// not wait for an in-flight operation.
func (c *Controller[T]) ClearError() {
	c.publish(func(s ListState[T]) ListState[T] {
		s.ErrorMessage, s.ErrorKind = "", ""
		return s
	})
}

// Subscribe registers fn for every state replacement and returns a function
// that removes it.
func (c *Controller[T]) Subscribe(fn func(ListState[T])) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}

// settle folds a failed mutation into the state. It returns nil when the
// caller should apply the result.
func (c *Controller[T]) settle(ctx context.Context, op string, err error) error {
	if dropped, derr := discarded(ctx, err); dropped {
		return derr
	}
	if err != nil {
		c.log.Warn(ctx, op+" failed", "error", err)
		c.publish(func(s ListState[T]) ListState[T] { return withError(s, err) })
		return err
	}
	return nil
}

func (c *Controller[T]) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return client.Classify(ctx, err, 0, nil)
	}
	select {
	case c.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return client.Classify(ctx, ctx.Err(), 0, nil)
	}
}

func (c *Controller[T]) release() {
	<-c.sem
}

func (c *Controller[T]) publish(fn func(ListState[T]) ListState[T]) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	c.mu.Lock()
	next := fn(c.state)
	c.state = next
	fns := make([]func(ListState[T]), 0, len(c.listeners))
	for _, l := range c.listeners {
		fns = append(fns, l)
	}
	c.mu.Unlock()

	for _, l := range fns {
		l(next)
	}
}

// discarded reports whether a completion belongs to a cancelled call. The
// returned error is the Cancelled error handed back to the caller.
func discarded(ctx context.Context, err error) (bool, error) {
	if errors.Is(err, client.ErrCancelled) {
		return true, err
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return true, client.Classify(ctx, ctx.Err(), 0, nil)
	}
	return false, nil
}

func withError[T Identifiable](s ListState[T], err error) ListState[T] {
	var e *client.Error
	if errors.As(err, &e) {
		s.ErrorKind = e.Kind
		s.ErrorMessage = e.Error()
		return s
	}
	s.ErrorKind = client.KindUnknown
	s.ErrorMessage = fmt.Sprintf("%s: %v", client.KindUnknown, err)
	return s
}
