package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userdesk/internal/logging"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Controller runs the session state machine over a Store.
//
// The restore started by NewController runs once in the background and does
// not block Login or Logout: an explicit transition made while the state is
// still loading wins, and the restore result is then dropped. Login and
// Logout are serialized with each other. Listeners run on the goroutine that
// made the transition, in transition order, and must not call Login or
// Logout synchronously.
type Controller struct {
	store Store
	log   logging.Logger

	// sem serializes Login and Logout.
	sem   chan struct{}
	ready chan struct{}
	pubMu sync.Mutex

	mu         sync.RWMutex
	state      State
	explicit   bool
	restoreErr error
	listeners  map[int]func(State)
	nextID     int
}

// NewController starts restoring the persisted session in the background.
// ctx bounds the restore only.
func NewController(ctx context.Context, store Store, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	c := &Controller{
		store:     store,
		log:       log.With("component", "session"),
		sem:       make(chan struct{}, 1),
		ready:     make(chan struct{}),
		state:     loading(),
		listeners: make(map[int]func(State)),
	}

	go c.restore(ctx)
	return c
}

func (c *Controller) restore(ctx context.Context) {
	defer close(c.ready)

	next := anonymous()
	st, err := c.store.Restore(ctx)
	switch {
	case err != nil:
		c.log.Error(ctx, "session restore failed", "error", err)
	case st != nil && st.IsAuthenticated && st.Username != "":
		next = authenticated(st.Username)
	}

	c.mu.Lock()
	c.restoreErr = err
	c.mu.Unlock()

	if !c.publish(next, false) {
		c.log.Info(ctx, "restored session dropped, state already changed")
		return
	}
	if next.IsAuthenticated {
		c.log.Info(ctx, "session restored", "username", next.Username)
	} else if err == nil {
		c.log.Info(ctx, "no stored session")
	}
}

// Ready is closed once the restore transition has completed.
func (c *Controller) Ready() <-chan struct{} {
	return c.ready
}

// RestoreErr reports why the restore fell back to anonymous, if it failed.
func (c *Controller) RestoreErr() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.restoreErr
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Login accepts any non-empty username/password pair and persists the
// session. On ErrInvalidCredentials or a store failure the state is unchanged.
func (c *Controller) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	select {
	case c.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer c.release()

	if err := c.store.Save(ctx, username); err != nil {
		c.log.Error(ctx, "login failed", "username", username, "error", err)
		return fmt.Errorf("login: %w", err)
	}

	c.log.Info(ctx, "logged in", "username", username)
	c.publish(authenticated(username), true)
	return nil
}

// Logout always ends anonymous, also while the session is still loading.
// Store errors are logged, never returned.
func (c *Controller) Logout(ctx context.Context) {
	c.sem <- struct{}{}
	defer c.release()

	if err := c.store.Clear(context.WithoutCancel(ctx)); err != nil {
		c.log.Warn(ctx, "clearing stored session failed", "error", err)
	}

	c.log.Info(ctx, "logged out")
	c.publish(anonymous(), true)
}

// Subscribe registers fn for every state replacement and returns a function
// that removes it.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
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

func (c *Controller) release() {
	<-c.sem
}

// publish replaces the state and notifies listeners. A restore (explicit
// false) is dropped once an explicit transition has been published; the
// return value reports whether next was applied.
func (c *Controller) publish(next State, explicit bool) bool {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	c.mu.Lock()
	if !explicit && c.explicit {
		c.mu.Unlock()
		return false
	}
	c.explicit = c.explicit || explicit
	c.state = next
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(next)
	}
	return true
}
