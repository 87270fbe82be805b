package controllers

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultSuccessTTL is how long a success notice stays visible
const DefaultSuccessTTL = 2 * time.Second

// ErrSubmitInFlight is returned when a submit arrives while another one
// for the same form is still outstanding.
var ErrSubmitInFlight = errors.New("a submit is already in flight")

// ListFunc fetches the full resource list
type ListFunc[T any] func(ctx context.Context) ([]T, error)

// CreateFunc creates one entity and returns the server's representation
type CreateFunc[T, P any] func(ctx context.Context, params P) (*T, error)

// ValidateFunc checks a create payload locally before any request is sent
type ValidateFunc[P any] func(params P) error

// Controller is the list/create state machine every resource page runs
// on: load a list into memory, submit a create form, append the created
// entity, surface error and transient success messages. The server's
// returned representation is appended verbatim; the list is never
// re-fetched to reconcile.
type Controller[T, P any] struct {
	mu       sync.Mutex
	list     ListFunc[T]
	create   CreateFunc[T, P]
	validate ValidateFunc[P]

	successMsg string
	successTTL time.Duration

	items      []T
	loading    bool
	loadErr    error
	submitting bool
	formErr    error
	success    string
	timer      *time.Timer
}

// Option configures a Controller
type Option func(*controllerOptions)

type controllerOptions struct {
	successTTL time.Duration
}

// WithSuccessTTL overrides how long the success notice stays up
func WithSuccessTTL(d time.Duration) Option {
	return func(o *controllerOptions) {
		o.successTTL = d
	}
}

// New creates a controller for one resource page. successMsg is the
// notice shown after a successful create.
func New[T, P any](successMsg string, list ListFunc[T], create CreateFunc[T, P], validate ValidateFunc[P], opts ...Option) *Controller[T, P] {
	options := controllerOptions{successTTL: DefaultSuccessTTL}
	for _, opt := range opts {
		opt(&options)
	}

	return &Controller[T, P]{
		list:       list,
		create:     create,
		validate:   validate,
		successMsg: successMsg,
		successTTL: options.successTTL,
	}
}

// Load fetches the list and replaces the in-memory copy. A fetch
// failure sets the controller's load error slot and leaves any
// previously loaded items in place.
func (c *Controller[T, P]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.list(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.loadErr = err
		return err
	}
	c.loadErr = nil
	c.items = items
	return nil
}

// Submit validates params locally, calls the create operation and, on
// success, appends the returned entity and raises the success notice.
// Invalid params never reach the network. Only one submit may be in
// flight at a time.
func (c *Controller[T, P]) Submit(ctx context.Context, params P) (*T, error) {
	if c.validate != nil {
		if err := c.validate(params); err != nil {
			c.mu.Lock()
			c.formErr = err
			c.success = ""
			c.mu.Unlock()
			return nil, err
		}
	}

	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.submitting = true
	c.formErr = nil
	c.success = ""
	c.mu.Unlock()

	item, err := c.create(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		c.formErr = err
		return nil, err
	}

	c.items = append(c.items, *item)
	c.success = c.successMsg
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.successTTL, c.clearSuccess)
	return item, nil
}

// Snapshot is a consistent copy of the controller state for rendering
type Snapshot[T any] struct {
	Items      []T
	Loading    bool
	LoadErr    error
	Submitting bool
	FormErr    error
	Success    string
}

// Snapshot returns a copy of the current state
func (c *Controller[T, P]) Snapshot() Snapshot[T] {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]T, len(c.items))
	copy(items, c.items)

	return Snapshot[T]{
		Items:      items,
		Loading:    c.loading,
		LoadErr:    c.loadErr,
		Submitting: c.submitting,
		FormErr:    c.formErr,
		Success:    c.success,
	}
}

// Items returns a copy of the loaded list
func (c *Controller[T, P]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Controller[T, P]) clearSuccess() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.success = ""
}
