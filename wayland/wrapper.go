// Package wayland serializes access to a wl display so protocol objects can
// be used from outside the event loop.
package wayland

import (
	"os"

	"codeberg.org/tesselslate/wl"
)

// The wl library dispatches events on whichever goroutine calls Dispatch,
// and its write queue is not goroutine-safe. All object methods, including
// those invoked from listeners, must therefore run either inside
// [Connection.Do] (which blocks the loop) or [Connection.Enqueue] (which
// runs after all pending events on the loop goroutine). Any error returned
// from either is fatal and closes the connection.

// Connection owns a wl display and its event loop goroutine.
type Connection struct {
	done      chan struct{}
	closed    chan struct{}
	closedErr error
	mu        chan struct{} // guards the display write queue; chan so Do can also select on closed
	display   *wl.Display
}

// Connect opens the named wayland display (empty for $WAYLAND_DISPLAY) and
// starts its event loop.
func Connect(name string) (*Connection, error) {
	display, err := wl.NewDisplay(name)
	if err != nil {
		return nil, err
	}
	c := &Connection{
		done:    make(chan struct{}),
		closed:  make(chan struct{}),
		mu:      make(chan struct{}, 1),
		display: display,
	}
	go c.run()
	c.mu <- struct{}{}
	return c, nil
}

func (c *Connection) run() {
	defer close(c.done)
	for {
		// Flush anything queued since the last dispatch.
		if err := c.Do(func() error { return nil }); err != nil {
			return // Do already recorded the failure
		}
		if err := c.display.Dispatch(); err != nil {
			c.fail(err)
			return
		}
	}
}

// Registry binds the display registry with the given listener.
func (c *Connection) Registry(cb wl.RegistryListener) error {
	return c.Do(func() error {
		registry := c.display.GetRegistry()
		registry.SetListener(cb, nil)
		return nil
	})
}

// Do runs fn while holding the write queue, blocking the event loop and any
// other Do call, then flushes. It is not re-entrant: calling it from within
// Do or Enqueue deadlocks. A returned error is fatal.
func (c *Connection) Do(fn func() error) error {
	select {
	case <-c.closed:
		if c.closedErr != nil {
			return c.closedErr
		}
		return os.ErrClosed
	case <-c.mu: // lock
	}
	if err := fn(); err != nil {
		c.failLocked(err)
		return err
	}
	if err := c.display.Flush(); err != nil {
		c.failLocked(err)
		return err
	}
	c.mu <- struct{}{} // unlock
	return nil
}

// Enqueue waits for every event issued so far to be processed, then runs fn
// on the event loop under the same rules as Do. A returned error is fatal.
func (c *Connection) Enqueue(fn func() error) error {
	done := make(chan struct{})
	// The sync callback fires only after the server has processed
	// everything sent before it, which is what makes this a barrier.
	if err := c.Do(func() error {
		cb := c.display.Sync()
		cb.SetListener(wl.CallbackListener{
			Done: func(data any, self wl.Callback, callbackData uint32) error {
				defer close(done)
				return c.Do(fn)
			},
		}, nil)
		return nil
	}); err != nil {
		return err
	}
	<-done
	return nil
}

// Close closes the connection if it is still open and waits for the event
// loop to exit.
func (c *Connection) Close() {
	c.fail(nil)
	<-c.done
}

// Closed blocks until the connection is closed and returns the fatal error,
// if any.
func (c *Connection) Closed() error {
	<-c.closed
	return c.closedErr
}

func (c *Connection) fail(err error) {
	select {
	case <-c.closed:
		return
	case <-c.mu:
		// Deliberately left locked so closed stays the only selectable
		// case from here on.
	}
	c.failLocked(err)
}

func (c *Connection) failLocked(err error) {
	select {
	case <-c.closed:
		return
	default:
	}
	defer func() {
		c.closedErr = err
		close(c.closed)
	}()
	c.display.Close()
}
