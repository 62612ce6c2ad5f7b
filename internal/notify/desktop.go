package notify

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/gen2brain/beeep"
)

// Sender delivers a notification to the desktop.
type Sender func(title, body string) error

func beeepSend(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Desktop is a Host backed by the desktop notification service.
// Permission lives here; the UI answers pending requests via Answer.
type Desktop struct {
	mu        sync.Mutex
	supported bool
	perm      Permission
	pending   chan struct{} // closed when the outstanding request is answered
	waiters   int           // callers blocked on pending
	send      Sender
}

// DesktopOptions configure a Desktop host.
type DesktopOptions struct {
	Enabled    bool
	Permission Permission
	// Send overrides delivery; nil uses beeep.
	Send Sender
}

// NewDesktop builds a host. The capability is absent when disabled or on
// platforms without a notification service.
func NewDesktop(opts DesktopOptions) *Desktop {
	send := opts.Send
	if send == nil {
		send = beeepSend
	}
	perm := opts.Permission
	if perm == "" {
		perm = PermissionDefault
	}
	return &Desktop{
		supported: opts.Enabled && platformSupported(runtime.GOOS),
		perm:      perm,
		send:      send,
	}
}

func platformSupported(goos string) bool {
	switch goos {
	case "linux", "darwin", "windows", "freebsd", "netbsd", "openbsd":
		return true
	}
	return false
}

func (d *Desktop) Supported() bool { return d.supported }

func (d *Desktop) Permission() Permission {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.perm
}

// Pending reports whether a request is waiting for an answer.
func (d *Desktop) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

// Begin opens the prompt without waiting for an answer and reports whether
// one is open. A later RequestPermission joins it.
func (d *Desktop) Begin() bool {
	if !d.supported {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.perm != PermissionDefault {
		return false
	}
	if d.pending == nil {
		d.pending = make(chan struct{})
	}
	return true
}

// RequestPermission waits for Answer. Concurrent callers share one prompt.
// Once the permission is decided it is returned without asking again.
// The prompt closes when its last waiter gives up.
func (d *Desktop) RequestPermission(ctx context.Context) (Permission, error) {
	if !d.supported {
		return PermissionDenied, ErrUnsupported
	}
	d.mu.Lock()
	if d.perm != PermissionDefault {
		p := d.perm
		d.mu.Unlock()
		return p, nil
	}
	if d.pending == nil {
		d.pending = make(chan struct{})
	}
	wait := d.pending
	d.waiters++
	d.mu.Unlock()

	select {
	case <-wait:
		return d.Permission(), nil
	case <-ctx.Done():
		d.mu.Lock()
		if d.pending == wait {
			d.waiters--
			if d.waiters == 0 {
				d.pending = nil
			}
		}
		d.mu.Unlock()
		return PermissionDefault, fmt.Errorf("permission request: %w", ctx.Err())
	}
}

// Answer resolves the outstanding request. Answering default means the
// prompt was dismissed: waiters wake up and the permission stays undecided.
func (d *Desktop) Answer(p Permission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p == PermissionGranted || p == PermissionDenied {
		d.perm = p
	}
	if d.pending != nil {
		close(d.pending)
		d.pending = nil
		d.waiters = 0
	}
}

func (d *Desktop) Show(n Notification) error {
	if !d.supported {
		return ErrUnsupported
	}
	if d.Permission() != PermissionGranted {
		return ErrNotGranted
	}
	if err := d.send(n.Title, n.Body); err != nil {
		return fmt.Errorf("desktop notify: %w", err)
	}
	return nil
}
