package ws

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"netplas-inventory/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	fail     bool
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("broken pipe")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) received() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func TestHubBroadcastsPublishedEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	good, bad := &fakeConn{}, &fakeConn{fail: true}
	hub.Register <- good
	hub.Register <- bad

	hub.Publish(events.New(events.TypeInventory, "product", events.ActionCreated, 1, "Bottle", nil))

	require.Eventually(t, func() bool { return good.received() == 1 }, time.Second, 10*time.Millisecond)
	require.Eventually(t, bad.isClosed, time.Second, 10*time.Millisecond)

	var e events.Event
	good.mu.Lock()
	require.NoError(t, json.Unmarshal(good.messages[0], &e))
	good.mu.Unlock()
	assert.Equal(t, "product", e.Entity)
	assert.Equal(t, "Bottle", e.Name)
}

func TestHubPublishDropsWhenQueueFull(t *testing.T) {
	hub := NewHub()
	for i := 0; i < cap(hub.Broadcast)+5; i++ {
		hub.Publish(events.New(events.TypeUser, "user", events.ActionCreated, uint(i), "", nil))
	}
	assert.Len(t, hub.Broadcast, cap(hub.Broadcast))
}

// readingConn blocks in ReadMessage until hangUp is called.
type readingConn struct {
	fakeConn
	gone chan struct{}
}

func newReadingConn() *readingConn {
	return &readingConn{gone: make(chan struct{})}
}

func (r *readingConn) ReadMessage() (int, []byte, error) {
	<-r.gone
	return 0, nil, errors.New("connection closed")
}

func (r *readingConn) hangUp() { close(r.gone) }

func served(hub *Hub, c reader) <-chan struct{} {
	finished := make(chan struct{})
	go func() {
		hub.serve(c)
		close(finished)
	}()
	return finished
}

func TestServeUnregistersOnDisconnect(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	conn := newReadingConn()
	finished := served(hub, conn)
	require.Eventually(t, func() bool {
		hub.mutex.Lock()
		defer hub.mutex.Unlock()
		return hub.Clients[conn]
	}, time.Second, 10*time.Millisecond)

	conn.hangUp()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("serve did not return after the client hung up")
	}
	require.Eventually(t, conn.isClosed, time.Second, 10*time.Millisecond)
}

func TestServeReturnsAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	conn := newReadingConn()
	finished := served(hub, conn)
	require.Eventually(t, func() bool {
		hub.mutex.Lock()
		defer hub.mutex.Unlock()
		return hub.Clients[conn]
	}, time.Second, 10*time.Millisecond)

	hub.Stop()
	require.Eventually(t, conn.isClosed, time.Second, 10*time.Millisecond)

	// The client leaves after Run is gone; unregistering must not hang
	conn.hangUp()
	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("serve blocked unregistering from a stopped hub")
	}

	// A client arriving after shutdown is turned away
	late := newReadingConn()
	select {
	case <-served(hub, late):
	case <-time.After(time.Second):
		t.Fatal("serve blocked registering with a stopped hub")
	}
	assert.False(t, late.isClosed())
}
