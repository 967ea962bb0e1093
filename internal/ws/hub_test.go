package ws

import (
	"errors"
	"testing"
)

// fakeConn records delivered messages and can be flipped into a failing
// state to simulate a dead transport.
type fakeConn struct {
	name     string
	messages [][]byte
	fail     bool
	closed   bool
}

func (f *fakeConn) WriteMessage(_ int, data []byte) error {
	if f.fail {
		return errors.New("transport closed")
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestHub_BroadcastExcludesSender(t *testing.T) {
	h := NewHub("orders")
	a := &fakeConn{name: "a"}
	b := &fakeConn{name: "b"}
	c := &fakeConn{name: "c"}
	h.Admit(a)
	h.Admit(b)
	h.Admit(c)

	h.Broadcast([]byte(`{"order_id":1}`), a)

	if len(a.messages) != 0 {
		t.Fatalf("excluded sender received %d messages", len(a.messages))
	}
	if len(b.messages) != 1 || len(c.messages) != 1 {
		t.Fatalf("expected exactly one delivery to b and c, got %d and %d", len(b.messages), len(c.messages))
	}
	if string(b.messages[0]) != `{"order_id":1}` {
		t.Fatalf("unexpected payload: %s", b.messages[0])
	}
}

func TestHub_FailedMemberIsClosedAndEvicted(t *testing.T) {
	h := NewHub("orders")
	a := &fakeConn{name: "a"}
	b := &fakeConn{name: "b", fail: true}
	c := &fakeConn{name: "c"}
	h.Admit(a)
	h.Admit(b)
	h.Admit(c)

	// B's transport fails during this delivery; A is excluded.
	h.Broadcast([]byte("m1"), a)

	if !b.closed {
		t.Fatalf("failing member was not closed")
	}
	if got := h.Count(); got != 2 {
		t.Fatalf("expected 2 members after eviction, got %d", got)
	}
	if len(c.messages) != 1 {
		t.Fatalf("failure of b must not abort delivery to c")
	}

	// A subsequent full broadcast reaches exactly {A, C}.
	h.Broadcast([]byte("m2"), nil)
	if len(a.messages) != 1 || string(a.messages[0]) != "m2" {
		t.Fatalf("a should have received only m2, got %q", a.messages)
	}
	if len(c.messages) != 2 {
		t.Fatalf("c should have received m1 and m2, got %d messages", len(c.messages))
	}
	if len(b.messages) != 0 {
		t.Fatalf("evicted member received messages")
	}
}

func TestHub_EvictIsIdempotent(t *testing.T) {
	h := NewHub("menu")
	a := &fakeConn{name: "a"}
	h.Admit(a)
	h.Evict(a)
	h.Evict(a) // second eviction is a no-op, not an error
	if got := h.Count(); got != 0 {
		t.Fatalf("expected empty hub, got %d members", got)
	}
}

func TestHub_CloseAll(t *testing.T) {
	h := NewHub("menu")
	a := &fakeConn{name: "a"}
	b := &fakeConn{name: "b"}
	h.Admit(a)
	h.Admit(b)
	h.CloseAll()
	if !a.closed || !b.closed {
		t.Fatalf("CloseAll must close every member")
	}
	if h.Count() != 0 {
		t.Fatalf("expected empty hub after CloseAll")
	}
}
