package pool

import (
	"errors"
	"testing"
)

type bullet struct {
	id     int
	active bool
}

func newBulletPool(built *int) *Pool[*bullet] {
	p := New[*bullet]()
	p.Register("small", Prototype[*bullet]{
		New: func() *bullet {
			*built++
			return &bullet{id: *built}
		},
		OnGet: func(b *bullet) { b.active = true },
		OnPut: func(b *bullet) { b.active = false },
	})
	return p
}

func TestPool_BuildsWhenEmpty(t *testing.T) {
	built := 0
	p := newBulletPool(&built)
	b, err := p.Get("small")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if built != 1 || !b.active {
		t.Errorf("built = %d, active = %v; want 1, true", built, b.active)
	}
}

func TestPool_RecyclesReturnedInstances(t *testing.T) {
	built := 0
	p := newBulletPool(&built)
	first, _ := p.Get("small")
	if err := p.Put("small", first); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	if first.active {
		t.Error("OnPut did not run")
	}
	if p.Free("small") != 1 {
		t.Errorf("Free = %d, want 1", p.Free("small"))
	}
	again, _ := p.Get("small")
	if again != first {
		t.Error("Get after Put built a new instance instead of recycling")
	}
	if built != 1 {
		t.Errorf("built = %d, want 1", built)
	}
	if p.Free("small") != 0 {
		t.Errorf("Free = %d, want 0", p.Free("small"))
	}
}

func TestPool_UnknownPrototype(t *testing.T) {
	p := New[int]()
	if _, err := p.Get("missing"); !errors.Is(err, ErrUnknownPrototype) {
		t.Errorf("Get error = %v, want ErrUnknownPrototype", err)
	}
	if err := p.Put("missing", 1); !errors.Is(err, ErrUnknownPrototype) {
		t.Errorf("Put error = %v, want ErrUnknownPrototype", err)
	}
	if p.Free("missing") != 0 {
		t.Error("Free on unknown prototype should be 0")
	}
}
