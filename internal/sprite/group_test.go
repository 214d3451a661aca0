package sprite

import (
	"testing"

	"github.com/okarlsen/skyshot/internal/engine"
)

// stub is a test sprite that records calls and can remove sprites from its
// owning group mid-update.
type stub struct {
	name     string
	group    *Group
	removals []Sprite
	updates  []float64
	draws    int
}

func (s *stub) Update(dt float64) {
	s.updates = append(s.updates, dt)
	for _, target := range s.removals {
		s.group.Remove(target)
	}
	s.removals = nil
}

func (s *stub) Draw(canvas engine.Canvas) {
	s.draws++
}

func TestGroupForwardsInOrder(t *testing.T) {
	a := &stub{name: "a"}
	b := &stub{name: "b"}
	g := NewGroup(a, b)

	g.Update(4)
	g.Update(5)

	for _, s := range []*stub{a, b} {
		if len(s.updates) != 2 || s.updates[0] != 4 || s.updates[1] != 5 {
			t.Errorf("sprite %s updates = %v", s.name, s.updates)
		}
	}

	g.Draw(nil)
	if a.draws != 1 || b.draws != 1 {
		t.Errorf("draws = %d, %d", a.draws, b.draws)
	}
}

func TestGroupAddReturnsSprite(t *testing.T) {
	g := NewGroup()
	s := &stub{name: "a"}
	if got := g.Add(s); got != Sprite(s) {
		t.Error("Add() should return the added sprite")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d", g.Len())
	}
}

func TestGroupRemoveByIdentity(t *testing.T) {
	a := &stub{name: "a"}
	b := &stub{name: "b"}
	g := NewGroup(a, b)

	g.Remove(a)
	sprites := g.Sprites()
	if len(sprites) != 1 || sprites[0] != Sprite(b) {
		t.Errorf("after Remove(a), sprites = %v", sprites)
	}

	// Removing an absent sprite is a no-op
	g.Remove(a)
	if g.Len() != 1 {
		t.Errorf("Len() = %d after removing absent sprite", g.Len())
	}
}

func TestGroupRemoveDuringUpdateVisitsEveryone(t *testing.T) {
	g := NewGroup()
	a := &stub{name: "a", group: g}
	b := &stub{name: "b", group: g}
	c := &stub{name: "c", group: g}
	g.Add(a)
	g.Add(b)
	g.Add(c)

	// a removes b mid-update: b and c must still be visited this frame
	a.removals = []Sprite{b}
	g.Update(1)

	if len(b.updates) != 1 {
		t.Errorf("b visited %d times during the frame it was removed", len(b.updates))
	}
	if len(c.updates) != 1 {
		t.Errorf("c visited %d times", len(c.updates))
	}
	if g.Len() != 2 {
		t.Errorf("Len() = %d after removal", g.Len())
	}

	// Next frame b is gone
	g.Update(1)
	if len(b.updates) != 1 {
		t.Error("b updated after removal")
	}
}

func TestGroupNests(t *testing.T) {
	inner := NewGroup()
	leaf := &stub{name: "leaf"}
	inner.Add(leaf)

	outer := NewGroup()
	outer.Add(inner)

	outer.Update(7)
	if len(leaf.updates) != 1 || leaf.updates[0] != 7 {
		t.Errorf("nested sprite updates = %v", leaf.updates)
	}

	outer.Draw(nil)
	if leaf.draws != 1 {
		t.Errorf("nested sprite draws = %d", leaf.draws)
	}
}

func TestGroupSnapshotIsIndependent(t *testing.T) {
	a := &stub{name: "a"}
	g := NewGroup(a)

	snapshot := g.Sprites()
	snapshot[0] = nil

	if g.Sprites()[0] != Sprite(a) {
		t.Error("mutating the snapshot must not affect the group")
	}
}
