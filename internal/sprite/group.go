// Package sprite provides an ordered container that fans out update and
// draw calls to game entities. Groups nest: a Group is itself a Sprite, so
// a scene can compose balloons, arrows, and score under one container.
package sprite

import "github.com/okarlsen/skyshot/internal/engine"

// Sprite is anything the scene updates and draws each frame.
type Sprite interface {
	Update(dt float64)
	Draw(canvas engine.Canvas)
}

// Group is an ordered collection of sprites. Insertion order is preserved,
// which gives deterministic draw order and the first-match tie-break used
// by collision lookups.
type Group struct {
	sprites []Sprite
}

// NewGroup creates a group holding the given sprites in order.
func NewGroup(sprites ...Sprite) *Group {
	g := &Group{}
	for _, s := range sprites {
		g.Add(s)
	}
	return g
}

// Add appends a sprite and returns it, so call sites can keep a reference:
//
//	arrow := group.Add(bow.Shoot())
func (g *Group) Add(s Sprite) Sprite {
	g.sprites = append(g.sprites, s)
	return s
}

// Remove deletes a sprite by identity. Removing a sprite that is not in
// the group is a no-op. Safe to call while Update is iterating.
func (g *Group) Remove(s Sprite) {
	for i, existing := range g.sprites {
		if existing == s {
			g.sprites = append(g.sprites[:i], g.sprites[i+1:]...)
			return
		}
	}
}

// Update forwards to every sprite in insertion order. Iteration runs over a
// snapshot, so sprites may remove themselves or others without skipping or
// double-visiting the rest of the frame.
func (g *Group) Update(dt float64) {
	for _, s := range g.Sprites() {
		s.Update(dt)
	}
}

// Draw forwards to every sprite in insertion order.
func (g *Group) Draw(canvas engine.Canvas) {
	for _, s := range g.Sprites() {
		s.Draw(canvas)
	}
}

// Sprites returns a snapshot of the contained sprites. The caller must not
// use it to mutate the group; use Add and Remove.
func (g *Group) Sprites() []Sprite {
	out := make([]Sprite, len(g.sprites))
	copy(out, g.sprites)
	return out
}

// Len returns the number of contained sprites.
func (g *Group) Len() int {
	return len(g.sprites)
}
