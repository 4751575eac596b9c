package player

import "battleship/game"

// targeter is the target mode shared by the hunt/target strategies: a stack
// of follow-up cells and the last hit not yet resolved by a sink.
type targeter struct {
	stack   []game.Coord
	lastHit game.Coord
	// tracking is false when no damaged ship is being followed
	tracking bool
}

// next pops candidates until one has not been fired at yet.
func (t *targeter) next(fired *game.CoordSet) (game.Coord, bool) {
	for len(t.stack) > 0 {
		c := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		if !fired.Has(c) {
			return c, true
		}
	}
	return game.Coord{}, false
}

func (t *targeter) absorb(c game.Coord, result game.ShotResult, fired *game.CoordSet) {
	switch result {
	case game.Hit:
		if t.tracking && c.Manhattan(t.lastHit) == 1 {
			// Follow through along the axis the two hits share
			dx, dy := c.X-t.lastHit.X, c.Y-t.lastHit.Y
			t.push(c.Add(dx, dy), fired)
		} else {
			t.fanOut(c, fired)
		}
		t.lastHit = c
		t.tracking = true
	case game.Sunk:
		t.tracking = false
	}
}

// fanOut pushes up, down, left and right; right ends on top of the stack.
func (t *targeter) fanOut(c game.Coord, fired *game.CoordSet) {
	t.push(c.Add(0, -1), fired)
	t.push(c.Add(0, 1), fired)
	t.push(c.Add(-1, 0), fired)
	t.push(c.Add(1, 0), fired)
}

func (t *targeter) push(c game.Coord, fired *game.CoordSet) {
	if c.InBounds() && !fired.Has(c) {
		t.stack = append(t.stack, c)
	}
}

// HuntTargetPlayer hunts on cells where the smallest ship still fits and
// switches to target mode after a hit.
type HuntTargetPlayer struct {
	base
	targeter
}

func NewHuntTargetPlayer(name string, options ...Option) *HuntTargetPlayer {
	return &HuntTargetPlayer{base: newBase(name, options...)}
}

func (p *HuntTargetPlayer) ChooseShot() game.Coord {
	if c, ok := p.next(&p.fired); ok {
		return p.fire(c)
	}
	return p.fire(p.minLengthProbe())
}

func (p *HuntTargetPlayer) AbsorbResult(c game.Coord, result game.ShotResult) {
	p.absorb(c, result, &p.fired)
}

// HuntTargetMaxPlayer hunts on the cells furthest from every previous shot
// and shares the target mode of HuntTargetPlayer.
type HuntTargetMaxPlayer struct {
	base
	targeter
}

func NewHuntTargetMaxPlayer(name string, options ...Option) *HuntTargetMaxPlayer {
	return &HuntTargetMaxPlayer{base: newBase(name, options...)}
}

func (p *HuntTargetMaxPlayer) ChooseShot() game.Coord {
	if c, ok := p.next(&p.fired); ok {
		return p.fire(c)
	}
	return p.fire(p.maxDistanceProbe())
}

func (p *HuntTargetMaxPlayer) AbsorbResult(c game.Coord, result game.ShotResult) {
	p.absorb(c, result, &p.fired)
}
