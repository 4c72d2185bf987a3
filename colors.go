package main

// The four participant colors: red, blue, magenta, dark green.
var palette = [4]uint32{0xff0000, 0x0000ff, 0xff00ff, 0x006400}

// colorAllocator hands out palette slots round-robin while tracking which
// slots are actually held, so a released color can be reacquired without
// ever being assigned to two live participants at once.
type colorAllocator struct {
	inUse  [len(palette)]bool
	cursor int
}

func (a *colorAllocator) acquire() (uint32, bool) {
	for i := 0; i < len(palette); i++ {
		slot := (a.cursor + i) % len(palette)
		if a.inUse[slot] {
			continue
		}
		a.inUse[slot] = true
		a.cursor = (slot + 1) % len(palette)
		return palette[slot], true
	}
	return 0, false
}

func (a *colorAllocator) release(color uint32) {
	for slot := range palette {
		if palette[slot] == color {
			a.inUse[slot] = false
			return
		}
	}
}

func (a *colorAllocator) reset() {
	*a = colorAllocator{}
}
