package engine

// This file groups the thin §6 external-interface accessors that don't
// belong naturally in engine.go, world.go, metrics.go or events.go: the
// map catalog readout used by the CLI and comparison harness.

// MapCount returns the number of entries in the engine's active
// catalog.
func (e *Engine) MapCount() int {
	return len(e.catalog)
}

// MapSize returns the dimensions of catalog entry i, or (0,0,0) if i is
// out of range.
func (e *Engine) MapSize(i int) (x, y, z int) {
	if i < 0 || i >= len(e.catalog) {
		return 0, 0, 0
	}
	m := e.catalog[i]
	return m.SizeX, m.SizeY, m.SizeZ
}

// MapName returns the display name of catalog entry i, or "" if i is
// out of range.
func (e *Engine) MapName(i int) string {
	if i < 0 || i >= len(e.catalog) {
		return ""
	}
	return e.catalog[i].Name
}

// MapNameLength returns len(MapName(i)), matching the byte-at-a-time
// accessor style of spec.md section 6's get_map_name_char.
func (e *Engine) MapNameLength(i int) int {
	return len(e.MapName(i))
}

// MapNameChar returns the byte at index j of catalog entry i's name, or
// 0 if either index is out of range.
func (e *Engine) MapNameChar(i, j int) byte {
	name := e.MapName(i)
	if j < 0 || j >= len(name) {
		return 0
	}
	return name[j]
}
