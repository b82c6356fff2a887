package engine

import "strings"

// Map is one catalog entry: a bit-packed immutable map (spec.md section
// 4.C2). Bits is a little-endian bit stream of length SizeX*SizeY*SizeZ,
// iterated in nested order z (outermost) -> y -> x (innermost): bit i of
// byte i/8 is selected with mask 1<<(i%8).
type Map struct {
	Name                string
	SizeX, SizeY, SizeZ int
	Door                Vec3
	Bits                []byte
}

// bitLen returns the number of logical bits packed in the map.
func (m Map) bitLen() int {
	return m.SizeX * m.SizeY * m.SizeZ
}

// bitAt decodes logical bit i (true = walkable) from the packed stream.
func (m Map) bitAt(i int) bool {
	byteIdx := i / 8
	if byteIdx >= len(m.Bits) {
		return false
	}
	return m.Bits[byteIdx]&(1<<(uint(i)%8)) != 0
}

// packBits encodes a slice of bools (indexed in z-outer, y-mid, x-inner
// order, matching decode order) into a little-endian bit stream. This is
// the baked-map packer: it exists only to build the built-in catalog at
// init time, mirroring the compact wire format the engine decodes.
func packBits(walkable []bool) []byte {
	out := make([]byte, (len(walkable)+7)/8)
	for i, w := range walkable {
		if w {
			out[i/8] |= 1 << (uint(i) % 8)
		}
	}
	return out
}

// layersToMap converts a stack of ASCII layers (one string per z-slice,
// one character per (x,y) cell, '.' walkable and '#' wall, 'D' the door
// on a walkable cell) into a packed Map, the way the tabular example's
// grid_world package represents tracks as string slices (WALL/TRACK/...)
// before use. Rows within a layer run in +Y order top-to-bottom; this
// helper exists purely to make the built-in catalog readable source.
func layersToMap(name string, layers []string) Map {
	sizeZ := len(layers)
	rows := strings.Split(strings.TrimRight(layers[0], "\n"), "\n")
	sizeY := len(rows)
	sizeX := len(rows[0])

	walkable := make([]bool, sizeX*sizeY*sizeZ)
	door := Vec3{}
	for z, layer := range layers {
		rows := strings.Split(strings.TrimRight(layer, "\n"), "\n")
		for yi, row := range rows {
			y := sizeY - 1 - yi // row 0 is the top (+Y) of the layer
			for x, ch := range row {
				idx := relIndexAbs(x, y, z, sizeX, sizeY)
				switch ch {
				case '.':
					walkable[idx] = true
				case 'D':
					walkable[idx] = true
					door = Vec3{x, y, z}
				case '#':
					// wall, leave false
				}
			}
		}
	}

	return Map{
		Name:  name,
		SizeX: sizeX, SizeY: sizeY, SizeZ: sizeZ,
		Door: door,
		Bits: packBits(walkable),
	}
}

// relIndexAbs returns the z-outer, y-mid, x-inner linear index of an
// absolute grid coordinate, matching the catalog's packed bit order.
func relIndexAbs(x, y, z, sizeX, sizeY int) int {
	return z*sizeX*sizeY + y*sizeX + x
}

// DefaultCatalog is the engine's baked-in map table (spec.md section
// 4.C2). Additional maps can be appended by callers via AppendMap.
var DefaultCatalog = []Map{
	layersToMap("single-cell", []string{
		"D",
	}),
	layersToMap("corridor-5", []string{
		"D", ".", ".", ".", ".",
	}),
	layersToMap("room-3x3", []string{
		"...\n.D.\n...",
	}),
	layersToMap("chamber-5x5x3", []string{
		".....\n.....\n..D..\n.....\n.....",
		".....\n.....\n.....\n.....\n.....",
		".....\n.....\n.....\n.....\n.....",
	}),
	layersToMap("l-corridor", []string{
		"D....\n....#\n....#\n....#\n....#",
	}),
}

// MapCount returns the number of catalog entries.
func MapCount(catalog []Map) int {
	return len(catalog)
}

// AppendMap appends a pre-built Map to a catalog slice, returning the new
// slice. It performs no validation beyond what load uses at decode time.
func AppendMap(catalog []Map, m Map) []Map {
	return append(catalog, m)
}
