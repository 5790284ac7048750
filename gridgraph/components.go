package gridgraph

// ConnectedComponents finds all contiguous regions of passable cells
// (cost < BlockingCost), according to gg.Conn connectivity.
// Returns a slice of components; each component is a slice of cell indices
// (x-major) in BFS discovery order. Results are cached; the returned slices
// must not be modified.
//
// To convert an index back to a coordinate, use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	if gg.labels != nil {
		return gg.comps
	}
	labels := make([]int, Area)
	for i := range labels {
		labels[i] = -1
	}
	var comps [][]int
	offsets := gg.NeighborOffsets()

	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			if !gg.Passable(x, y) {
				continue // blocked
			}
			i0 := gg.index(x, y)
			if labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				c := gg.Coordinate(u)
				ux, uy := int(c.X), int(c.Y)
				for _, d := range offsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.Passable(vx, vy) {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, queue)
		}
	}
	gg.comps, gg.labels = comps, labels

	return comps
}
