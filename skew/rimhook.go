package skew

// LegLength returns the leg length of the skew shape viewed as a candidate
// rim hook: the number of rows it occupies minus one. The empty shape has
// leg length −1.
// Complexity: O(rows).
func (x *SkewDiagram) LegLength() int {
	rows := 0
	for i := range x.lam {
		w := 0
		if i < len(x.mu) {
			w = x.mu[i]
		}
		if x.lam[i] > w {
			rows++
		}
	}

	return rows - 1
}

// IsRimHook reports whether the skew shape is a rim hook (border strip):
// a non-empty, edgewise-connected strip containing no 2×2 block of cells.
// Rim hooks are exactly the shapes whose removal drives the
// Murnaghan–Nakayama recurrence.
// Complexity: O(rows×cols) — one block scan and one flood fill.
func (x *SkewDiagram) IsRimHook() bool {
	if x.N() == 0 {
		return false
	}
	// A 2×2 block anywhere disqualifies the shape.
	for i := range x.lam {
		for j := 0; j+1 < x.lam[i]; j++ {
			if x.Contains(i, j) && x.Contains(i, j+1) && x.Contains(i+1, j) && x.Contains(i+1, j+1) {
				return false
			}
		}
	}

	return x.connected()
}

// connected flood-fills from the first occupied cell over 4-neighbors and
// reports whether every cell of the shape was reached.
func (x *SkewDiagram) connected() bool {
	start, total := [2]int{-1, -1}, 0
	for i := range x.lam {
		for j := 0; j < x.lam[i]; j++ {
			if !x.Contains(i, j) {
				continue
			}
			if total == 0 {
				start = [2]int{i, j}
			}
			total++
		}
	}
	if total == 0 {
		return false
	}

	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	seen := map[[2]int]bool{start: true}
	queue := [][2]int{start}
	reached := 0
	for len(queue) > 0 {
		cell := queue[0]
		queue = queue[1:]
		reached++
		for _, d := range offsets {
			nb := [2]int{cell[0] + d[0], cell[1] + d[1]}
			if !seen[nb] && x.Contains(nb[0], nb[1]) {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return reached == total
}
