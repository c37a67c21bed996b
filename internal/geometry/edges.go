package geometry

// Edges returns every distinct triangle edge once, smaller index first,
// in first-seen order. Used for wireframe drawing.
func (g *Geometry) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(g.Tris)*3/2)
	edges := make([][2]int, 0, len(g.Tris)*3/2)
	for _, tri := range g.Tris {
		for k := 0; k < 3; k++ {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]int{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, key)
		}
	}
	return edges
}
