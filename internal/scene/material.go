package scene

// StandardMaterial is a lit metal/roughness surface.
type StandardMaterial struct {
	Color     Color
	Metalness float64
	Roughness float64
}

// BasicMaterial is unlit; with Wireframe set only mesh edges are drawn.
type BasicMaterial struct {
	Color       Color
	Wireframe   bool
	Transparent bool
	Opacity     float64
}
