package domain

// Point is a position in the fixed 2-D coordinate space the polygon
// synthesizer works in. Points are derived, ephemeral values recomputed on
// every relevant state change.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
