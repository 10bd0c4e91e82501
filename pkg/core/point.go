package core

// Point is a position in world space
type Point struct {
	X, Y, Z float64
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// Origin returns the world origin, which is also the camera position
func Origin() Point {
	return Point{}
}

// Sub returns the displacement from other to p
func (p Point) Sub(other Point) Vec3 {
	return Vec3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// Add returns the point displaced by v
func (p Point) Add(v Vec3) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubVec returns the point displaced by -v
func (p Point) SubVec(v Vec3) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// TextureCoords addresses a texel in UV space. Values are not restricted to
// [0,1); textures wrap them.
type TextureCoords struct {
	U, V float64
}

// NewTextureCoords creates new texture coordinates
func NewTextureCoords(u, v float64) TextureCoords {
	return TextureCoords{U: u, V: v}
}
