package triangle

import "github.com/go-gl/mathgl/mgl32"

// Attribute slots consumed by the vertex shader.
const (
	PositionSlot uint32 = 0
	ColorSlot    uint32 = 1
)

// Components per vertex for each attribute. Both attributes are tightly
// packed, so the stride is always zero.
const (
	PositionSize int32 = 3
	ColorSize    int32 = 4
)

// Mesh holds the geometry uploaded for one draw.
type Mesh struct {
	Positions []mgl32.Vec3
	Colors    []mgl32.Vec4
	Indices   []uint32
}

// TriangleMesh returns a fresh copy of the triangle drawn every frame:
// red bottom-left, blue bottom-right, green top.
func TriangleMesh() *Mesh {
	return &Mesh{
		Positions: []mgl32.Vec3{
			{-0.5, -0.5, 0.0},
			{+0.5, -0.5, 0.0},
			{0.0, +0.5, 0.0},
		},
		Colors: []mgl32.Vec4{
			{1.0, 0.0, 0.0, 1.0},
			{0.0, 0.0, 1.0, 1.0},
			{0.0, 1.0, 0.0, 1.0},
		},
		Indices: []uint32{0, 1, 2},
	}
}

// PositionData flattens the positions into the layout of attribute slot 0.
func (m *Mesh) PositionData() []float32 {
	data := make([]float32, 0, len(m.Positions)*int(PositionSize))
	for _, p := range m.Positions {
		data = append(data, p[:]...)
	}
	return data
}

// ColorData flattens the colors into the layout of attribute slot 1.
func (m *Mesh) ColorData() []float32 {
	data := make([]float32, 0, len(m.Colors)*int(ColorSize))
	for _, c := range m.Colors {
		data = append(data, c[:]...)
	}
	return data
}

// IndexCount returns the number of indices issued by the draw call.
func (m *Mesh) IndexCount() int32 {
	return int32(len(m.Indices))
}
