package text

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// VertexStride is the byte stride per vertex.
// Layout per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
//
// Total = 16 bytes per vertex.
const VertexStride = 16

// MaxQuads is the largest quad count whose vertices 16-bit indices can
// address.
const MaxQuads = (math.MaxUint16 + 1) / 4

// Quad represents a single glyph quad for rendering.
type Quad struct {
	// Position of quad corners in screen space, Y down.
	X0, Y0, X1, Y1 float32

	// UV coordinates in the atlas [0, 1].
	U0, V0, U1, V1 float32
}

// Vertex represents a single vertex for text rendering.
// Matches the VertexInput struct in atlas_text.wgsl.
type Vertex struct {
	// Position in screen space
	X, Y float32

	// UV coordinates in atlas
	U, V float32
}

// Vertices converts quads to a vertex array.
// Each quad becomes 4 vertices (for indexed rendering).
func Vertices(quads []Quad) []Vertex {
	vertices := make([]Vertex, len(quads)*4)

	for i, q := range quads {
		base := i * 4

		// Vertex 0: top-left
		vertices[base+0] = Vertex{X: q.X0, Y: q.Y0, U: q.U0, V: q.V0}
		// Vertex 1: top-right
		vertices[base+1] = Vertex{X: q.X1, Y: q.Y0, U: q.U1, V: q.V0}
		// Vertex 2: bottom-right
		vertices[base+2] = Vertex{X: q.X1, Y: q.Y1, U: q.U1, V: q.V1}
		// Vertex 3: bottom-left
		vertices[base+3] = Vertex{X: q.X0, Y: q.Y1, U: q.U0, V: q.V1}
	}

	return vertices
}

// Indices generates index buffer data for a given number of quads.
// Uses the pattern: 0,1,2, 2,3,0 for each quad (two triangles).
func Indices(numQuads int) ([]uint16, error) {
	if numQuads > MaxQuads {
		return nil, ErrTooManyQuads
	}
	if numQuads <= 0 {
		return nil, nil
	}
	indices := make([]uint16, numQuads*6)

	for i := 0; i < numQuads; i++ {
		base := i * 6
		vertex := uint16(i * 4) //nolint:gosec // numQuads is bounded by MaxQuads

		// First triangle: 0, 1, 2
		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2

		// Second triangle: 2, 3, 0
		indices[base+3] = vertex + 2
		indices[base+4] = vertex + 3
		indices[base+5] = vertex + 0
	}

	return indices, nil
}

// VertexData serializes quads into raw little-endian vertex bytes
// suitable for GPU upload. Each quad produces 4 vertices x 16 bytes = 64 bytes.
func VertexData(quads []Quad) []byte {
	if len(quads) == 0 {
		return nil
	}
	data := make([]byte, len(quads)*4*VertexStride)
	off := 0
	for _, v := range Vertices(quads) {
		writeVertex(data[off:], v)
		off += VertexStride
	}
	return data
}

// writeVertex writes a single vertex into buf.
func writeVertex(buf []byte, v Vertex) {
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(buf[8:12], math.Float32bits(v.U))
	binary.LittleEndian.PutUint32(buf[12:16], math.Float32bits(v.V))
}

// IndexData serializes quad indices into raw bytes for GPU upload.
func IndexData(numQuads int) ([]byte, error) {
	indices, err := Indices(numQuads)
	if err != nil {
		return nil, err
	}
	if len(indices) == 0 {
		return nil, nil
	}
	data := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(data[i*2:], idx)
	}
	return data, nil
}

// VertexLayout describes the vertex buffer written by VertexData.
func VertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}
