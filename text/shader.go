package text

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/naga"
)

// ShaderSource is the WGSL source of the atlas text shader.
// Entry points are vs_main and fs_main; bindings in group 0 are the
// uniforms (0), the atlas texture (1) and its sampler (2).
//
//go:embed shaders/atlas_text.wgsl
var ShaderSource string

// UniformSize is the byte size of the text uniform buffer.
// Layout: viewport (vec4<f32>) = 16 bytes + tint (vec4<f32>) = 16 bytes.
const UniformSize = 32

// CompileShader compiles ShaderSource to SPIR-V words.
func CompileShader() ([]uint32, error) {
	spirvBytes, err := naga.Compile(ShaderSource)
	if err != nil {
		return nil, fmt.Errorf("text: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}
	return spirvCode, nil
}

// UniformData creates the uniform buffer contents for a viewport of the
// given pixel size and a tint color. Use opaque white to draw the atlas
// colors unchanged.
func UniformData(viewportWidth, viewportHeight float32, tint color.NRGBA) []byte {
	values := [8]float32{
		viewportWidth, viewportHeight, 0, 0,
		float32(tint.R) / 255, float32(tint.G) / 255, float32(tint.B) / 255, float32(tint.A) / 255,
	}
	buf := make([]byte, UniformSize)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}
