// Package text draws strings with a glyphatlas.Atlas.
//
// Two paths are provided:
//
//   - CPU: NewFace wraps an atlas as a golang.org/x/image/font.Face, so
//     strings can be drawn into any draw.Image with font.Drawer.
//   - GPU: Layout turns a string into textured quads whose UVs address the
//     atlas texture. Vertices, Indices, VertexData and IndexData produce
//     buffer contents matching VertexLayout and the shader compiled by
//     CompileShader.
//
// Input that is not plain ASCII can be brought into the atlas code space
// with Fold first.
//
// Example:
//
//	atlas, _ := glyphatlas.Create()
//	defer glyphatlas.Destroy(&atlas)
//
//	quads := text.Layout(atlas, text.Fold("CAFÉ"), text.DefaultLayoutOptions())
//	vertices := text.VertexData(quads)
//	indices, _ := text.IndexData(len(quads))
package text
