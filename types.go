package tiles

// Viewport is a pixel extent.
type Viewport struct {
	Width, Height int
}

// Vertex is one corner of the tile quad as uploaded to the vertex buffer.
// The shader reads it as a single vec4 (pos.xy, texcoord.zw).
type Vertex struct {
	Pos      [2]float32 // Position in normalized device coordinates
	TexCoord [2]float32 // Texture coordinates (u, v) into the atlas
}

// QuadIndices are the two triangles of the tile quad.
var QuadIndices = [6]uint32{
	0, 1, 3, // first triangle
	1, 2, 3, // second triangle
}

// Normalize maps a pixel offset within extent to the [-1, 1]
// normalized device range.
func Normalize(pixel, extent float32) float32 {
	return pixel/extent*2 - 1
}
