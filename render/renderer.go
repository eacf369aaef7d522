package render

import (
	"fmt"

	"github.com/lixenwraith/zbuffer/stage"
)

// Renderer draws one stage variant into its own off-screen buffers
// Draw returns the composed root buffer, which stays owned by the renderer
type Renderer interface {
	Kind() stage.Kind
	Draw(s stage.Stage) *Buffer
}

// mismatch panics when a renderer is handed a stage of another variant
func mismatch(r Renderer, s stage.Stage) {
	panic(fmt.Sprintf("render: %s renderer given %s stage", r.Kind(), s.Kind()))
}
