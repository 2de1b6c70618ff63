package component

import "github.com/milk9111/objectfield/common"

// Render lists the engine resources created for an entity.
type Render struct {
	Body  common.Handle
	Label common.Handle
}

var RenderComponent = NewComponent[Render]()
