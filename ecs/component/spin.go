package component

import "github.com/milk9111/objectfield/common"

// Spin is a per-axis rotation increment applied once per frame.
type Spin struct {
	Rate common.Vec3
}

var SpinComponent = NewComponent[Spin]()
