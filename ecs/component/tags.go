package component

// ActiveTag marks objects whose assets are ready. Only active objects are
// integrated, drawn and hit-tested; pending ones wait for an asset load.
type ActiveTag struct{}

var ActiveTagComponent = NewComponent[ActiveTag]()

// InteractiveTag marks objects that take part in pointer hit tests.
type InteractiveTag struct{}

var InteractiveTagComponent = NewComponent[InteractiveTag]()
