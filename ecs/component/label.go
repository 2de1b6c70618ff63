package component

type Label struct {
	Text string
}

var LabelComponent = NewComponent[Label]()
