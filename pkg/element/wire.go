package element

// Wire is a zero-volt voltage source between two terminals. It cannot be
// modelled as a zero-ohm resistor, which would require infinite
// conductance; instead it is stamped exactly like a VoltageSource with
// voltage 0 and consumes its own branch index.
type Wire struct {
	name      string
	terminals [2]int
	branch    int
}

func NewWire(name string, from, to int) *Wire {
	return &Wire{name: name, terminals: [2]int{from, to}}
}

func (w *Wire) Name() string      { return w.name }
func (w *Wire) Kind() Kind        { return KindWire }
func (w *Wire) Terminals() []int  { return w.terminals[:] }
func (w *Wire) Branch() int       { return w.branch }
func (w *Wire) SetBranch(idx int) { w.branch = idx }

var _ Branched = (*Wire)(nil)
