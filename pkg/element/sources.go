package element

// CurrentSource injects a fixed DC current from terminal 0 to terminal 1.
type CurrentSource struct {
	name      string
	terminals [2]int
	current   float64
}

func NewCurrentSource(name string, from, to int, current float64) *CurrentSource {
	return &CurrentSource{name: name, terminals: [2]int{from, to}, current: current}
}

func (c *CurrentSource) Name() string     { return c.name }
func (c *CurrentSource) Kind() Kind       { return KindCurrentSource }
func (c *CurrentSource) Terminals() []int { return c.terminals[:] }
func (c *CurrentSource) Current() float64 { return c.current }

// VoltageSource is an ideal DC voltage source: + on terminal 1, - on
// terminal 0, per the stamping convention in pkg/stamper. It owns a
// branch index assigned by the assembler.
type VoltageSource struct {
	name      string
	terminals [2]int
	voltage   float64
	branch    int
}

func NewVoltageSource(name string, from, to int, voltage float64) *VoltageSource {
	return &VoltageSource{name: name, terminals: [2]int{from, to}, voltage: voltage}
}

func (v *VoltageSource) Name() string      { return v.name }
func (v *VoltageSource) Kind() Kind        { return KindVoltageSource }
func (v *VoltageSource) Terminals() []int  { return v.terminals[:] }
func (v *VoltageSource) Voltage() float64  { return v.voltage }
func (v *VoltageSource) Branch() int       { return v.branch }
func (v *VoltageSource) SetBranch(idx int) { v.branch = idx }

var (
	_ Element  = (*VoltageSource)(nil)
	_ Branched = (*VoltageSource)(nil)
)
