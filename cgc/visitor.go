package cgc

// Visitor observes a Driver's progress, called from the same thread
// between work units: after each anchor pop in the cut phase, and after
// each improving Optimize2 in the glue-and-cut phase. A Visitor must not
// call back into the Driver.
type Visitor interface {
	Begin(d *Driver)
	End(d *Driver)
	Visit(d *Driver) bool // return false to request cancellation
	ClearLogNames()
	AddLogNames(names []string)
	SetLogValue(index int, value float64)
	PrintLog(level LogLevel, msg string)
}

// NullVisitor observes nothing and never cancels.
type NullVisitor struct{}

func (NullVisitor) Begin(d *Driver)                     {}
func (NullVisitor) End(d *Driver)                       {}
func (NullVisitor) Visit(d *Driver) bool                { return true }
func (NullVisitor) ClearLogNames()                      {}
func (NullVisitor) AddLogNames(names []string)          {}
func (NullVisitor) SetLogValue(index int, v float64)    {}
func (NullVisitor) PrintLog(level LogLevel, msg string) {}

// LogVisitor reports each visit to a Logger, naming the single dynamic
// value the current phase registered via AddLogNames/SetLogValue (the cut
// phase's queue size, the glue-and-cut phase's sweep index).
type LogVisitor struct {
	log    Logger
	names  []string
	values []float64
}

// NewLogVisitor builds a LogVisitor reporting through log.
func NewLogVisitor(log Logger) *LogVisitor {
	return &LogVisitor{log: log}
}

func (v *LogVisitor) Begin(d *Driver) {
	v.log.Info("cgc: begin, initial energy %.6f", d.CurrentBestEnergy())
}

func (v *LogVisitor) End(d *Driver) {
	v.log.Info("cgc: end, final energy %.6f", d.CurrentBestEnergy())
}

func (v *LogVisitor) Visit(d *Driver) bool {
	msg := "cgc: energy %.6f"
	args := []interface{}{d.CurrentBestEnergy()}
	for i, name := range v.names {
		if i < len(v.values) {
			msg += " " + name + "=%.0f"
			args = append(args, v.values[i])
		}
	}
	v.log.Debug(msg, args...)
	return true
}

func (v *LogVisitor) ClearLogNames() {
	v.names = v.names[:0]
	v.values = v.values[:0]
}

func (v *LogVisitor) AddLogNames(names []string) {
	v.names = append(v.names, names...)
	for range names {
		v.values = append(v.values, 0)
	}
}

func (v *LogVisitor) SetLogValue(index int, value float64) {
	if index < len(v.values) {
		v.values[index] = value
	}
}

// PrintLog routes msg through the underlying Logger at the given level.
func (v *LogVisitor) PrintLog(level LogLevel, msg string) {
	switch level {
	case LevelDebug:
		v.log.Debug(msg)
	case LevelWarn:
		v.log.Warn(msg)
	case LevelError:
		v.log.Error(msg)
	default:
		v.log.Info(msg)
	}
}

var _ Visitor = NullVisitor{}
var _ Visitor = (*LogVisitor)(nil)
