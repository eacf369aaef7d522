package input

// SignalKind classifies a raw signal
type SignalKind uint8

const (
	SignalKey SignalKind = iota
	SignalMouse
)

// RawSignal is a low-level key or mouse signal as reported by the terminal layer
type RawSignal struct {
	Kind    SignalKind
	Code    Key
	Char    rune
	Pressed bool
	Shift   bool
	Alt     bool
	Ctrl    bool
}

// Source delivers raw signals observed since the previous call, in arrival order
// Implementations must not block
type Source interface {
	Signals() []RawSignal
}

// SourceFunc adapts a function to Source
type SourceFunc func() []RawSignal

// Signals implements Source
func (f SourceFunc) Signals() []RawSignal {
	return f()
}
