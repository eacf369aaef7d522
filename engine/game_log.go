package engine

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/lixenwraith/zbuffer/core"
)

// LogEventType carries log lines from systems to the game log
var LogEventType = events.NewEventType[core.LogEntry]()

// GameLog collects published log lines until they are taken
type GameLog struct {
	pending []core.LogEntry
}

// NewGameLog creates a log subscribed to LogEventType on world
func NewGameLog(world donburi.World) *GameLog {
	l := &GameLog{}
	LogEventType.Subscribe(world, l.onLog)
	return l
}

func (l *GameLog) onLog(_ donburi.World, entry core.LogEntry) {
	l.pending = append(l.pending, entry)
}

// Len returns the number of pending lines
func (l *GameLog) Len() int {
	return len(l.pending)
}

// Take returns pending lines in publish order and empties the log
func (l *GameLog) Take() []core.LogEntry {
	taken := l.pending
	l.pending = nil
	return taken
}
