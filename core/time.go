package core

import "fmt"

// GameTime is elapsed game time in milliseconds
type GameTime uint64

// Millis returns the raw millisecond count
func (t GameTime) Millis() uint64 {
	return uint64(t)
}

// String formats as HH:MM:SS, hours keep growing past 99
func (t GameTime) String() string {
	secs := uint64(t) / 1000
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

// LogEntry is a single line of the game log
type LogEntry struct {
	Text string
	At   GameTime
}
