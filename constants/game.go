package constants

// World Constants
const (
	// DefaultWorldWidth and DefaultWorldHeight size a new play world
	DefaultWorldWidth  = 96
	DefaultWorldHeight = 64

	// DefaultSeed is used when no seed is configured
	DefaultSeed = 1
)
