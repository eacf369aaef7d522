package engine

// Z-Index constants determine draw order within a location
// Higher values are "on top"
const (
	ZIndexTerrain  = 0
	ZIndexFeature  = 100
	ZIndexItem     = 200
	ZIndexCreature = 300
)

// IsNotable reports whether objects at z are worth mentioning in the log
func IsNotable(z int) bool {
	return z >= ZIndexFeature
}
