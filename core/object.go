package core

// VisibleObject identifies something that can appear on the map
// What an object means is decided by gameplay, not here
type VisibleObject uint8

const (
	ObjectNone VisibleObject = iota
	ObjectGrass
	ObjectDirt
	ObjectWater
	ObjectRock
	ObjectTree
	ObjectMushroom
	ObjectRabbit
	ObjectFox
)

var objectNames = [...]string{
	ObjectNone:     "Nothing",
	ObjectGrass:    "Grass",
	ObjectDirt:     "Dirt",
	ObjectWater:    "Water",
	ObjectRock:     "Rock",
	ObjectTree:     "Tree",
	ObjectMushroom: "Mushroom",
	ObjectRabbit:   "Rabbit",
	ObjectFox:      "Fox",
}

func (o VisibleObject) String() string {
	if int(o) < len(objectNames) {
		return objectNames[o]
	}
	return "Unknown"
}
