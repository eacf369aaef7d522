package core

import "fmt"

// Location is an integer grid coordinate in world space
type Location struct {
	X, Y int
}

// Offset returns the location translated by (dx, dy)
func (l Location) Offset(dx, dy int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy}
}

// Less orders locations row-major (y first), giving a total order for indexing
func (l Location) Less(o Location) bool {
	if l.Y != o.Y {
		return l.Y < o.Y
	}
	return l.X < o.X
}

func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.X, l.Y)
}

// Rectangle is an axis-aligned region with inclusive bounds
type Rectangle struct {
	MinX, MinY int
	MaxX, MaxY int
}

// CenteredAround returns a width x height rectangle whose center is loc
// For even sizes the extra cell falls on the max side
func CenteredAround(loc Location, width, height int) Rectangle {
	minX := loc.X - width/2
	minY := loc.Y - height/2
	return Rectangle{
		MinX: minX,
		MinY: minY,
		MaxX: minX + width - 1,
		MaxY: minY + height - 1,
	}
}

// Width returns the number of columns covered
func (r Rectangle) Width() int {
	return r.MaxX - r.MinX + 1
}

// Height returns the number of rows covered
func (r Rectangle) Height() int {
	return r.MaxY - r.MinY + 1
}

// Contains reports whether loc lies inside the rectangle
func (r Rectangle) Contains(loc Location) bool {
	return loc.X >= r.MinX && loc.X <= r.MaxX && loc.Y >= r.MinY && loc.Y <= r.MaxY
}

// Origin returns the top-left corner
func (r Rectangle) Origin() Location {
	return Location{X: r.MinX, Y: r.MinY}
}

// Clamp returns loc moved to the nearest location inside r
func (r Rectangle) Clamp(loc Location) Location {
	if loc.X < r.MinX {
		loc.X = r.MinX
	} else if loc.X > r.MaxX {
		loc.X = r.MaxX
	}
	if loc.Y < r.MinY {
		loc.Y = r.MinY
	} else if loc.Y > r.MaxY {
		loc.Y = r.MaxY
	}
	return loc
}
