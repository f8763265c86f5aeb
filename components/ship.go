package components

// Role tells the two ships in a scene apart. The primary ship is driven by
// the behavior selector; the escort derives its behavior from the primary's.
type Role uint8

const (
	RolePrimary Role = iota
	RoleEscort
)

func (r Role) String() string {
	if r == RoleEscort {
		return "escort"
	}
	return "primary"
}

// Body holds a ship's render size.
type Body struct {
	Radius float32
}

// Ship identifies a steering agent entity.
type Ship struct {
	ID   uint32
	Role Role
}
