package entity

// Lookup tells a find-or-create caller which branch was taken.
type Lookup int

const (
	LookupFound Lookup = iota + 1
	LookupCreated
)

func (l Lookup) String() string {
	switch l {
	case LookupFound:
		return "found"
	case LookupCreated:
		return "created"
	default:
		return "unknown"
	}
}
