package store

import "fmt"

// Kind identifies a persisted record kind.
type Kind int

const (
	KindService Kind = iota
	KindBooking
	KindContactMessage
)

var collections = [...]string{
	KindService:        "service",
	KindBooking:        "booking",
	KindContactMessage: "contactmessage",
}

// Kinds returns every record kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(collections))
	for i := range collections {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Collection returns the collection (or table) name records of this kind live in.
func (k Kind) Collection() string {
	if k < 0 || int(k) >= len(collections) {
		return ""
	}
	return collections[k]
}

func (k Kind) String() string {
	if name := k.Collection(); name != "" {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// CheckKinds verifies that every kind maps to a distinct, non-empty collection.
func CheckKinds() error {
	seen := make(map[string]Kind, len(collections))
	for _, k := range Kinds() {
		name := k.Collection()
		if name == "" {
			return fmt.Errorf("record kind %d has no collection", int(k))
		}
		if other, ok := seen[name]; ok {
			return fmt.Errorf("record kinds %d and %d share collection %q", int(other), int(k), name)
		}
		seen[name] = k
	}
	return nil
}
