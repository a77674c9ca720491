package ir

import "github.com/google/uuid"

// UID is the identity the front end assigns to every class-like, function,
// type alias and enum. Generated references point back to their declaring
// node through it instead of through tree position or pointer identity.
type UID string

// NoUID marks a node without identity.
const NoUID UID = ""

// NewUID mints a fresh globally unique identity.
func NewUID() UID {
	return UID(uuid.NewString())
}

// IsValid returns true if the UID is set.
func (u UID) IsValid() bool { return u != NoUID }

// Reference links a type back to the declaration it names.
type Reference struct {
	UID UID
}

// RefTo returns a reference to uid, or nil for NoUID.
func RefTo(uid UID) *Reference {
	if !uid.IsValid() {
		return nil
	}
	return &Reference{UID: uid}
}
