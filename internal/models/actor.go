package models

// Actor identifies the authenticated principal acting on a record.
// The zero value is the anonymous actor, so an Actor can always be
// passed by value without nil checks.
type Actor struct {
	name  string
	known bool
}

// NamedActor returns an actor for an authenticated user's display name.
func NamedActor(name string) Actor {
	return Actor{name: name, known: true}
}

// Anonymous returns the actor used when no session is present.
func Anonymous() Actor {
	return Actor{}
}

// Name returns the display name and whether a principal is present.
func (a Actor) Name() (string, bool) {
	return a.name, a.known
}
