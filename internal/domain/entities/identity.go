package entities

// Identity is a named participant of either pool (human user or automated
// agent). The two pools are merged into one lookup set keyed by id before
// speaker resolution, so the enrichment loop never special-cases them.
type Identity interface {
	IdentityID() string
	DisplayName() string
}

// MergeIdentities builds a single id-keyed lookup set from both pools.
// First match wins if an id appears in both (identifier spaces are disjoint
// in practice, but resolution guarantees no ordering beyond "some identity
// with that id").
func MergeIdentities(users []*User, agents []*Agent) map[string]Identity {
	merged := make(map[string]Identity, len(users)+len(agents))
	for _, u := range users {
		if _, ok := merged[u.IdentityID()]; !ok {
			merged[u.IdentityID()] = u
		}
	}
	for _, a := range agents {
		if _, ok := merged[a.IdentityID()]; !ok {
			merged[a.IdentityID()] = a
		}
	}
	return merged
}
