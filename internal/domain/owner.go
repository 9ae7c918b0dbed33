package domain

// OwnerKind discriminates who (if anyone) a trip belongs to.
type OwnerKind int

const (
	// OwnerNone matches trips regardless of ownership.
	OwnerNone OwnerKind = iota
	// OwnerUser matches trips by user_id.
	OwnerUser
	// OwnerSession matches trips by session_id.
	OwnerSession
)

// Owner is the explicit ownership variant used for trip list filtering.
// Representing ownership as a variant (rather than two nullable fields)
// makes the user-over-session precedence rule a single place in the code.
type Owner struct {
	Kind OwnerKind
	ID   string
}

// OwnerFromIDs builds the list filter from optional user and session IDs.
// user_id takes precedence when both are supplied; both empty means no filter.
func OwnerFromIDs(userID, sessionID string) Owner {
	switch {
	case userID != "":
		return Owner{Kind: OwnerUser, ID: userID}
	case sessionID != "":
		return Owner{Kind: OwnerSession, ID: sessionID}
	default:
		return Owner{Kind: OwnerNone}
	}
}
