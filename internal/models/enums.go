package models

// DisclosureLevel controls who gets to see a profile field.
type DisclosureLevel string

const (
	DisclosurePrivate     DisclosureLevel = "Private"
	DisclosureFriendsOnly DisclosureLevel = "FriendsOnly"
	DisclosurePublic      DisclosureLevel = "Public"
)

// IsVisible reports whether a field gated by this level is disclosed to the
// viewer. Unknown levels behave like Private.
func (d DisclosureLevel) IsVisible(viewerIsFriend bool) bool {
	switch d {
	case DisclosurePublic:
		return true
	case DisclosureFriendsOnly:
		return viewerIsFriend
	default:
		return false
	}
}

// Valid reports whether d is one of the three known levels.
func (d DisclosureLevel) Valid() bool {
	switch d {
	case DisclosurePrivate, DisclosureFriendsOnly, DisclosurePublic:
		return true
	}
	return false
}

// PermissionLevel is the account's privilege tier.
type PermissionLevel string

const (
	PermissionRegular  PermissionLevel = "Regular"
	PermissionElevated PermissionLevel = "Elevated"
	PermissionAdmin    PermissionLevel = "Admin"
)

// Rank orders permission levels; a higher rank carries more privileges.
// Unknown levels rank as Regular.
func (p PermissionLevel) Rank() int {
	switch p {
	case PermissionAdmin:
		return 2
	case PermissionElevated:
		return 1
	default:
		return 0
	}
}
