package models

// UserSettings holds per-user privacy preferences. Only the owner can read
// or change them.
type UserSettings struct {
	ShowJoinDate        DisclosureLevel `bson:"show_join_date" json:"show_join_date"`
	ShowOnlineDate      DisclosureLevel `bson:"show_online_date" json:"show_online_date"`
	ShowProfile         DisclosureLevel `bson:"show_profile" json:"show_profile"`
	AllowFriendRequests bool            `bson:"allow_friend_requests" json:"allow_friend_requests"`
}

// DefaultUserSettings returns the settings new accounts start with.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		ShowJoinDate:        DisclosureFriendsOnly,
		ShowOnlineDate:      DisclosureFriendsOnly,
		ShowProfile:         DisclosureFriendsOnly,
		AllowFriendRequests: true,
	}
}

// UserSettingsPatch is a sparse settings update. A nil field leaves the
// current value untouched.
type UserSettingsPatch struct {
	ShowJoinDate        *DisclosureLevel
	ShowOnlineDate      *DisclosureLevel
	ShowProfile         *DisclosureLevel
	AllowFriendRequests *bool
}

// Update applies the patch field by field. It never fails.
func (s *UserSettings) Update(patch UserSettingsPatch) {
	if patch.ShowJoinDate != nil {
		s.ShowJoinDate = *patch.ShowJoinDate
	}
	if patch.ShowOnlineDate != nil {
		s.ShowOnlineDate = *patch.ShowOnlineDate
	}
	if patch.ShowProfile != nil {
		s.ShowProfile = *patch.ShowProfile
	}
	if patch.AllowFriendRequests != nil {
		s.AllowFriendRequests = *patch.AllowFriendRequests
	}
}
