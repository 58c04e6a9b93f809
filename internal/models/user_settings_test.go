package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultUserSettings(t *testing.T) {
	settings := DefaultUserSettings()

	assert.Equal(t, DisclosureFriendsOnly, settings.ShowJoinDate)
	assert.Equal(t, DisclosureFriendsOnly, settings.ShowOnlineDate)
	assert.Equal(t, DisclosureFriendsOnly, settings.ShowProfile)
	assert.True(t, settings.AllowFriendRequests)
}

func TestUserSettingsUpdateSparse(t *testing.T) {
	settings := DefaultUserSettings()

	public := DisclosurePublic
	allow := false
	settings.Update(UserSettingsPatch{
		ShowJoinDate:        &public,
		AllowFriendRequests: &allow,
	})

	assert.Equal(t, DisclosurePublic, settings.ShowJoinDate)
	assert.False(t, settings.AllowFriendRequests)
	// untouched fields keep their values
	assert.Equal(t, DisclosureFriendsOnly, settings.ShowOnlineDate)
	assert.Equal(t, DisclosureFriendsOnly, settings.ShowProfile)
}

func TestUserSettingsUpdateEmptyPatch(t *testing.T) {
	settings := DefaultUserSettings()
	settings.Update(UserSettingsPatch{})
	assert.Equal(t, DefaultUserSettings(), settings)
}
