package models

import (
	"fmt"

	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// User is the canonical account record. The key doubles as the API token and
// is never serialized to clients; responses go through the projections below.
type User struct {
	Key             string            `bson:"key" json:"-"`
	Name            string            `bson:"name" json:"name"`
	DisplayName     string            `bson:"display_name" json:"display_name"`
	CreatedStamp    int64             `bson:"created_stamp" json:"created_stamp"`
	LastAccessStamp int64             `bson:"last_access_stamp" json:"last_access_stamp"`
	EndpointUsage   map[string]uint64 `bson:"endpoint_usage" json:"endpoint_usage"`
	Settings        UserSettings      `bson:"settings" json:"settings"`
	PermissionLevel PermissionLevel   `bson:"permission_level" json:"permission_level"`
	FriendRequests  map[string]int64  `bson:"friend_requests" json:"friend_requests"`
}

// UserPrivateInformation is the owner's view of their own account. Dates are
// always included; the caller owns the record.
type UserPrivateInformation struct {
	Name              string          `json:"name"`
	DisplayName       string          `json:"display_name"`
	JoinedDate        string          `json:"joined_date"`
	LastOnlineDate    string          `json:"last_online_date"`
	TotalRequestCount uint64          `json:"total_request_count"`
	PermissionLevel   PermissionLevel `json:"permission_level"`
}

// UserPublicInformation is the third-party view. Dates are included only when
// the owner's disclosure settings allow it for this viewer.
type UserPublicInformation struct {
	Name            string          `json:"name"`
	DisplayName     string          `json:"display_name"`
	JoinedDate      *string         `json:"joined_date,omitempty"`
	LastOnlineDate  *string         `json:"last_online_date,omitempty"`
	PermissionLevel PermissionLevel `json:"permission_level"`
}

// UseEndpoint records one hit on "<METHOD> <path>" and refreshes the
// last-access stamp. In-memory only; the caller is responsible for saving.
func (u *User) UseEndpoint(method, path string) {
	u.LastAccessStamp = utils.NowNanos()
	if u.EndpointUsage == nil {
		u.EndpointUsage = make(map[string]uint64)
	}
	u.EndpointUsage[fmt.Sprintf("%s %s", method, path)]++
}

// RequestCount is the total number of recorded endpoint hits.
func (u *User) RequestCount() uint64 {
	var total uint64
	for _, count := range u.EndpointUsage {
		total += count
	}
	return total
}

// PrivateInformation builds the owner projection.
func (u *User) PrivateInformation() UserPrivateInformation {
	return UserPrivateInformation{
		Name:              u.Name,
		DisplayName:       u.DisplayName,
		JoinedDate:        utils.NanosToDate(u.CreatedStamp),
		LastOnlineDate:    utils.NanosToDate(u.LastAccessStamp),
		TotalRequestCount: u.RequestCount(),
		PermissionLevel:   u.permission(),
	}
}

// PublicInformation builds the projection shown to other users, gating the
// dates by the owner's disclosure settings.
func (u *User) PublicInformation(viewerIsFriend bool) UserPublicInformation {
	info := UserPublicInformation{
		Name:            u.Name,
		DisplayName:     u.DisplayName,
		PermissionLevel: u.permission(),
	}
	if u.Settings.ShowJoinDate.IsVisible(viewerIsFriend) {
		joined := utils.NanosToDate(u.CreatedStamp)
		info.JoinedDate = &joined
	}
	if u.Settings.ShowOnlineDate.IsVisible(viewerIsFriend) {
		lastOnline := utils.NanosToDate(u.LastAccessStamp)
		info.LastOnlineDate = &lastOnline
	}
	return info
}

// Records written before permission levels existed decode with an empty level.
func (u *User) permission() PermissionLevel {
	if u.PermissionLevel == "" {
		return PermissionRegular
	}
	return u.PermissionLevel
}
