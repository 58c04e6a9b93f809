package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/openmesh/meshnet-backend/internal/middleware"
	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// UserList is the payload of the public user listing.
type UserList struct {
	Users      []models.UserPublicInformation `json:"users"`
	Pagination models.Pagination              `json:"pagination"`
}

// GetUser returns the caller's own profile, dates included regardless of
// disclosure settings.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	respondJSON(w, http.StatusOK, user.PrivateInformation())
}

// SearchUser looks up a user by handle and returns the projection the
// caller's relationship to them allows.
func (h *Handler) SearchUser(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	name := utils.Alphanumeric(r.URL.Query().Get("name"))
	target, err := h.Store.FindUserByName(r.Context(), name)
	if err != nil {
		log.Printf("user search: fetching user failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occurred while fetching user")
		return
	}
	if target == nil {
		respondText(w, http.StatusNotFound, "User not found")
		return
	}

	isFriend := false
	if target.Key != user.Key {
		isFriend, err = h.Store.AreFriends(r.Context(), user.Key, target.Key)
		if err != nil {
			log.Printf("user search: fetching friendship failed: %v", err)
			respondText(w, http.StatusInternalServerError, "An error occurred while fetching friendship")
			return
		}
	}

	respondJSON(w, http.StatusOK, target.PublicInformation(isFriend))
}

// GetUserSettings returns the caller's settings.
func (h *Handler) GetUserSettings(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	respondJSON(w, http.StatusOK, user.Settings)
}

// PatchUserSettings applies a sparse settings update from the query string
// and returns the result.
func (h *Handler) PatchUserSettings(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	user.Settings.Update(settingsPatchFromQuery(r.URL.Query()))
	if err := h.Store.SaveUser(r.Context(), user); err != nil {
		log.Printf("settings patch: saving user failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while saving the user")
		return
	}

	respondJSON(w, http.StatusOK, user.Settings)
}

// GetUsers lists users who opted into the public profile listing. Viewers are
// treated as strangers, so only Public fields are disclosed.
func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	query, err := h.paginationQuery(r)
	if err != nil {
		respondText(w, http.StatusBadRequest, err.Error())
		return
	}

	users, total, err := h.Store.ListPublicUsers(r.Context(), query.Page, query.PageSize)
	if err != nil {
		log.Printf("user listing: fetching users failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occurred while fetching users")
		return
	}

	list := UserList{Users: make([]models.UserPublicInformation, 0, len(users))}
	for i := range users {
		list.Users = append(list.Users, users[i].PublicInformation(false))
	}
	list.Pagination = models.NewPagination(total, query.Page, query.PageSize, len(list.Users))

	respondJSON(w, http.StatusOK, list)
}

// settingsPatchFromQuery reads the recognized settings fields from the query
// string. Unknown fields and unparseable values are ignored.
func settingsPatchFromQuery(values url.Values) models.UserSettingsPatch {
	patch := models.UserSettingsPatch{
		ShowJoinDate:   disclosureParam(values, "show_join_date"),
		ShowOnlineDate: disclosureParam(values, "show_online_date"),
		ShowProfile:    disclosureParam(values, "show_profile"),
	}
	if raw := values.Get("allow_friend_requests"); raw != "" {
		if allow, err := strconv.ParseBool(raw); err == nil {
			patch.AllowFriendRequests = &allow
		}
	}
	return patch
}

func disclosureParam(values url.Values, name string) *models.DisclosureLevel {
	level := models.DisclosureLevel(values.Get(name))
	if !level.Valid() {
		return nil
	}
	return &level
}
