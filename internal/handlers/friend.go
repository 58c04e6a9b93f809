package handlers

import (
	"log"
	"net/http"
	"sort"

	"github.com/openmesh/meshnet-backend/internal/middleware"
	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// FriendList is the payload of the friend listing. Friends see each other's
// FriendsOnly fields, so the projections use the friend view.
type FriendList struct {
	Friends    []models.UserPublicInformation `json:"friends"`
	Pagination models.Pagination              `json:"pagination"`
}

// FriendRequestEntry is one pending request as shown to its recipient.
type FriendRequestEntry struct {
	User      models.UserPublicInformation `json:"user"`
	SentStamp int64                        `json:"sent_stamp"`
}

// FriendRequests is the payload of the pending request listing.
type FriendRequests struct {
	Requests   []FriendRequestEntry `json:"requests"`
	Pagination models.Pagination    `json:"pagination"`
}

// GetFriends returns the caller's friends, paginated.
func (h *Handler) GetFriends(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	query, err := h.paginationQuery(r)
	if err != nil {
		respondText(w, http.StatusBadRequest, err.Error())
		return
	}

	friendships, total, err := h.Store.FriendshipsOf(r.Context(), user.Key, query.Page, query.PageSize)
	if err != nil {
		log.Printf("friend list: fetching friendships failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while fetching your friendships")
		return
	}

	list := FriendList{Friends: make([]models.UserPublicInformation, 0, len(friendships))}
	for i := range friendships {
		friend, err := h.Store.FindUserByKey(r.Context(), friendships[i].Other(user.Key))
		if err != nil {
			log.Printf("friend list: fetching friend failed: %v", err)
			respondText(w, http.StatusInternalServerError, "An error occured while fetching your friendships")
			return
		}
		if friend == nil {
			// dangling edge, the account was removed
			continue
		}
		list.Friends = append(list.Friends, friend.PublicInformation(true))
	}
	list.Pagination = models.NewPagination(total, query.Page, query.PageSize, len(list.Friends))

	respondJSON(w, http.StatusOK, list)
}

// GetFriendRequests returns the pending requests sent to the caller, oldest
// first, paginated over the stored map.
func (h *Handler) GetFriendRequests(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	query, err := h.paginationQuery(r)
	if err != nil {
		respondText(w, http.StatusBadRequest, err.Error())
		return
	}

	type pending struct {
		key   string
		stamp int64
	}
	entries := make([]pending, 0, len(user.FriendRequests))
	for key, stamp := range user.FriendRequests {
		entries = append(entries, pending{key: key, stamp: stamp})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].stamp != entries[j].stamp {
			return entries[i].stamp < entries[j].stamp
		}
		return entries[i].key < entries[j].key
	})

	total := len(entries)
	start := (query.Page - 1) * query.PageSize
	if start > total {
		start = total
	}
	end := start + query.PageSize
	if end > total {
		end = total
	}

	result := FriendRequests{Requests: make([]FriendRequestEntry, 0, end-start)}
	for _, entry := range entries[start:end] {
		sender, err := h.Store.FindUserByKey(r.Context(), entry.key)
		if err != nil {
			log.Printf("friend requests: fetching sender failed: %v", err)
			respondText(w, http.StatusInternalServerError, "An error occured while fetching your friend requests")
			return
		}
		if sender == nil {
			continue
		}
		result.Requests = append(result.Requests, FriendRequestEntry{
			User:      sender.PublicInformation(false),
			SentStamp: entry.stamp,
		})
	}
	result.Pagination = models.NewPagination(int64(total), query.Page, query.PageSize, len(result.Requests))

	respondJSON(w, http.StatusOK, result)
}

// SendFriendRequest records a pending request on the target user. The 404 for
// unknown targets and for targets refusing requests is identical on purpose,
// so the endpoint cannot be used to probe which accounts exist.
func (h *Handler) SendFriendRequest(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	name := utils.Alphanumeric(r.URL.Query().Get("name"))
	target, err := h.Store.FindUserByName(r.Context(), name)
	if err != nil {
		log.Printf("friend request: fetching target failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occurred while fetching user")
		return
	}
	if target == nil {
		respondText(w, http.StatusNotFound, "User not found or user does not allow friend requests")
		return
	}
	if target.Key == user.Key {
		respondText(w, http.StatusBadRequest, "Can't send a friend request to yourself")
		return
	}
	if !target.Settings.AllowFriendRequests {
		respondText(w, http.StatusNotFound, "User not found or user does not allow friend requests")
		return
	}

	alreadyFriends, err := h.Store.AreFriends(r.Context(), user.Key, target.Key)
	if err != nil {
		log.Printf("friend request: fetching friendship failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occurred while fetching friendship")
		return
	}
	if alreadyFriends {
		respondText(w, http.StatusBadRequest, "You are already friends with the user")
		return
	}
	if _, exists := target.FriendRequests[user.Key]; exists {
		respondText(w, http.StatusBadRequest, "Already sent a request to the user")
		return
	}

	if target.FriendRequests == nil {
		target.FriendRequests = make(map[string]int64)
	}
	target.FriendRequests[user.Key] = utils.NowNanos()
	if err := h.Store.SaveUser(r.Context(), target); err != nil {
		log.Printf("friend request: saving target failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while saving the target user")
		return
	}

	respondText(w, http.StatusOK, "Friend request sent")
}

// AcceptFriendRequest consumes a pending request and creates the friendship.
// The pending entry is cleared first; the friendship check after that makes a
// replayed accept harmless.
func (h *Handler) AcceptFriendRequest(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromContext(r.Context())
	h.recordUsage(r, user)

	name := utils.Alphanumeric(r.URL.Query().Get("name"))
	target, err := h.Store.FindUserByName(r.Context(), name)
	if err != nil {
		log.Printf("friend accept: fetching target failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occurred while fetching user")
		return
	}
	if target == nil {
		respondText(w, http.StatusNotFound, "User not found or no pending request from user")
		return
	}
	if _, pending := user.FriendRequests[target.Key]; !pending {
		respondText(w, http.StatusNotFound, "User not found or no pending request from user")
		return
	}

	delete(user.FriendRequests, target.Key)
	if err := h.Store.SaveUser(r.Context(), user); err != nil {
		log.Printf("friend accept: saving user failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while saving the user")
		return
	}

	alreadyFriends, err := h.Store.AreFriends(r.Context(), user.Key, target.Key)
	if err != nil {
		log.Printf("friend accept: fetching friendship failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while trying to fetch friendship")
		return
	}
	if alreadyFriends {
		respondText(w, http.StatusBadRequest, "You are already friends with the user")
		return
	}

	friendship := models.NewFriendship(user.Key, target.Key)
	if err := h.Store.SaveFriendship(r.Context(), &friendship); err != nil {
		log.Printf("friend accept: saving friendship failed: %v", err)
		respondText(w, http.StatusInternalServerError, "An error occured while saving the friendship")
		return
	}

	respondText(w, http.StatusOK, "Friend request accepted")
}
