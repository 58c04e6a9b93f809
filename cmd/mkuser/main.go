package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/openmesh/meshnet-backend/internal/config"
	"github.com/openmesh/meshnet-backend/internal/database"
	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/internal/store"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

// mkuser provisions an account. Registration has no HTTP surface; operators
// run this against the live database and hand the printed key to the user.
func main() {
	name := flag.String("name", "", "unique handle for the account (lowercased, alphanumeric)")
	displayName := flag.String("display-name", "", "presentation name (defaults to the handle)")
	level := flag.String("permission-level", string(models.PermissionRegular), "Regular, Elevated or Admin")
	flag.Parse()

	handle := utils.NormalizeName(utils.Alphanumeric(*name))
	if handle == "" {
		log.Fatal("a non-empty -name is required")
	}

	permission := models.PermissionLevel(*level)
	switch permission {
	case models.PermissionRegular, models.PermissionElevated, models.PermissionAdmin:
	default:
		log.Fatalf("unknown permission level %q", *level)
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	st := store.NewMongo(database.DB)
	ctx := context.Background()

	existing, err := st.FindUserByName(ctx, handle)
	if err != nil {
		log.Fatal("Failed to look up handle:", err)
	}
	if existing != nil {
		log.Fatalf("handle %q is already taken", handle)
	}

	display := strings.TrimSpace(*displayName)
	if display == "" {
		display = handle
	}

	key := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	user := &models.User{
		Key:             key,
		Name:            handle,
		DisplayName:     display,
		CreatedStamp:    utils.NowNanos(),
		EndpointUsage:   map[string]uint64{},
		Settings:        models.DefaultUserSettings(),
		PermissionLevel: permission,
		FriendRequests:  map[string]int64{},
	}
	if err := st.SaveUser(ctx, user); err != nil {
		log.Fatal("Failed to save user:", err)
	}

	fmt.Printf("created user %s\napi key: %s\n", handle, key)
}
