package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openmesh/meshnet-backend/internal/models"
	"github.com/openmesh/meshnet-backend/pkg/utils"
)

const (
	usersCollection       = "users"
	friendshipsCollection = "friendships"
)

// Mongo implements Store on top of a MongoDB database.
type Mongo struct {
	users       *mongo.Collection
	friendships *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{
		users:       db.Collection(usersCollection),
		friendships: db.Collection(friendshipsCollection),
	}
}

// EnsureIndexes creates the indexes the lookups rely on: unique key and name
// on users, members on friendships.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return err
	}
	_, err = m.friendships.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "members", Value: 1}},
	})
	return err
}

func (m *Mongo) FindUserByKey(ctx context.Context, key string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"key": key})
}

func (m *Mongo) FindUserByName(ctx context.Context, name string) (*models.User, error) {
	return m.findUser(ctx, bson.M{"name": utils.NormalizeName(name)})
}

func (m *Mongo) findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (m *Mongo) SaveUser(ctx context.Context, user *models.User) error {
	filter := bson.M{"key": user.Key}
	update := bson.M{"$set": user}
	_, err := m.users.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *Mongo) ListPublicUsers(ctx context.Context, page, pageSize int) ([]models.User, int64, error) {
	filter := bson.M{"settings.show_profile": string(models.DisclosurePublic)}

	total, err := m.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"name": 1})
	findOptions.SetSkip(int64((page - 1) * pageSize))
	findOptions.SetLimit(int64(pageSize))

	cursor, err := m.users.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (m *Mongo) SaveFriendship(ctx context.Context, friendship *models.Friendship) error {
	// Members are stored sorted, so an exact array match is a set match.
	filter := bson.M{"members": friendship.Members}
	update := bson.M{"$set": friendship}
	_, err := m.friendships.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (m *Mongo) AreFriends(ctx context.Context, a, b string) (bool, error) {
	count, err := m.friendships.CountDocuments(ctx, bson.M{"members": models.SortedPair(a, b)})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (m *Mongo) FriendshipsOf(ctx context.Context, key string, page, pageSize int) ([]models.Friendship, int64, error) {
	filter := bson.M{"members": key}

	total, err := m.friendships.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOptions := options.Find()
	findOptions.SetSort(bson.M{"created_stamp": -1})
	findOptions.SetSkip(int64((page - 1) * pageSize))
	findOptions.SetLimit(int64(pageSize))

	cursor, err := m.friendships.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		return nil, 0, err
	}
	return friendships, total, nil
}
