package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-users/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type userDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name,omitempty"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password,omitempty"`
	Phone     string             `bson:"phone,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	Version   int                `bson:"__v"`
	Tickets   []ticketDocument   `bson:"tickets,omitempty"`
	Extra     bson.M             `bson:",inline"`
}

type ticketDocument struct {
	ID       primitive.ObjectID  `bson:"_id"`
	ShowTime time.Time           `bson:"showTime"`
	Movie    []referenceDocument `bson:"movie"`
	Cinema   []referenceDocument `bson:"cinema"`
	Extra    bson.M              `bson:",inline"`
}

type referenceDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Extra bson.M             `bson:",inline"`
}

type userMongoRepository struct {
	users *mongo.Collection
	log   *zap.Logger
}

func NewUserMongoRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &userMongoRepository{
		users: db.Collection(usersCollection),
		log:   log.With(zap.String("repository", "user"), zap.String("driver", "mongo")),
	}
}

func (r *userMongoRepository) Create(ctx context.Context, user *entity.User) error {
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.PasswordHash,
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt,
		Extra:     extraAttributes(user.Attributes),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		r.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	user.ID = doc.ID.Hex()
	return nil
}

func (r *userMongoRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	user := doc.toEntity()
	return &user, nil
}

func (r *userMongoRepository) FindAll(ctx context.Context, skip, limit int64) ([]*entity.User, error) {
	cursor, err := r.users.Aggregate(ctx, userListPipeline(skip, limit))
	if err != nil {
		r.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int64("skip", skip),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("find all users skip %d limit %d: %w", skip, limit, err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		user := docs[i].toEntity()
		users = append(users, &user)
	}

	return users, nil
}

func (r *userMongoRepository) FindProfile(ctx context.Context, userID string, now time.Time) ([]*entity.UserProfile, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	cursor, err := r.users.Aggregate(ctx, userProfilePipeline(id, now))
	if err != nil {
		r.log.Error("Failed to aggregate user profile",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find profile of user %s: %w", userID, err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		r.log.Error("Failed to decode user profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("decode profile of user %s: %w", userID, err)
	}

	profiles := make([]*entity.UserProfile, 0, len(docs))
	for i := range docs {
		profiles = append(profiles, docs[i].toProfile())
	}

	return profiles, nil
}

func (d *userDocument) toEntity() entity.User {
	user := entity.User{
		Base: entity.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
		},
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.Password,
		Phone:        d.Phone,
	}
	if len(d.Extra) > 0 {
		user.Attributes = map[string]any(d.Extra)
	}
	return user
}

func (d *userDocument) toProfile() *entity.UserProfile {
	profile := &entity.UserProfile{
		User:    d.toEntity(),
		Tickets: make([]entity.Ticket, 0, len(d.Tickets)),
	}

	for _, t := range d.Tickets {
		ticket := entity.Ticket{
			ID:       t.ID.Hex(),
			ShowTime: t.ShowTime,
			Movie:    make([]entity.Movie, 0, len(t.Movie)),
			Cinema:   make([]entity.Cinema, 0, len(t.Cinema)),
		}
		if len(t.Extra) > 0 {
			ticket.Attributes = map[string]any(t.Extra)
		}
		for _, m := range t.Movie {
			ticket.Movie = append(ticket.Movie, entity.Movie(m.toReference()))
		}
		for _, c := range t.Cinema {
			ticket.Cinema = append(ticket.Cinema, entity.Cinema(c.toReference()))
		}
		profile.Tickets = append(profile.Tickets, ticket)
	}

	return profile
}

func (d referenceDocument) toReference() entity.Reference {
	ref := entity.Reference{ID: d.ID.Hex()}
	if len(d.Extra) > 0 {
		ref.Attributes = map[string]any(d.Extra)
	}
	return ref
}
