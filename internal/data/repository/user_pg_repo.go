package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-users/internal/data/entity"
	"cinema-users/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type userPgRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserPgRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userPgRepository{
		db:  db,
		log: log.With(zap.String("repository", "user"), zap.String("driver", "postgres")),
	}
}

func (ur *userPgRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, phone, attributes, version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7)
	`

	id := uuid.New()
	attrs := extraAttributes(user.Attributes)
	if attrs == nil {
		attrs = map[string]any{}
	}

	_, err := ur.db.Exec(ctx, query,
		id,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Phone,
		attrs,
		user.CreatedAt,
	)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	user.ID = id.String()
	return nil
}

func (ur *userPgRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, phone, COALESCE(attributes, '{}'::jsonb), created_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var (
		user entity.User
		id   uuid.UUID
	)
	err := ur.db.QueryRow(ctx, query, email).Scan(
		&id,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Phone,
		&user.Attributes,
		&user.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	user.ID = id.String()
	user.Attributes = nonEmpty(user.Attributes)
	return &user, nil
}

// FindAll pages in heap order; like the document store, no ORDER BY is
// applied.
func (ur *userPgRepository) FindAll(ctx context.Context, skip, limit int64) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, phone, COALESCE(attributes, '{}'::jsonb), created_at
		FROM users
		OFFSET $1
		LIMIT $2
	`

	rows, err := ur.db.Query(ctx, query, skip, limit)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int64("skip", skip),
			zap.Int64("limit", limit),
		)
		return nil, fmt.Errorf("find all users skip %d limit %d: %w", skip, limit, err)
	}
	defer rows.Close()

	users := make([]*entity.User, 0)
	for rows.Next() {
		user, err := scanPublicUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

// profileQuery mirrors the document store pipeline: tickets are left-joined
// with a strict show_time bound and each carries movie/cinema arrays.
const profileQuery = `
	SELECT u.id, u.name, u.email, u.phone, COALESCE(u.attributes, '{}'::jsonb), u.created_at,
	       COALESCE((
	           SELECT jsonb_agg(
	                      (to_jsonb(t) - 'user_id' - 'movie_id' - 'cinema_id' - 'version')
	                      || jsonb_build_object(
	                             'movie', COALESCE((
	                                 SELECT jsonb_agg(to_jsonb(m) - 'version')
	                                 FROM movies m
	                                 WHERE m.id = t.movie_id
	                             ), '[]'::jsonb),
	                             'cinema', COALESCE((
	                                 SELECT jsonb_agg(to_jsonb(c) - 'version')
	                                 FROM cinemas c
	                                 WHERE c.id = t.cinema_id
	                             ), '[]'::jsonb)
	                         )
	                  )
	           FROM tickets t
	           WHERE t.user_id = u.id AND t.show_time > $2
	       ), '[]'::jsonb) AS tickets
	FROM users u
	WHERE u.id = $1
`

func (ur *userPgRepository) FindProfile(ctx context.Context, userID string, now time.Time) ([]*entity.UserProfile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, userID)
	}

	rows, err := ur.db.Query(ctx, profileQuery, id, now)
	if err != nil {
		ur.log.Error("Failed to query user profile",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("find profile of user %s: %w", userID, err)
	}
	defer rows.Close()

	profiles := make([]*entity.UserProfile, 0, 1)
	for rows.Next() {
		var (
			uid     uuid.UUID
			profile entity.UserProfile
			tickets []map[string]any
		)
		if err := rows.Scan(
			&uid,
			&profile.Name,
			&profile.Email,
			&profile.Phone,
			&profile.Attributes,
			&profile.CreatedAt,
			&tickets,
		); err != nil {
			ur.log.Error("Failed to scan profile row", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("scan profile row: %w", err)
		}

		profile.ID = uid.String()
		profile.Attributes = nonEmpty(profile.Attributes)
		profile.Tickets, err = ticketsFromJSON(tickets)
		if err != nil {
			ur.log.Error("Failed to decode profile tickets", zap.Error(err), zap.String("user_id", userID))
			return nil, fmt.Errorf("decode tickets of user %s: %w", userID, err)
		}
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate profile rows: %w", err)
	}

	return profiles, nil
}

func scanPublicUser(rows pgx.Rows) (*entity.User, error) {
	var (
		user entity.User
		id   uuid.UUID
	)
	if err := rows.Scan(
		&id,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.Attributes,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	user.ID = id.String()
	user.Attributes = nonEmpty(user.Attributes)
	return &user, nil
}

// ticketsFromJSON converts the aggregated jsonb ticket rows.
func ticketsFromJSON(rows []map[string]any) ([]entity.Ticket, error) {
	tickets := make([]entity.Ticket, 0, len(rows))
	for _, row := range rows {
		ticket := entity.Ticket{
			Movie:  make([]entity.Movie, 0, 1),
			Cinema: make([]entity.Cinema, 0, 1),
		}
		attrs := make(map[string]any)

		for key, value := range row {
			switch key {
			case "id":
				ticket.ID, _ = value.(string)
			case "show_time":
				raw, _ := value.(string)
				showTime, err := time.Parse(time.RFC3339Nano, raw)
				if err != nil {
					return nil, fmt.Errorf("parse show_time %q: %w", raw, err)
				}
				ticket.ShowTime = showTime
			case "movie":
				for _, ref := range referencesFromJSON(value) {
					ticket.Movie = append(ticket.Movie, entity.Movie(ref))
				}
			case "cinema":
				for _, ref := range referencesFromJSON(value) {
					ticket.Cinema = append(ticket.Cinema, entity.Cinema(ref))
				}
			default:
				attrs[key] = value
			}
		}

		ticket.Attributes = nonEmpty(attrs)
		tickets = append(tickets, ticket)
	}
	return tickets, nil
}

func referencesFromJSON(value any) []entity.Reference {
	items, _ := value.([]any)
	refs := make([]entity.Reference, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ref := entity.Reference{Attributes: make(map[string]any)}
		for key, v := range obj {
			if key == "id" {
				ref.ID, _ = v.(string)
				continue
			}
			ref.Attributes[key] = v
		}
		ref.Attributes = nonEmpty(ref.Attributes)
		refs = append(refs, ref)
	}
	return refs
}

func nonEmpty(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
