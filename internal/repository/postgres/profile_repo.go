package postgres

import (
	"context"
	"errors"
	"fmt"

	"fitguide/fitness-app/internal/domain"
	"fitguide/fitness-app/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileRepo struct {
	db *pgxpool.Pool
}

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{
		db: db,
	}
}

func (r *ProfileRepo) GetByID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var (
		p                 domain.UserProfile
		gender, goal, loc string
	)
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				id, email, first_name, last_name, age, gender, goal, height, weight, location,
				available_equipment, created_at, updated_at
			FROM user_profiles
			WHERE id = $1;`,
		userID,
	).Scan(
		&p.ID, &p.Email, &p.FirstName, &p.LastName, &p.Age, &gender, &goal, &p.HeightCm, &p.WeightKg, &loc,
		&p.AvailableEquipment, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	p.Gender = domain.Gender(gender)
	p.Goal = domain.FitnessGoal(goal)
	p.Location = domain.Location(loc)
	return &p, nil
}

// Upsert writes the full profile; created_at of an existing row is kept.
func (r *ProfileRepo) Upsert(ctx context.Context, p *domain.UserProfile) error {
	if p.ID == "" {
		return errors.New("profile id is required for upsert")
	}
	equipment := p.AvailableEquipment
	if equipment == nil {
		equipment = []string{}
	}
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO user_profiles
				(id, email, first_name, last_name, age, gender, goal, height, weight, location, available_equipment, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
			ON CONFLICT (id) DO UPDATE SET
				email = EXCLUDED.email,
				first_name = EXCLUDED.first_name,
				last_name = EXCLUDED.last_name,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				goal = EXCLUDED.goal,
				height = EXCLUDED.height,
				weight = EXCLUDED.weight,
				location = EXCLUDED.location,
				available_equipment = EXCLUDED.available_equipment,
				updated_at = EXCLUDED.updated_at;`,
		p.ID, p.Email, p.FirstName, p.LastName, p.Age, string(p.Gender), string(p.Goal), p.HeightCm, p.WeightKg,
		string(p.Location), equipment, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUpdateFailed, err)
	}
	return nil
}
