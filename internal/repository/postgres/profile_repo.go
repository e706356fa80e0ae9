package postgres

import (
	"context"
	"time"

	"recruitment-portal-api/internal/domain"
)

type profileRepo struct {
	db DBTX
}

const dateLayout = "2006-01-02"

func (r *profileRepo) CreateCompetenceProfile(ctx context.Context, profile *domain.CompetenceProfile) error {
	query := `
		INSERT INTO competence_profiles (person_id, competence_id, years_of_experience)
		VALUES ($1, $2, $3)
		RETURNING competence_profile_id`

	err := r.db.QueryRow(ctx, query,
		profile.PersonID,
		profile.CompetenceID,
		profile.YearsOfExperience,
	).Scan(&profile.CompetenceProfileID)
	return translate(err)
}

func (r *profileRepo) ListCompetenceProfiles(ctx context.Context, personID int64) ([]domain.CompetenceProfile, error) {
	query := `
		SELECT cp.competence_profile_id, cp.person_id, cp.competence_id, cp.years_of_experience, c.name
		FROM competence_profiles cp
		JOIN competences c ON cp.competence_id = c.competence_id
		WHERE cp.person_id = $1
		ORDER BY cp.competence_profile_id`

	rows, err := r.db.Query(ctx, query, personID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var profiles []domain.CompetenceProfile
	for rows.Next() {
		var p domain.CompetenceProfile
		if err := rows.Scan(
			&p.CompetenceProfileID, &p.PersonID, &p.CompetenceID,
			&p.YearsOfExperience, &p.CompetenceName,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteCompetenceProfile removes the row only when it belongs to personID.
// Ownership and existence collapse into one statement; the caller cannot tell
// "not yours" from "not there", which is intentional.
func (r *profileRepo) DeleteCompetenceProfile(ctx context.Context, id, personID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM competence_profiles WHERE competence_profile_id = $1 AND person_id = $2`,
		id, personID,
	)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *profileRepo) CountCompetenceProfiles(ctx context.Context, personID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM competence_profiles WHERE person_id = $1`, personID,
	).Scan(&count)
	return count, translate(err)
}

func (r *profileRepo) CreateAvailability(ctx context.Context, availability *domain.Availability) error {
	query := `
		INSERT INTO availability (person_id, from_date, to_date)
		VALUES ($1, $2, $3)
		RETURNING availability_id`

	err := r.db.QueryRow(ctx, query,
		availability.PersonID,
		availability.FromDate,
		availability.ToDate,
	).Scan(&availability.AvailabilityID)
	return translate(err)
}

func (r *profileRepo) ListAvailability(ctx context.Context, personID int64) ([]domain.Availability, error) {
	query := `
		SELECT availability_id, person_id, from_date, to_date
		FROM availability
		WHERE person_id = $1
		ORDER BY from_date, availability_id`

	rows, err := r.db.Query(ctx, query, personID)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var periods []domain.Availability
	for rows.Next() {
		var a domain.Availability
		var from, to time.Time
		if err := rows.Scan(&a.AvailabilityID, &a.PersonID, &from, &to); err != nil {
			return nil, err
		}
		a.FromDate = from.Format(dateLayout)
		a.ToDate = to.Format(dateLayout)
		periods = append(periods, a)
	}
	return periods, rows.Err()
}

func (r *profileRepo) DeleteAvailability(ctx context.Context, id, personID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM availability WHERE availability_id = $1 AND person_id = $2`,
		id, personID,
	)
	if err != nil {
		return false, translate(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *profileRepo) CountAvailability(ctx context.Context, personID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM availability WHERE person_id = $1`, personID,
	).Scan(&count)
	return count, translate(err)
}

func (r *profileRepo) DeleteAllByPerson(ctx context.Context, personID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM competence_profiles WHERE person_id = $1`, personID); err != nil {
		return translate(err)
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM availability WHERE person_id = $1`, personID); err != nil {
		return translate(err)
	}
	return nil
}
