package postgres

import (
	"context"
	"time"

	"recruitment-portal-api/internal/domain"
)

type applicationRepo struct {
	db DBTX
}

const applicationColumns = `application_id, person_id, status, submitted_at`

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (person_id, status, submitted_at)
		VALUES ($1, $2, $3)
		RETURNING application_id`

	if app.Status == "" {
		app.Status = domain.StatusUnhandled
	}
	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = time.Now()
	}

	err := r.db.QueryRow(ctx, query, app.PersonID, app.Status, app.SubmittedAt).
		Scan(&app.ApplicationID)
	return translate(err)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	return r.getBy(ctx, `SELECT `+applicationColumns+` FROM applications WHERE application_id = $1`, id)
}

func (r *applicationRepo) GetByPersonID(ctx context.Context, personID int64) (*domain.Application, error) {
	return r.getBy(ctx, `SELECT `+applicationColumns+` FROM applications WHERE person_id = $1`, personID)
}

// GetByPersonIDForUpdate locks the application row for the rest of the
// transaction. Returns (nil, nil) when the person has no application, which
// is a valid guard outcome, not an error.
func (r *applicationRepo) GetByPersonIDForUpdate(ctx context.Context, personID int64) (*domain.Application, error) {
	app, err := r.getBy(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE person_id = $1 FOR UPDATE`, personID)
	if err == domain.ErrNotFound {
		return nil, nil
	}
	return app, err
}

func (r *applicationRepo) getBy(ctx context.Context, query string, arg any) (*domain.Application, error) {
	var app domain.Application
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&app.ApplicationID, &app.PersonID, &app.Status, &app.SubmittedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *applicationRepo) List(ctx context.Context) ([]domain.ApplicationSummary, error) {
	query := `
		SELECT a.application_id, a.person_id, p.first_name, p.last_name, p.email, a.status, a.submitted_at
		FROM applications a
		JOIN persons p ON a.person_id = p.person_id
		ORDER BY a.submitted_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var applications []domain.ApplicationSummary
	for rows.Next() {
		var s domain.ApplicationSummary
		if err := rows.Scan(
			&s.ApplicationID, &s.PersonID, &s.FirstName, &s.LastName,
			&s.Email, &s.Status, &s.SubmittedAt,
		); err != nil {
			return nil, err
		}
		applications = append(applications, s)
	}
	return applications, rows.Err()
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (*domain.Application, error) {
	query := `
		UPDATE applications SET status = $2
		WHERE application_id = $1
		RETURNING ` + applicationColumns

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&app.ApplicationID, &app.PersonID, &app.Status, &app.SubmittedAt,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (r *applicationRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE application_id = $1`, id)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
