package postgres

import (
	"context"

	"recruitment-portal-api/internal/domain"
)

type personRepo struct {
	db DBTX
}

const personColumns = `person_id, first_name, last_name, email, person_number, username, password_hash, role`

func (r *personRepo) Create(ctx context.Context, person *domain.Person) error {
	query := `
		INSERT INTO persons (first_name, last_name, email, person_number, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING person_id`

	err := r.db.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		person.Email,
		person.PersonNumber,
		person.Username,
		person.PasswordHash,
		person.Role,
	).Scan(&person.PersonID)
	return translate(err)
}

func (r *personRepo) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	return r.getBy(ctx, `SELECT `+personColumns+` FROM persons WHERE person_id = $1`, id)
}

func (r *personRepo) GetByUsername(ctx context.Context, username string) (*domain.Person, error) {
	return r.getBy(ctx, `SELECT `+personColumns+` FROM persons WHERE username = $1`, username)
}

func (r *personRepo) GetByEmail(ctx context.Context, email string) (*domain.Person, error) {
	return r.getBy(ctx, `SELECT `+personColumns+` FROM persons WHERE email = $1`, email)
}

func (r *personRepo) getBy(ctx context.Context, query string, arg any) (*domain.Person, error) {
	var p domain.Person
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.PersonID, &p.FirstName, &p.LastName, &p.Email,
		&p.PersonNumber, &p.Username, &p.PasswordHash, &p.Role,
	)
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

// LockByID acquires a row lock on the person until the surrounding
// transaction ends. Guarded workflow writes lock the person first so two
// concurrent operations for the same applicant serialize.
func (r *personRepo) LockByID(ctx context.Context, id int64) error {
	var locked int64
	err := r.db.QueryRow(ctx, `SELECT person_id FROM persons WHERE person_id = $1 FOR UPDATE`, id).Scan(&locked)
	return translate(err)
}
