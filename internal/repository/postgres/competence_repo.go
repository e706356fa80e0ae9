package postgres

import (
	"context"

	"recruitment-portal-api/internal/domain"
)

type competenceRepo struct {
	db DBTX
}

func (r *competenceRepo) List(ctx context.Context) ([]domain.Competence, error) {
	rows, err := r.db.Query(ctx, `SELECT competence_id, name FROM competences ORDER BY competence_id`)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	var competences []domain.Competence
	for rows.Next() {
		var c domain.Competence
		if err := rows.Scan(&c.CompetenceID, &c.Name); err != nil {
			return nil, err
		}
		competences = append(competences, c)
	}
	return competences, rows.Err()
}

func (r *competenceRepo) GetByID(ctx context.Context, id int64) (*domain.Competence, error) {
	var c domain.Competence
	err := r.db.QueryRow(ctx, `SELECT competence_id, name FROM competences WHERE competence_id = $1`, id).
		Scan(&c.CompetenceID, &c.Name)
	if err != nil {
		return nil, translate(err)
	}
	return &c, nil
}
