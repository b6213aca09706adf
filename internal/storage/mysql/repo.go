package mysql

import (
	"context"
	"database/sql"

	"miami_hotels/internal/domain"
)

// Repo reads the hotel catalog from MySQL. The catalog table is seeded
// by migrations and treated as read-only at runtime: it is loaded once
// at startup and never re-read.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, listHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(
			&h.Name,
			&h.Rating,
			&h.Rates.WeekdayRegular,
			&h.Rates.WeekdayRewards,
			&h.Rates.WeekendRegular,
			&h.Rates.WeekendRewards,
		); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
