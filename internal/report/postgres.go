package report

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"resqline.org/internal/ids"
)

const checkViolation = "23514"

var _ Store = (*PGStore)(nil)

// PGStore implements Store using PostgreSQL. The severity and status enums
// are backed by CHECK constraints created in migration 0002, so a value that
// slips past service validation still cannot reach disk.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, r *Report) error {
	if r.ID == "" {
		r.ID = ids.New()
	}
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	var lat, lng sql.NullFloat64
	if r.Location != nil {
		lat = sql.NullFloat64{Float64: r.Location.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: r.Location.Lng, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`insert into reports(id, type, severity, title, description, address, city, state, pincode,
		                     lat, lng, contact_name, contact_phone, contact_email, anonymous, status,
		                     created_at, updated_at)
		 values($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		r.ID, r.Type, r.Severity, r.Title, r.Description, r.Address, r.City, r.State, nullString(r.Pincode),
		lat, lng, nullString(r.ContactName), r.ContactPhone, nullString(r.ContactEmail), r.Anonymous, r.Status,
		r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == checkViolation {
			return ErrInvalidValue
		}
		return err
	}
	return nil
}

func (s *PGStore) ListRecent(ctx context.Context, limit int) ([]Report, error) {
	rows, err := s.db.QueryContext(ctx,
		`select id, type, severity, title, description, address, city, state, pincode,
		        lat, lng, contact_name, contact_phone, contact_email, anonymous, status,
		        created_at, updated_at
		 from reports order by created_at desc, id desc limit $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []Report
	for rows.Next() {
		var (
			r                                  Report
			pincode, contactName, contactEmail sql.NullString
			lat, lng                           sql.NullFloat64
		)
		if err := rows.Scan(&r.ID, &r.Type, &r.Severity, &r.Title, &r.Description,
			&r.Address, &r.City, &r.State, &pincode, &lat, &lng,
			&contactName, &r.ContactPhone, &contactEmail, &r.Anonymous, &r.Status,
			&r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		r.Pincode = pincode.String
		r.ContactName = contactName.String
		r.ContactEmail = contactEmail.String
		if lat.Valid && lng.Valid {
			r.Location = &Coordinates{Lat: lat.Float64, Lng: lng.Float64}
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
