package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"customer-contract-portal/internal/domain/events"
	"customer-contract-portal/internal/platform/apperr"
	"customer-contract-portal/internal/platform/paging"
)

const eventColumns = `id, customer_id, event_type, ts, channel, ip_address, user_agent, metadata_json, correlation_id`

type eventRepo struct {
	s *Store
}

func NewEventsRepo(s *Store) events.Repository {
	return &eventRepo{s: s}
}

func (r *eventRepo) Create(ctx context.Context, e events.Event) (events.Event, error) {
	meta, err := encodeMetadata(e.Metadata)
	if err != nil {
		return events.Event{}, apperr.Validation(fmt.Sprintf("metadata_json: %v", err))
	}

	err = r.s.withTx(ctx, func(tx *sql.Tx) error {
		ok, err := r.s.exists(ctx, tx, "customers", e.CustomerID, true)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("customer", e.CustomerID)
		}
		return r.s.queryRow(ctx, tx, `
			INSERT INTO events (customer_id, event_type, ts, channel, ip_address, user_agent, metadata_json, correlation_id)
			VALUES (?,?,?,?,?,?,?,?)
			RETURNING id
		`,
			e.CustomerID, e.Type, utc(e.Timestamp), string(e.Channel),
			nullString(e.IPAddress), nullString(e.UserAgent), meta, nullString(e.CorrelationID),
		).Scan(&e.ID)
	})
	if err != nil {
		return events.Event{}, err
	}
	e.Timestamp = utc(e.Timestamp)
	return e, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (events.Event, error) {
	row := r.s.queryRow(ctx, r.s.db, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id)
	e, err := scanEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return events.Event{}, apperr.NotFound("event", id)
	}
	if err != nil {
		return events.Event{}, apperr.Storage(err)
	}
	return e, nil
}

func (r *eventRepo) List(ctx context.Context, f events.ListFilter, page paging.Page) ([]events.Event, error) {
	var w filter
	if f.CustomerID != nil {
		w.add("customer_id = ?", *f.CustomerID)
	}
	if f.Type != nil {
		w.add("event_type = ?", *f.Type)
	}
	if f.From != nil {
		w.add("ts >= ?", utc(*f.From))
	}
	if f.To != nil {
		w.add("ts <= ?", utc(*f.To))
	}
	args := append(w.args, page.Limit, page.Offset)

	rows, err := r.s.query(ctx, r.s.db,
		`SELECT `+eventColumns+` FROM events`+w.where()+` ORDER BY ts DESC, id DESC LIMIT ? OFFSET ?`,
		args...,
	)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	out := make([]events.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return out, nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.s.exec(ctx, r.s.db, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return apperr.Storage(err)
	}
	if err := mustAffect(res, "event", id); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func encodeMetadata(m map[string]any) (sql.NullString, error) {
	if m == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func scanEvent(row rowScanner) (events.Event, error) {
	var (
		e                         events.Event
		channel                   string
		ip, ua, meta, correlation sql.NullString
	)
	if err := row.Scan(
		&e.ID,
		&e.CustomerID,
		&e.Type,
		&e.Timestamp,
		&channel,
		&ip,
		&ua,
		&meta,
		&correlation,
	); err != nil {
		return events.Event{}, err
	}

	e.Timestamp = e.Timestamp.UTC()
	e.Channel = events.Channel(channel)
	e.IPAddress = stringPtr(ip)
	e.UserAgent = stringPtr(ua)
	e.CorrelationID = stringPtr(correlation)
	if meta.Valid && meta.String != "" {
		if err := json.Unmarshal([]byte(meta.String), &e.Metadata); err != nil {
			return events.Event{}, fmt.Errorf("decode metadata_json: %w", err)
		}
	}
	return e, nil
}
