package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jroosing/zonejson/internal/zonefile"
)

// ErrZoneNotFound is returned when a named zone does not exist in the store.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneSummary is the list-level view of a stored zone.
type ZoneSummary struct {
	Name        string
	Origin      string
	RecordCount int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StoredZone is a stored zone with its source text and parsed record set.
type StoredZone struct {
	ZoneSummary
	Source string
	Zone   zonefile.ZoneFile
}

// SaveZone stores a parsed zone under name, replacing any previous version.
func (db *DB) SaveZone(name, source string, zf zonefile.ZoneFile) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var origin sql.NullString
	if o, ok := zf.Origin(); ok {
		origin = sql.NullString{String: o, Valid: true}
	}
	var defaultTTL sql.NullInt64
	if ttl, ok := zf.TTL(); ok {
		defaultTTL = sql.NullInt64{Int64: int64(ttl), Valid: true}
	}

	now := time.Now().Unix()
	res, err := tx.Exec(`
		INSERT INTO zones (name, source, origin, default_ttl, record_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			source = excluded.source,
			origin = excluded.origin,
			default_ttl = excluded.default_ttl,
			record_count = excluded.record_count,
			updated_at = excluded.updated_at
	`, name, source, origin, defaultTTL, zf.RecordCount(), now, now)
	if err != nil {
		return fmt.Errorf("failed to upsert zone %s: %w", name, err)
	}

	zoneID, err := zoneIDForName(tx, name, res)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM records WHERE zone_id = ?", zoneID); err != nil {
		return fmt.Errorf("failed to clear records for %s: %w", name, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO records (zone_id, rrtype, position, fields_json)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare record insert: %w", err)
	}
	defer stmt.Close()

	for _, rrtype := range zf.Types() {
		for pos, rec := range zf.Records(rrtype) {
			fields, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("failed to encode %s record: %w", rrtype, err)
			}
			if _, err := stmt.Exec(zoneID, rrtype, pos, string(fields)); err != nil {
				return fmt.Errorf("failed to insert %s record: %w", rrtype, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit zone %s: %w", name, err)
	}
	return nil
}

// GetZone loads a stored zone and rebuilds its record set.
func (db *DB) GetZone(name string) (*StoredZone, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	var (
		z          StoredZone
		zoneID     int64
		origin     sql.NullString
		defaultTTL sql.NullInt64
		created    int64
		updated    int64
	)
	err := db.conn.QueryRow(`
		SELECT id, name, source, origin, default_ttl, record_count, created_at, updated_at
		FROM zones WHERE name = ?
	`, name).Scan(&zoneID, &z.Name, &z.Source, &origin, &defaultTTL, &z.RecordCount, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrZoneNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load zone %s: %w", name, err)
	}
	z.CreatedAt = time.Unix(created, 0)
	z.UpdatedAt = time.Unix(updated, 0)

	zf := zonefile.ZoneFile{}
	if origin.Valid {
		z.Origin = origin.String
		zf["$origin"] = origin.String
	}
	if defaultTTL.Valid {
		zf["$ttl"] = int(defaultTTL.Int64)
	}

	rows, err := db.conn.Query(`
		SELECT rrtype, fields_json FROM records
		WHERE zone_id = ? ORDER BY rrtype, position
	`, zoneID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records for %s: %w", name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var rrtype, fields string
		if err := rows.Scan(&rrtype, &fields); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		rec, err := decodeRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", rrtype, err)
		}
		recs, _ := zf[rrtype].([]zonefile.Record)
		zf[rrtype] = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	z.Zone = zf
	return &z, nil
}

// ListZones returns summaries of all stored zones, ordered by name.
func (db *DB) ListZones() ([]ZoneSummary, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	rows, err := db.conn.Query(`
		SELECT name, origin, record_count, created_at, updated_at
		FROM zones ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	var out []ZoneSummary
	for rows.Next() {
		var (
			s       ZoneSummary
			origin  sql.NullString
			created int64
			updated int64
		)
		if err := rows.Scan(&s.Name, &origin, &s.RecordCount, &created, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		s.Origin = origin.String
		s.CreatedAt = time.Unix(created, 0)
		s.UpdatedAt = time.Unix(updated, 0)
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteZone removes a stored zone and its records.
func (db *DB) DeleteZone(name string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var zoneID int64
	err = tx.QueryRow("SELECT id FROM zones WHERE name = ?", name).Scan(&zoneID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrZoneNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to find zone %s: %w", name, err)
	}

	if _, err := tx.Exec("DELETE FROM records WHERE zone_id = ?", zoneID); err != nil {
		return fmt.Errorf("failed to delete records for %s: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM zones WHERE id = ?", zoneID); err != nil {
		return fmt.Errorf("failed to delete zone %s: %w", name, err)
	}
	return tx.Commit()
}

func zoneIDForName(tx *sql.Tx, name string, res sql.Result) (int64, error) {
	// LastInsertId is unreliable after an upsert that took the update path,
	// so always look the id up by name.
	_ = res
	var id int64
	if err := tx.QueryRow("SELECT id FROM zones WHERE name = ?", name).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to resolve zone id for %s: %w", name, err)
	}
	return id, nil
}

// decodeRecord rebuilds a zonefile.Record from its stored JSON, restoring
// whole-number fields to ints (encoding/json decodes them as float64).
func decodeRecord(data string) (zonefile.Record, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, err
	}
	rec := make(zonefile.Record, len(raw))
	for k, v := range raw {
		if f, ok := v.(float64); ok && f == float64(int(f)) {
			rec[k] = int(f)
			continue
		}
		rec[k] = v
	}
	return rec, nil
}
