package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/wildgrid/internal/game/geo"
	"github.com/udisondev/wildgrid/internal/world"
)

// AreaRepository stores evicted areas of one simulation session.
// It implements world.AreaStore.
type AreaRepository struct {
	pool    *pgxpool.Pool
	session uuid.UUID
}

// NewAreaRepository creates a repository scoped to session.
func NewAreaRepository(pool *pgxpool.Pool, session uuid.UUID) *AreaRepository {
	return &AreaRepository{pool: pool, session: session}
}

// Session returns the session id rows are keyed by.
func (r *AreaRepository) Session() uuid.UUID { return r.session }

// SaveArea upserts the snapshot of an area.
func (r *AreaRepository) SaveArea(ctx context.Context, snap world.AreaSnapshot) error {
	structures := snap.Structures
	if structures == nil {
		structures = []geo.Rect{}
	}

	query := `
		INSERT INTO area_snapshots (session_id, area_x, area_y, width, height, tiles, structures, spawned, saved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (session_id, area_x, area_y) DO UPDATE SET
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			tiles = EXCLUDED.tiles,
			structures = EXCLUDED.structures,
			spawned = EXCLUDED.spawned,
			saved_at = now()
	`
	_, err := r.pool.Exec(ctx, query,
		r.session, snap.Location.X, snap.Location.Y,
		snap.Width, snap.Height,
		world.PackTiles(snap.Tiles), structures, snap.Spawned,
	)
	if err != nil {
		return fmt.Errorf("saving area %s: %w", snap.Location, err)
	}
	return nil
}

// LoadArea reads the snapshot stored for loc.
func (r *AreaRepository) LoadArea(ctx context.Context, loc geo.AreaCoord) (world.AreaSnapshot, bool, error) {
	query := `
		SELECT width, height, tiles, structures, spawned
		FROM area_snapshots
		WHERE session_id = $1 AND area_x = $2 AND area_y = $3
	`

	snap := world.AreaSnapshot{Location: loc}
	var packed []byte
	err := r.pool.QueryRow(ctx, query, r.session, loc.X, loc.Y).
		Scan(&snap.Width, &snap.Height, &packed, &snap.Structures, &snap.Spawned)
	if errors.Is(err, pgx.ErrNoRows) {
		return world.AreaSnapshot{}, false, nil
	}
	if err != nil {
		return world.AreaSnapshot{}, false, fmt.Errorf("loading area %s: %w", loc, err)
	}

	snap.Tiles, err = world.UnpackTiles(packed)
	if err != nil {
		return world.AreaSnapshot{}, false, fmt.Errorf("decoding area %s: %w", loc, err)
	}
	if len(snap.Tiles) != snap.Width*snap.Height {
		return world.AreaSnapshot{}, false, fmt.Errorf("area %s: %d tiles for %dx%d", loc, len(snap.Tiles), snap.Width, snap.Height)
	}
	return snap, true, nil
}

// Count returns the number of areas stored for the session.
func (r *AreaRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM area_snapshots WHERE session_id = $1`, r.session,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting areas of session %s: %w", r.session, err)
	}
	return n, nil
}

// DeleteSession removes every area of the session.
func (r *AreaRepository) DeleteSession(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM area_snapshots WHERE session_id = $1`, r.session)
	if err != nil {
		return 0, fmt.Errorf("deleting session %s: %w", r.session, err)
	}
	return tag.RowsAffected(), nil
}

var _ world.AreaStore = (*AreaRepository)(nil)
