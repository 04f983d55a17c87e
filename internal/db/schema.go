package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS appointments (
	id               BIGSERIAL PRIMARY KEY,
	client_name      TEXT          NOT NULL,
	appointment_time TIMESTAMPTZ   NOT NULL,
	price            NUMERIC(7, 2) NOT NULL CHECK (price > 0),
	status           TEXT          NOT NULL CHECK (status IN ('OBTAIN', 'WAIT', 'PASS')),
	created_at       TIMESTAMPTZ   NOT NULL DEFAULT now(),
	updated_at       TIMESTAMPTZ   NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS appointments_time_idx ON appointments (appointment_time);
`

// EnsureSchema creates the appointments table when it does not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
