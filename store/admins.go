// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"

	"github.com/tellerbot/teller/models"
)

// IsAdmin reports whether the identity is in the admin set.
func (s *Store) IsAdmin(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(SELECT 1 FROM admin WHERE user_id = $1)
	`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check admin: %w", err)
	}

	return exists, nil
}

// SeedAdmins inserts the given admins, skipping identities already
// present. The admin set has no self-service registration; this is the
// out-of-band population path, run at startup from configuration.
func (s *Store) SeedAdmins(ctx context.Context, admins []models.Admin) error {
	for _, a := range admins {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO admin (user_id, handle)
			VALUES ($1, $2)
			ON CONFLICT (user_id) DO NOTHING
		`, a.ID, a.Handle)
		if err != nil {
			return fmt.Errorf("seed admin %d: %w", a.ID, err)
		}
	}

	return nil
}
