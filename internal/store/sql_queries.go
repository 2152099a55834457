// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Velichko

package store

const (
	upsertSlot = `
		INSERT INTO session_slots (slot, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	getSlot = `
		SELECT value
		FROM session_slots
		WHERE slot = $1;`

	deleteSlot = `
		DELETE FROM session_slots
		WHERE slot = $1;`

	deleteAllSlots = `
		DELETE FROM session_slots;`
)
