// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	getCurrentSession = `
		SELECT
			session_id,
			user_id,
			token,
			server_url,
			last_subscription_fetch,
			expires_at,
			created_at
		FROM sessions
		ORDER BY created_at DESC, session_id DESC
		LIMIT 1;`

	saveSession = `
		INSERT INTO sessions (
			session_id,
			user_id,
			token,
			server_url,
			last_subscription_fetch,
			expires_at,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (session_id) DO UPDATE SET
			user_id                 = excluded.user_id,
			token                   = excluded.token,
			server_url              = excluded.server_url,
			last_subscription_fetch = excluded.last_subscription_fetch,
			expires_at              = excluded.expires_at;`

	setLastSubscriptionFetch = `
		UPDATE sessions
		SET last_subscription_fetch = $1
		WHERE session_id = $2;`

	getSubscription = `
		SELECT
			rid,
			session_id,
			name,
			fname,
			room_type,
			unread,
			alert,
			open,
			read_only,
			topic,
			announcement,
			description,
			last_seen,
			created_at,
			updated_at
		FROM subscriptions
		WHERE rid = $1;`

	getOwnedSubscriptions = `
		SELECT
			rid,
			session_id,
			name,
			fname,
			room_type,
			unread,
			alert,
			open,
			read_only,
			topic,
			announcement,
			description,
			last_seen,
			created_at,
			updated_at
		FROM subscriptions
		WHERE session_id = $1
		ORDER BY name;`

	clearUnread = `
		UPDATE subscriptions SET
			unread     = 0,
			alert      = false,
			updated_at = CURRENT_TIMESTAMP
		WHERE rid = $1;`
)
