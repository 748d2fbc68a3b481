package store

const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	email TEXT UNIQUE NOT NULL,
	display_name TEXT NOT NULL DEFAULT '',
	bio TEXT NOT NULL DEFAULT '',
	profile_picture TEXT,
	role TEXT NOT NULL DEFAULT 'listener',
	is_verified BOOLEAN NOT NULL DEFAULT 0,
	is_active BOOLEAN NOT NULL DEFAULT 1,
	password_hash TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS genres (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT UNIQUE NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS tracks (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	artist_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	genre_id INTEGER REFERENCES genres(id) ON DELETE SET NULL,
	release_date TEXT NOT NULL,
	duration INTEGER,
	audio_file TEXT NOT NULL,
	cover_art TEXT,
	lyrics TEXT NOT NULL DEFAULT '',
	lyrics_status TEXT NOT NULL DEFAULT 'pending',
	isrc TEXT UNIQUE,
	status TEXT NOT NULL DEFAULT 'pending',
	play_count INTEGER NOT NULL DEFAULT 0,
	admin_notes TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tracks_artist_id ON tracks(artist_id);
CREATE INDEX IF NOT EXISTS idx_tracks_status ON tracks(status);
CREATE INDEX IF NOT EXISTS idx_tracks_genre_id ON tracks(genre_id);

CREATE TABLE IF NOT EXISTS play_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	track_id TEXT NOT NULL REFERENCES tracks(id) ON DELETE CASCADE,
	listener_id INTEGER REFERENCES users(id) ON DELETE SET NULL,
	played_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	ip_address TEXT,
	user_agent TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_play_history_track_id ON play_history(track_id);

CREATE TABLE IF NOT EXISTS notifications (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	notification_type TEXT NOT NULL,
	title TEXT NOT NULL,
	message TEXT NOT NULL,
	track_id TEXT REFERENCES tracks(id) ON DELETE CASCADE,
	is_read BOOLEAN NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_user_id ON notifications(user_id);
`
