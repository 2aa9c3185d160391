package database

var schema = []string{
	`CREATE TABLE IF NOT EXISTS meetings (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		code VARCHAR(64) NOT NULL UNIQUE,
		title VARCHAR(100) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		additional_info TEXT,
		duration SMALLINT NOT NULL CHECK (duration > 0),
		place_type VARCHAR(20) NOT NULL,
		place_detail VARCHAR(255),
		confirmed_date DATE,
		confirmed_start_slot SMALLINT,
		confirmed_end_slot SMALLINT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS meeting_available_dates (
		meeting_id UUID NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
		available_date DATE NOT NULL,
		PRIMARY KEY (meeting_id, available_date)
	)`,
	`CREATE TABLE IF NOT EXISTS meeting_prefer_times (
		meeting_id UUID NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
		start_slot SMALLINT NOT NULL,
		end_slot SMALLINT NOT NULL,
		PRIMARY KEY (meeting_id, start_slot)
	)`,
	`CREATE TABLE IF NOT EXISTS meeting_users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		meeting_id UUID NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
		name VARCHAR(50) NOT NULL,
		role VARCHAR(10) NOT NULL,
		is_fixed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_meeting_users_meeting ON meeting_users (meeting_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS availability_marks (
		id BIGSERIAL PRIMARY KEY,
		meeting_id UUID NOT NULL REFERENCES meetings(id) ON DELETE CASCADE,
		user_id UUID NOT NULL REFERENCES meeting_users(id) ON DELETE CASCADE,
		available_date DATE NOT NULL,
		slot SMALLINT NOT NULL,
		priority SMALLINT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_availability_marks_meeting ON availability_marks (meeting_id, id)`,
}
