package app

import (
	"worknest/internal/auditlog"
	"worknest/internal/profile"
	"worknest/internal/schedule"
	"worknest/internal/wfhrequest"

	"gorm.io/gorm"
)

// outbox_events is managed by raw SQL because the outbox repository works
// with raw queries, not a gorm model.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id UUID,
	aggregate_type VARCHAR(50) NOT NULL,
	aggregate_id UUID NOT NULL,
	event_type VARCHAR(100) NOT NULL,
	topic VARCHAR(200) NOT NULL,
	payload JSONB NOT NULL,
	status VARCHAR(20) NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message VARCHAR(500),
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_outbox_events_status_created
	ON outbox_events (status, created_at);
`

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&profile.Profile{},
		&wfhrequest.Request{},
		&wfhrequest.RequestDate{},
		&auditlog.Entry{},
		&schedule.Entry{},
	); err != nil {
		return err
	}

	return db.Exec(outboxDDL).Error
}
