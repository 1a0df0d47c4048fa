package contracts

import "context"

// ReportEvent is published to the notification queue whenever a report is
// shared, accepted or rejected. Downstream delivery (mail, WhatsApp) is an
// external consumer.
type ReportEvent struct {
	EventID   string `json:"event_id"`
	EventType string `json:"event_type"`
	ReportID  string `json:"report_id"`
	UserID    string `json:"user_id,omitempty"`
	Timestamp string `json:"timestamp"`
}

type EventPublisher interface {
	PublishReportEvent(ctx context.Context, event *ReportEvent) error
}
