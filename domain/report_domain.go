package domain

import (
	"errors"
)

const (
	// ReportOutcomeSent means at least one digest email was accepted by the
	// mail transport.
	ReportOutcomeSent = "sent"
	// ReportOutcomeNoUpdates means no dish was created or modified inside the
	// report window, so no send was attempted.
	ReportOutcomeNoUpdates = "no_updates"
	// ReportOutcomeNoActiveUsers means there were updates but nobody to tell.
	ReportOutcomeNoActiveUsers = "no_active_users"
)

var (
	ErrReportDispatchFailed = errors.New("failed to dispatch daily report")
)

type ReportResult struct {
	Outcome   string `json:"outcome"`
	SentCount int    `json:"sent_count"`
}
