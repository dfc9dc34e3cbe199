package events

import "time"

const RequestDecisionTopic = "wfh.request.decision.v1"

// RequestDecisionEvent is published once per affected date of a decision.
// Wire keys match the original email queue message, so the notification
// worker contract is unchanged.
type RequestDecisionEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id"`
	Action        string    `json:"action"`
	Email         string    `json:"email"`
	ApproverEmail string    `json:"approver_email"`
	WfhDate       string    `json:"wfh_date"`
	Comment       string    `json:"comment"`
	OccurredAt    time.Time `json:"occurred_at"`
}
