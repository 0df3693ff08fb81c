package model

import "time"

// RequestDraft is an unsubmitted change request, built up field-by-field by
// the console before submission. It has no identifier and no workflow state;
// both are assigned at submission time.
type RequestDraft struct {
	Type          RequestType `json:"request_type"`
	Description   string      `json:"description"`
	RequestedBy   string      `json:"requested_by"`
	TargetVersion string      `json:"target_version,omitempty"`
	Remarks       string      `json:"remarks,omitempty"`
	Payload       Payload     `json:"payload"`
}

// Request is a submitted change request moving through the approval workflow.
// ID and CreatedAt are assigned exactly once at submission and never change;
// State only changes through the workflow package.
type Request struct {
	ID              string      `json:"request_id"`
	Type            RequestType `json:"request_type"`
	Description     string      `json:"description"`
	RequestedBy     string      `json:"requested_by"`
	CreatedAt       time.Time   `json:"created_at"`
	State           State       `json:"state"`
	StateChangedAt  time.Time   `json:"state_changed_at"`
	GoLiveAt        *time.Time  `json:"go_live_at,omitempty"`
	TargetVersion   string      `json:"target_version,omitempty"`
	StoreCount      int         `json:"store_count,omitempty"`
	Remarks         string      `json:"remarks,omitempty"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
	Payload         Payload     `json:"payload"`
}

// Clone returns a copy of the request. Payload row slices are shared;
// payloads are treated as immutable once submitted.
func (r *Request) Clone() *Request {
	out := *r
	if r.GoLiveAt != nil {
		t := *r.GoLiveAt
		out.GoLiveAt = &t
	}
	return &out
}
