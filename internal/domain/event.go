package domain

import "time"

// RawEvent is one punch as stored. Timestamp is kept verbatim so malformed
// values from imports survive until normalization.
type RawEvent struct {
	SourceID  string
	Worker    string
	Action    string
	Timestamp string
	Project   string
	Note      string
	PhotoRef  string
	CreatedAt time.Time
}

// Event is a RawEvent after normalization: zone-aware timestamp, canonical
// worker name, parsed action.
type Event struct {
	SourceID  string    `json:"id"`
	Worker    string    `json:"worker"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Project   string    `json:"project"`
	Note      string    `json:"note"`
	PhotoRef  string    `json:"photo,omitempty"`
}

type Anomaly struct {
	Kind      AnomalyKind `json:"kind"`
	Worker    string      `json:"worker"`
	SourceID  string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
}
