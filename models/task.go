package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Task statuses and priorities as the frontend presents them. The store does
// not reject other values.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"

	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

type Task struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Title       string    `gorm:"size:120;not null" json:"title"`
	Description string    `gorm:"size:500" json:"description"`
	Status      string    `gorm:"size:20;default:pending" json:"status"`
	Deadline    string    `gorm:"size:20" json:"deadline"`
	Priority    string    `gorm:"size:10;default:Low" json:"priority"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}

// TaskInput carries the client-supplied fields for task creation. Status and
// creation time are always set server-side.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Priority    string `json:"priority"`
}

// OptionalString is a tri-state JSON field: absent, null, or a string. Only
// an absent key leaves the stored value unchanged; null and the empty string
// both clear it.
type OptionalString struct {
	Present bool
	Value   *string
}

// UnmarshalJSON runs only for keys present in the payload, including keys
// set to null, which is what keeps absence distinguishable from null.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Present = true
	return json.Unmarshal(data, &o.Value)
}

// String returns the value to store; null maps to the empty string.
func (o OptionalString) String() string {
	if o.Value == nil {
		return ""
	}
	return *o.Value
}

// TaskUpdate is a partial update: absent fields are left unchanged, present
// fields overwrite, including set-to-empty and set-to-null.
type TaskUpdate struct {
	Title       OptionalString `json:"title"`
	Description OptionalString `json:"description"`
	Status      OptionalString `json:"status"`
	Deadline    OptionalString `json:"deadline"`
	Priority    OptionalString `json:"priority"`
}

// Fields returns the column updates for the members present in the payload.
func (u TaskUpdate) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if u.Title.Present {
		fields["title"] = u.Title.String()
	}
	if u.Description.Present {
		fields["description"] = u.Description.String()
	}
	if u.Status.Present {
		fields["status"] = u.Status.String()
	}
	if u.Deadline.Present {
		fields["deadline"] = u.Deadline.String()
	}
	if u.Priority.Present {
		fields["priority"] = u.Priority.String()
	}
	return fields
}
