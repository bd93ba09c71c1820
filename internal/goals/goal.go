package goals

import "time"

const DefaultStatus = "active"

type Goal struct {
	ID          int        `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	TargetType  string     `json:"target_type"`
	TargetValue *float64   `json:"target_value,omitempty"`
	TargetUnit  *string    `json:"target_unit,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}
