package model

import (
	"strings"
	"time"

	"github.com/svcbase/item-service/internal/commons"
)

type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ItemPayload is the request body for both create (POST) and full-replace
// update (PUT). Description stays a pointer so an absent field survives the
// round trip.
type ItemPayload struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (p ItemPayload) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required and must not be empty"}
	}
	if len(p.Name) > commons.ItemNameMaxLength {
		return &ValidationError{Field: "name", Reason: "must be at most 100 characters"}
	}
	if p.Description != nil && len(*p.Description) > commons.ItemDescriptionMaxLength {
		return &ValidationError{Field: "description", Reason: "must be at most 500 characters"}
	}
	return nil
}
