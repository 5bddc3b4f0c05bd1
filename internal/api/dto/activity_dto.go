package dto

import "github.com/cuongbtq/career-tracker/internal/events"

type ActivityRequest struct {
	Limit int `form:"limit" binding:"omitempty,min=0"`
}

type ActivityResponse struct {
	Events []events.Event `json:"events"`
}
