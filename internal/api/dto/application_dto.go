package dto

import "github.com/cuongbtq/career-tracker/internal/report"

// ApplicationRequest is the body of create and full-update requests
type ApplicationRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Status      string `json:"status" binding:"omitempty,oneof=applied interview offer rejected withdrawn"`
	Salary      string `json:"salary"`
	DateApplied string `json:"dateApplied"`
	Description string `json:"description"`
	Notes       string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListApplicationsRequest struct {
	Status   string `form:"status"`
	PageSize int    `form:"page_size"`
	Cursor   string `form:"cursor"`
}

type ListApplicationsResponse struct {
	Applications []report.Card `json:"applications"`
	NextCursor   string        `json:"next_cursor,omitempty"`
}
