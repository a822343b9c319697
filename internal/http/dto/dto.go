package dto

// Request payloads for the task API. Optional fields are pointers so the
// handlers can tell "absent" from "zero value" and keep partial updates
// truly partial.

type CreateTaskRequest struct {
	Date     string  `json:"date"`
	Title    string  `json:"title"`
	Progress *int    `json:"progress"`
	Category *string `json:"category"`
	Priority *int    `json:"priority"`
}

type UpdateTaskRequest struct {
	Date     *string `json:"date"`
	Title    *string `json:"title"`
	Progress *int    `json:"progress"`
	Category *string `json:"category"`
	Priority *int    `json:"priority"`
}

type UpdateProgressRequest struct {
	Progress *int `json:"progress"`
}
