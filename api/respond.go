package api

import "github.com/redflagged/redflagged/internal/models"

type RespondRequest struct {
	Response string `json:"response" form:"response"`
	Email    string `json:"email" form:"email"`
	Name     string `json:"name" form:"name"`
	Title    string `json:"title" form:"title"`
}

type RespondResponse struct {
	Status
	ID     string            `json:"id,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

type ResponsesResponse struct {
	Status
	Responses []models.Response `json:"responses,omitempty"`
}
