package api

import "github.com/redflagged/redflagged/internal/models"

type FlagsRequest struct {
	Search string `json:"q" form:"q"`
	Tag    string `json:"tag" form:"tag"`
	Period string `json:"period" form:"period"`
	Sort   string `json:"sort" form:"sort"`
}

type FlagsResponse struct {
	Status
	Flags []models.Flag `json:"flags"`
	Tags  []string      `json:"tags,omitempty"`
}

type FlagResponse struct {
	Status
	Flag *models.Flag `json:"flag,omitempty"`
}
