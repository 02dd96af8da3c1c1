package models

import (
	"strings"
	"time"
)

type Flag struct {
	ID          int       `json:"id" yaml:"id"`
	Company     string    `json:"company" yaml:"company"`
	Role        string    `json:"role" yaml:"role"`
	Description string    `json:"description" yaml:"description"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Date        string    `json:"date" yaml:"date"`
	Timestamp   time.Time `json:"timestamp" yaml:"-"`
	Views       int64     `json:"views" yaml:"views"`
	Website     string    `json:"website,omitempty" yaml:"website"`
}

func TagClass(tag string) string {
	switch strings.ToLower(tag) {
	case "ghosting":
		return "flag-tag ghosting"
	case "unpaid challenge":
		return "flag-tag unpaid"
	case "misleading role":
		return "flag-tag misleading"
	case "offer revoked":
		return "flag-tag revoked"
	case "disrespectful behavior":
		return "flag-tag disrespectful"
	default:
		return "flag-tag"
	}
}
