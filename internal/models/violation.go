package models

type Violation struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Violations = []Violation{
	{ID: "ghosting", Label: "Ghosting"},
	{ID: "unpaid", Label: "Unpaid Challenge"},
	{ID: "misleading", Label: "Misleading Role"},
	{ID: "revoked", Label: "Offer Revoked"},
	{ID: "disrespectful", Label: "Disrespectful Behavior"},
	{ID: "other", Label: "Other"},
}

func FindViolation(id string) (Violation, bool) {
	for _, v := range Violations {
		if v.ID == id {
			return v, true
		}
	}
	return Violation{}, false
}
