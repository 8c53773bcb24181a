// Package models defines the data carried by the Percify stores: recruitment
// postings shown on the discovery deck, scout chat threads and the messages of
// a scout conversation.
package models

import "github.com/google/uuid"

// Recruitment is a job posting card. Apart from ID the fields are display
// strings that the stores never interpret.
type Recruitment struct {
	// ID is the identity of the posting; two values with the same ID are the
	// same posting regardless of their other fields.
	ID string `json:"id" validate:"required"`

	CompanyName    string   `json:"companyName" validate:"required"`
	CompanyLogo    string   `json:"companyLogo,omitempty"`
	BadgeText      string   `json:"badgeText,omitempty"`
	Title          string   `json:"title"`
	IndustryLabel  string   `json:"industryLabel,omitempty"`
	Industry       string   `json:"industry,omitempty"`
	TypeLabel      string   `json:"typeLabel,omitempty"`
	EmploymentType string   `json:"employmentType,omitempty"`
	Pay1Label      string   `json:"pay1Label,omitempty"`
	Pay1           string   `json:"pay1,omitempty"`
	Pay2Label      string   `json:"pay2Label,omitempty"`
	Pay2           string   `json:"pay2,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Deadline       string   `json:"deadline,omitempty"`
	Classification string   `json:"classification,omitempty"`
	HeaderImageURL string   `json:"headerImageUrl,omitempty"`
	Location       string   `json:"location,omitempty"`
}

// NewRecruitment returns r with a freshly generated ID.
func NewRecruitment(r Recruitment) Recruitment {
	r.ID = uuid.NewString()
	return r
}

// SameAs reports whether r and other are the same posting.
func (r Recruitment) SameAs(other Recruitment) bool {
	return r.ID == other.ID
}
