package lead

import (
	"encoding/json"
	"errors"
	"strings"

	"buyerleads/internal/pkg/validator"
)

// TagList accepts either a JSON array of strings or a single
// comma-delimited string; elements are trimmed and empties dropped.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || string(b) == "null" {
		*t = nil
		return nil
	}

	switch b[0] {
	case '[':
		var arr []string
		if err := json.Unmarshal(b, &arr); err != nil {
			return err
		}
		*t = cleanTags(arr)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = cleanTags(strings.Split(s, ","))
		return nil
	default:
		return errors.New("tags must be a string or an array of strings")
	}
}

func cleanTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	for _, tag := range raw {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}

// CreateLeadRequest carries a raw submitted lead form.
type CreateLeadRequest struct {
	FullName     string   `json:"fullName" validate:"required,min=2"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone" validate:"required,min=10,max=15"`
	City         string   `json:"city" validate:"required,oneof=Chandigarh Mohali Zirakpur Panchkula Other"`
	PropertyType string   `json:"propertyType" validate:"required,oneof=Apartment Villa Plot Office Retail"`
	BHK          string   `json:"bhk" validate:"omitempty,oneof=1 2 3 4 Studio"`
	Purpose      string   `json:"purpose" validate:"required,oneof=Buy Rent"`
	Timeline     string   `json:"timeline" validate:"required,oneof=0-3m 3-6m >6m Exploring"`
	BudgetMin    *float64 `json:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax    *float64 `json:"budgetMax" validate:"omitempty,gte=0"`
	Source       string   `json:"source" validate:"required,oneof=Website Referral Walk-in Call Other"`
	Tags         TagList  `json:"tags"`
	Notes        string   `json:"notes" validate:"omitempty,max=1000"`
	Status       string   `json:"status" validate:"omitempty,oneof=New Qualified Contacted Visited Negotiation Converted Dropped"`
}

// Validate collects every field error into one map. The bhk field only
// carries meaning for Apartment and Villa; for other property types any
// submitted value is dropped rather than rejected. There is no
// budgetMin <= budgetMax cross-check: the store has always accepted an
// inverted range and callers depend on that.
func (r *CreateLeadRequest) Validate() map[string]string {
	if r.PropertyType != "Apartment" && r.PropertyType != "Villa" {
		r.BHK = ""
	}
	return validator.Collect(r)
}

// UpdateLeadRequest is a partial field patch; nil means "leave alone".
type UpdateLeadRequest struct {
	FullName     *string  `json:"fullName" validate:"omitempty,min=2"`
	Email        *string  `json:"email" validate:"omitempty,email"`
	Phone        *string  `json:"phone" validate:"omitempty,min=10,max=15"`
	City         *string  `json:"city" validate:"omitempty,oneof=Chandigarh Mohali Zirakpur Panchkula Other"`
	PropertyType *string  `json:"propertyType" validate:"omitempty,oneof=Apartment Villa Plot Office Retail"`
	BHK          *string  `json:"bhk" validate:"omitempty,oneof=1 2 3 4 Studio"`
	Purpose      *string  `json:"purpose" validate:"omitempty,oneof=Buy Rent"`
	Timeline     *string  `json:"timeline" validate:"omitempty,oneof=0-3m 3-6m >6m Exploring"`
	BudgetMin    *float64 `json:"budgetMin" validate:"omitempty,gte=0"`
	BudgetMax    *float64 `json:"budgetMax" validate:"omitempty,gte=0"`
	Source       *string  `json:"source" validate:"omitempty,oneof=Website Referral Walk-in Call Other"`
	Tags         *TagList `json:"tags"`
	Notes        *string  `json:"notes" validate:"omitempty,max=1000"`
	Status       *string  `json:"status" validate:"omitempty,oneof=New Qualified Contacted Visited Negotiation Converted Dropped"`
}

func (r *UpdateLeadRequest) Validate() map[string]string {
	return validator.Collect(r)
}

// StatsResponse reports lead counts per lifecycle stage.
type StatsResponse struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}
