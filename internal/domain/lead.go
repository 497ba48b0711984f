package domain

import "time"

// LeadStatus represents the lifecycle stage of a buyer lead
type LeadStatus string

const (
	StatusNew         LeadStatus = "New"
	StatusQualified   LeadStatus = "Qualified"
	StatusContacted   LeadStatus = "Contacted"
	StatusVisited     LeadStatus = "Visited"
	StatusNegotiation LeadStatus = "Negotiation"
	StatusConverted   LeadStatus = "Converted"
	StatusDropped     LeadStatus = "Dropped"
)

// LeadStatuses lists every valid lifecycle stage.
var LeadStatuses = []LeadStatus{
	StatusNew,
	StatusQualified,
	StatusContacted,
	StatusVisited,
	StatusNegotiation,
	StatusConverted,
	StatusDropped,
}

func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal returns true for stages that end the lifecycle.
func (s LeadStatus) Terminal() bool {
	return s == StatusConverted || s == StatusDropped
}

// CanTransitionTo reports whether a status edit is allowed.
// Any non-terminal stage may move to any other valid stage;
// terminal stages only accept a same-status no-op.
func (s LeadStatus) CanTransitionTo(next LeadStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return !s.Terminal()
}

type City string

const (
	CityChandigarh City = "Chandigarh"
	CityMohali     City = "Mohali"
	CityZirakpur   City = "Zirakpur"
	CityPanchkula  City = "Panchkula"
	CityOther      City = "Other"
)

type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyPlot      PropertyType = "Plot"
	PropertyOffice    PropertyType = "Office"
	PropertyRetail    PropertyType = "Retail"
)

// HasBHK reports whether the bhk field carries meaning for this
// property type. For all other types bhk is ignored, not rejected.
func (p PropertyType) HasBHK() bool {
	return p == PropertyApartment || p == PropertyVilla
}

type BHK string

const (
	BHK1      BHK = "1"
	BHK2      BHK = "2"
	BHK3      BHK = "3"
	BHK4      BHK = "4"
	BHKStudio BHK = "Studio"
)

type Purpose string

const (
	PurposeBuy  Purpose = "Buy"
	PurposeRent Purpose = "Rent"
)

type Timeline string

const (
	TimelineZeroToThree Timeline = "0-3m"
	TimelineThreeToSix  Timeline = "3-6m"
	TimelineOverSix     Timeline = ">6m"
	TimelineExploring   Timeline = "Exploring"
)

type LeadSource string

const (
	SourceWebsite  LeadSource = "Website"
	SourceReferral LeadSource = "Referral"
	SourceWalkIn   LeadSource = "Walk-in"
	SourceCall     LeadSource = "Call"
	SourceOther    LeadSource = "Other"
)

// BuyerLead is a prospective buyer's property-search record.
type BuyerLead struct {
	ID              int64        `json:"id"`
	OwnerID         int64        `json:"owner_id"`
	OwnerExternalID string       `json:"owner_external_id"`
	FullName        string       `json:"full_name"`
	Email           string       `json:"email,omitempty"`
	Phone           string       `json:"phone"`
	City            City         `json:"city"`
	PropertyType    PropertyType `json:"property_type"`
	BHK             BHK          `json:"bhk,omitempty"`
	Purpose         Purpose      `json:"purpose"`
	Timeline        Timeline     `json:"timeline"`
	BudgetMin       *float64     `json:"budget_min,omitempty"`
	BudgetMax       *float64     `json:"budget_max,omitempty"`
	Status          LeadStatus   `json:"status"`
	Source          LeadSource   `json:"source"`
	Tags            []string     `json:"tags,omitempty"`
	Notes           string       `json:"notes,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
}
