package notify

import "buyerleads/internal/domain"

// Event is one lead outcome pushed over the socket.
type Event struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	LeadID  int64             `json:"lead_id,omitempty"`
	Lead    *domain.BuyerLead `json:"lead,omitempty"`
}

// LeadNotifier adapts the hub to the lead service's Notifier interface.
type LeadNotifier struct {
	hub *Hub
}

func NewLeadNotifier(hub *Hub) *LeadNotifier {
	return &LeadNotifier{hub: hub}
}

func (n *LeadNotifier) LeadCreated(ownerExternalID string, l *domain.BuyerLead) {
	n.hub.SendToOwner(ownerExternalID, Event{
		Type:    "lead_created",
		Message: "Buyer lead created successfully",
		LeadID:  l.ID,
		Lead:    l,
	})
}

func (n *LeadNotifier) LeadUpdated(ownerExternalID string, l *domain.BuyerLead) {
	n.hub.SendToOwner(ownerExternalID, Event{
		Type:    "lead_updated",
		Message: "Data updated successfully",
		LeadID:  l.ID,
		Lead:    l,
	})
}

func (n *LeadNotifier) LeadDeleted(ownerExternalID string, id int64) {
	n.hub.SendToOwner(ownerExternalID, Event{
		Type:    "lead_deleted",
		Message: "Data deleted successfully",
		LeadID:  id,
	})
}
