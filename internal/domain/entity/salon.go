package entity

// Slot duration bounds in minutes
const (
	MinSlotDuration = 5
	MaxSlotDuration = 180
)

// Defaults for a new salon
const (
	DefaultOpensAt      = "08:00"
	DefaultClosesAt     = "16:00"
	DefaultSlotDuration = 30
)

// Salon represents a salon managed by an owner and offered to customers
type Salon struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	Description  string `json:"description,omitempty"`
	IsActive     bool   `json:"is_active"`
	OpensAt      string `json:"opens_at"`
	ClosesAt     string `json:"closes_at"`
	SlotDuration int    `json:"slot_duration"`
	OwnerName    string `json:"owner_name,omitempty"`
}

// NewSalon returns a salon pre-filled with the create form defaults
func NewSalon() Salon {
	return Salon{
		IsActive:     true,
		OpensAt:      DefaultOpensAt,
		ClosesAt:     DefaultClosesAt,
		SlotDuration: DefaultSlotDuration,
	}
}

// HasValidHours reports whether the salon opens before it closes.
// Both values are HH:MM so lexical order equals time order.
func (s *Salon) HasValidHours() bool {
	return s.OpensAt < s.ClosesAt
}

// HasValidDuration reports whether the slot duration is within bounds
func (s *Salon) HasValidDuration() bool {
	return s.SlotDuration >= MinSlotDuration && s.SlotDuration <= MaxSlotDuration
}
