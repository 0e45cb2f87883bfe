package entity

// SlotFilter is a domain-level filter for querying slots.
// Used by repository layer to avoid coupling with delivery DTOs.
type SlotFilter struct {
	SalonID  int64
	Date     string // Format: YYYY-MM-DD
	OnlyFree bool
}
