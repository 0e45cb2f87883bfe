package api

import (
	"strings"
	"time"

	"bookfast-web/internal/domain/entity"
)

// Upstream booking statuses
const (
	StatusConfirmed = "potvrdena"
	StatusCancelled = "otkazana"
)

type UserModel struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"ime"`
	Email    string `json:"email"`
	IsStaff  bool   `json:"is_staff"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  UserModel `json:"user"`
}

func (r *AuthResponse) ToEntity() *entity.AuthResult {
	return &entity.AuthResult{
		Token: r.Token,
		User: entity.User{
			ID:       r.User.ID,
			Username: r.User.Username,
			FullName: r.User.Name,
			Email:    r.User.Email,
			IsStaff:  r.User.IsStaff,
		},
	}
}

type RegisterRequest struct {
	Name     string `json:"ime"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsOwner  bool   `json:"is_vlasnik"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SalonModel struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"naziv"`
	Address      string `json:"adresa"`
	Description  string `json:"opis"`
	IsActive     bool   `json:"aktivan"`
	OpensAt      string `json:"radno_od"`
	ClosesAt     string `json:"radno_do"`
	SlotDuration int    `json:"trajanje_termina_min"`
	OwnerName    string `json:"vlasnik_ime,omitempty"`
}

// NewSalonModel builds the write body of a salon
func NewSalonModel(s *entity.Salon) SalonModel {
	return SalonModel{
		Name:         s.Name,
		Address:      s.Address,
		Description:  s.Description,
		IsActive:     s.IsActive,
		OpensAt:      s.OpensAt,
		ClosesAt:     s.ClosesAt,
		SlotDuration: s.SlotDuration,
	}
}

func (m *SalonModel) ToEntity() entity.Salon {
	return entity.Salon{
		ID:           m.ID,
		Name:         m.Name,
		Address:      m.Address,
		Description:  m.Description,
		IsActive:     m.IsActive,
		OpensAt:      Clock(m.OpensAt),
		ClosesAt:     Clock(m.ClosesAt),
		SlotDuration: m.SlotDuration,
		OwnerName:    m.OwnerName,
	}
}

type EmployeeModel struct {
	ID       int64  `json:"id,omitempty"`
	SalonID  int64  `json:"salon"`
	FullName string `json:"ime_prezime"`
	IsActive bool   `json:"aktivan"`
}

func (m *EmployeeModel) ToEntity() entity.Employee {
	return entity.Employee{
		ID:       m.ID,
		SalonID:  m.SalonID,
		FullName: m.FullName,
		IsActive: m.IsActive,
	}
}

type SlotModel struct {
	ID          string `json:"id"`
	SalonID     int64  `json:"salon"`
	SalonName   string `json:"salon_naziv"`
	Date        string `json:"datum"`
	StartTime   string `json:"vrijeme_od"`
	EndTime     string `json:"vrijeme_do"`
	IsAvailable bool   `json:"slobodan"`
	FreePlaces  int    `json:"slobodnih_mjesta"`
	TotalPlaces int    `json:"ukupno_mjesta"`
}

func (m *SlotModel) ToEntity() entity.Slot {
	return entity.Slot{
		ID:          m.ID,
		SalonID:     m.SalonID,
		SalonName:   m.SalonName,
		Date:        m.Date,
		StartTime:   Clock(m.StartTime),
		EndTime:     Clock(m.EndTime),
		IsAvailable: m.IsAvailable,
		FreePlaces:  m.FreePlaces,
		TotalPlaces: m.TotalPlaces,
	}
}

type BookingRequest struct {
	SalonID   int64  `json:"salon"`
	Date      string `json:"datum"`
	StartTime string `json:"vrijeme_od"`
	EndTime   string `json:"vrijeme_do"`
}

type BookingModel struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"korisnik"`
	Username  string `json:"korisnik_username"`
	UserEmail string `json:"korisnik_email"`
	SalonName string `json:"salon_naziv"`
	Date      string `json:"termin_datum"`
	StartTime string `json:"termin_od"`
	EndTime   string `json:"termin_do"`
	Status    string `json:"status"`
	Note      string `json:"napomena"`
	CreatedAt string `json:"kreirano"`
}

func (m *BookingModel) ToEntity() entity.Booking {
	b := entity.Booking{
		ID:        m.ID,
		UserID:    m.UserID,
		Username:  m.Username,
		UserEmail: m.UserEmail,
		SalonName: m.SalonName,
		Date:      m.Date,
		StartTime: Clock(m.StartTime),
		EndTime:   Clock(m.EndTime),
		Status:    BookingStatus(m.Status),
		Note:      m.Note,
	}
	if t, err := time.Parse(time.RFC3339Nano, m.CreatedAt); err == nil {
		b.CreatedAt = t
	}
	return b
}

// BookingStatus maps an upstream status to the domain one
func BookingStatus(s string) entity.BookingStatus {
	switch s {
	case StatusConfirmed:
		return entity.BookingStatusConfirmed
	case StatusCancelled:
		return entity.BookingStatusCancelled
	}
	return entity.BookingStatus(s)
}

// Clock trims a HH:MM:SS time to HH:MM
func Clock(s string) string {
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		return s[:5]
	}
	return s
}
