package view

import (
	"html/template"
	"net/url"

	"bookfast-web/internal/delivery/dto"
	"bookfast-web/internal/section"
	"bookfast-web/internal/session"
)

const Brand = "BookFast"

// NavLink is one entry of the dashboard navigation
type NavLink struct {
	ID     section.Section
	Label  string
	Href   string
	Active bool
}

// Layout carries what the shell around every page needs
type Layout struct {
	Title     string
	Brand     string
	Links     []NavLink
	User      *dto.UserResponse
	Notices   []session.Notice
	CSRFField template.HTML
}

// NavLinks builds the navigation of a dashboard served at basePath. Every
// section of allow gets a link carrying it in the tab query parameter.
func NavLinks(basePath string, allow section.AllowList, active section.Section) []NavLink {
	links := make([]NavLink, 0, len(allow))
	for _, s := range allow {
		label := section.Label(s)
		if s == section.Salons && basePath == "/admin" {
			label = "Moji saloni"
		}
		links = append(links, NavLink{
			ID:     s,
			Label:  label,
			Href:   basePath + "?" + url.Values{section.QueryParam: {string(s)}}.Encode(),
			Active: s == active,
		})
	}
	return links
}

// ConfirmDialog asks the user to confirm a pending destructive action
type ConfirmDialog struct {
	Prompt        string
	Action        string
	DismissAction string
	CSRFField     template.HTML
}

// NewConfirmDialog returns nil when nothing is pending
func NewConfirmDialog(p *session.PendingAction, basePath string, csrfField template.HTML) *ConfirmDialog {
	if p == nil {
		return nil
	}
	return &ConfirmDialog{
		Prompt:        p.Prompt(),
		Action:        basePath + "/confirm",
		DismissAction: basePath + "/confirm/dismiss",
		CSRFField:     csrfField,
	}
}

type AuthPage struct {
	Layout
	Register bool
	Name     string
	Email    string
}

type AdminPage struct {
	Layout
	Section   section.Section
	Salons    []dto.SalonResponse
	Employees []dto.EmployeeResponse
	Bookings  []dto.BookingResponse
	SalonForm dto.SalonRequest
	Confirm   *ConfirmDialog
}

type UserPage struct {
	Layout
	Section      section.Section
	Query        string
	Salons       SalonList
	ActiveSalon  *dto.SalonResponse
	Calendar     dto.CalendarResponse
	Date         string
	DateLabel    string
	Slots        []dto.SlotResponse
	SelectedSlot *dto.SlotResponse
	Bookings     []dto.BookingResponse
	Confirm      *ConfirmDialog
}

// SalonList is the salon search result, rendered inside the customer page
// and on its own by the live search.
type SalonList struct {
	Salons    []dto.SalonResponse
	Query     string
	CSRFField template.HTML
}
