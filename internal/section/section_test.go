package section_test

import (
	"testing"

	"bookfast-web/internal/section"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		list       section.AllowList
		requested  string
		want       section.Section
		normalized bool
	}{
		{"allowed admin tab", section.AdminSections, "rezervacije", section.Bookings, false},
		{"allowed employees tab", section.AdminSections, "zaposlenici", section.Employees, false},
		{"unknown tab", section.AdminSections, "xyz", section.Salons, true},
		{"empty tab", section.AdminSections, "", section.Salons, true},
		{"admin-only tab on customer page", section.CustomerSections, "zaposlenici", section.Salons, true},
		{"customer bookings", section.CustomerSections, "rezervacije", section.Bookings, false},
		{"case sensitive", section.CustomerSections, "Saloni", section.Salons, true},
		{"empty allow list", section.AllowList{}, "saloni", "", true},
		{"empty allow list empty input", section.AllowList{}, "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, normalized := tt.list.Resolve(tt.requested)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.normalized, normalized)
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	for _, input := range []string{"", "xyz", "saloni", "rezervacije", "zaposlenici"} {
		first, _ := section.AdminSections.Resolve(input)
		second, normalized := section.AdminSections.Resolve(string(first))
		assert.Equal(t, first, second)
		assert.False(t, normalized)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Saloni", section.Label(section.Salons))
	assert.Equal(t, "Zaposlenici", section.Label(section.Employees))
	assert.Equal(t, "Rezervacije", section.Label(section.Bookings))
}
