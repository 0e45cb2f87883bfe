package validator_test

import (
	"testing"

	"bookfast-web/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hoursForm struct {
	Name     string `validate:"required" label:"Naziv"`
	OpensAt  string `validate:"required,hhmm" label:"Radno od"`
	Duration int    `validate:"gte=5,lte=180" label:"Trajanje"`
	Email    string `validate:"omitempty,email" label:"Email"`
}

func TestValidate(t *testing.T) {
	v := validator.NewValidator()

	require.NoError(t, v.Validate(&hoursForm{Name: "Salon", OpensAt: "08:30", Duration: 30}))

	err := v.Validate(&hoursForm{OpensAt: "25:00", Duration: 200, Email: "nope"})
	require.Error(t, err)

	formatted := v.FormatValidationErrors(err)
	assert.Equal(t, "Naziv je obavezno polje", formatted["Naziv"])
	assert.Equal(t, "Radno od mora biti u obliku HH:MM", formatted["Radno od"])
	assert.Equal(t, "Trajanje mora biti manje ili jednako 180", formatted["Trajanje"])
	assert.Equal(t, "Email mora biti ispravna email adresa", formatted["Email"])

	assert.Equal(t,
		"Email mora biti ispravna email adresa; Naziv je obavezno polje; Radno od mora biti u obliku HH:MM; Trajanje mora biti manje ili jednako 180.",
		v.Summary(err))
}

func TestHHMM(t *testing.T) {
	v := validator.NewValidator()
	for _, ok := range []string{"00:00", "08:05", "23:59"} {
		assert.NoError(t, v.Validate(&hoursForm{Name: "x", OpensAt: ok, Duration: 5}), ok)
	}
	for _, bad := range []string{"8:00", "24:00", "12:60", "12:00:00", ""} {
		assert.Error(t, v.Validate(&hoursForm{Name: "x", OpensAt: bad, Duration: 5}), bad)
	}
}
