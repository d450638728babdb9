package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelreservation/internal/domain"
)

type sample struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "x", Price: 1}))

	errs := Validate(sample{Price: -1})
	assert.Equal(t, "required", errs["Name"])
	assert.Equal(t, "gte", errs["Price"])
}

func TestCheck(t *testing.T) {
	assert.NoError(t, Check(sample{Name: "ok"}))

	err := Check(sample{Price: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, "Name: failed on 'required'", err.Error())
}
