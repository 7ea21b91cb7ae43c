package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrValidation is the parent of every user-input validation error.
var ErrValidation = errors.New("validation failed")

var (
	ErrAgeOutOfRange         = fmt.Errorf("%w: age must be between %d and %d", ErrValidation, MinAge, MaxAge)
	ErrNameEmpty             = fmt.Errorf("%w: name cannot be empty", ErrValidation)
	ErrCityEmpty             = fmt.Errorf("%w: city cannot be empty", ErrValidation)
	ErrAreaEmpty             = fmt.Errorf("%w: area cannot be empty", ErrValidation)
	ErrFieldTooLong          = fmt.Errorf("%w: field is too long (max %d chars)", ErrValidation, MaxFieldLen)
	ErrTemperatureNotNumeric = fmt.Errorf("%w: temperature must be a number", ErrValidation)
	ErrTemperatureCount      = fmt.Errorf("%w: exactly %d daily temperatures are required", ErrValidation, DaysPerWeek)
)

const (
	MinAge      = 1
	MaxAge      = 120
	MaxFieldLen = 100
)

type Household struct {
	Name string `json:"name"`
	City string `json:"city"`
	Area string `json:"area"`
	Age  int    `json:"age"`
}

func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return ErrAgeOutOfRange
	}
	return nil
}

// ValidateTemperature rejects only NaN. Every other value, infinities
// included, is accepted and later clamped.
func ValidateTemperature(tempC float64) error {
	if math.IsNaN(tempC) {
		return ErrTemperatureNotNumeric
	}
	return nil
}

func requireField(value string, emptyErr error) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", emptyErr
	}
	if len([]rune(trimmed)) > MaxFieldLen {
		return "", ErrFieldTooLong
	}
	return trimmed, nil
}

func NewHousehold(name, city, area string, age int) (Household, error) {
	cleanName, err := requireField(name, ErrNameEmpty)
	if err != nil {
		return Household{}, err
	}
	cleanCity, err := requireField(city, ErrCityEmpty)
	if err != nil {
		return Household{}, err
	}
	cleanArea, err := requireField(area, ErrAreaEmpty)
	if err != nil {
		return Household{}, err
	}
	if err := ValidateAge(age); err != nil {
		return Household{}, err
	}

	return Household{
		Name: cleanName,
		City: cleanCity,
		Area: cleanArea,
		Age:  age,
	}, nil
}
