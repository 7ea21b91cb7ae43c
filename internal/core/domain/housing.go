package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidConfig           = errors.New("unsupported housing configuration")
	ErrMalformedAggregateInput = errors.New("weekly summary requires exactly 7 daily readings")
)

// HousingType is the building type the household lives in.
type HousingType int

const (
	Flat HousingType = iota + 1
	Tenement
)

var housingNames = map[HousingType]string{
	Flat:     "flat",
	Tenement: "tenement",
}

func (h HousingType) String() string {
	if name, ok := housingNames[h]; ok {
		return name
	}
	return fmt.Sprintf("housing(%d)", int(h))
}

func (h HousingType) MarshalText() ([]byte, error) {
	if _, ok := housingNames[h]; !ok {
		return nil, ErrInvalidConfig
	}
	return []byte(h.String()), nil
}

func (h *HousingType) UnmarshalText(text []byte) error {
	parsed, err := ParseHousingType(string(text))
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}

// ParseHousingType accepts "flat" or "tenement" in any case.
func ParseHousingType(s string) (HousingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat":
		return Flat, nil
	case "tenement":
		return Tenement, nil
	}
	return 0, fmt.Errorf("%w: unknown housing type %q", ErrInvalidConfig, s)
}

// BHK is the bedroom count of a bedroom-hall-kitchen configuration.
type BHK int

func (b BHK) String() string {
	return strconv.Itoa(int(b)) + "BHK"
}

// ParseBHK accepts "2", "2BHK" or "2bhk". Range checks happen at profile lookup.
func ParseBHK(s string) (BHK, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) > 3 && strings.EqualFold(trimmed[len(trimmed)-3:], "bhk") {
		trimmed = strings.TrimSpace(trimmed[:len(trimmed)-3])
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: unknown BHK configuration %q", ErrInvalidConfig, s)
	}
	return BHK(n), nil
}

type ProfileKey struct {
	Housing HousingType `json:"housing_type"`
	BHK     BHK         `json:"bhk"`
}

func (k ProfileKey) String() string {
	return k.Housing.String() + "/" + k.BHK.String()
}
