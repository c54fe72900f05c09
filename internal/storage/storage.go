package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUserExists            = errors.New("user already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrEventTemplateNotFound = errors.New("event template not found")
	ErrBookingNotFound       = errors.New("booking not found")
)

// EncodeAddons serializes addons into the text column form. Order is kept.
func EncodeAddons(addons []string) (string, error) {
	if addons == nil {
		addons = []string{}
	}

	b, err := json.Marshal(addons)
	if err != nil {
		return "", fmt.Errorf("failed to encode addons: %w", err)
	}

	return string(b), nil
}

// DecodeAddons reverses EncodeAddons. Empty and "null" columns decode to an
// empty list.
func DecodeAddons(raw string) ([]string, error) {
	addons := []string{}
	if raw == "" || raw == "null" {
		return addons, nil
	}

	if err := json.Unmarshal([]byte(raw), &addons); err != nil {
		return nil, fmt.Errorf("failed to decode addons: %w", err)
	}

	if addons == nil {
		addons = []string{}
	}

	return addons, nil
}
