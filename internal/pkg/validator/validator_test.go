package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"no-at-sign", false},
		{"@example.com", false},
		{"user@", false},
		{"user@domain", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("1234567"))
	assert.True(t, IsValidPassword("12345678"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 29, d.Day())

	_, ok = IsValidDate("2023-02-29")
	assert.False(t, ok)

	_, ok = IsValidDate("01/02/2024")
	assert.False(t, ok)
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		uuid string
		want bool
	}{
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"550E8400-E29B-41D4-A716-446655440000", true}, // case-insensitive
		{"0190b6f5-4c2d-7b3a-9d2e-1f0a2b3c4d5e", true}, // v7
		{"not-a-uuid", false},
		{"550e8400e29b41d4a716446655440000", false}, // no dashes
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.uuid, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidUUID(tt.uuid))
		})
	}
}

func TestIsCompanyEmail(t *testing.T) {
	assert.True(t, IsCompanyEmail("alice@opshub.io", "opshub.io"))
	assert.True(t, IsCompanyEmail("Alice@OpsHub.IO", "opshub.io"))
	assert.False(t, IsCompanyEmail("mallory@gmail.com", "opshub.io"))
	assert.False(t, IsCompanyEmail("mallory@opshub.io.evil.com", "opshub.io"))
	assert.False(t, IsCompanyEmail("not-an-email", "opshub.io"))
}

func TestIsValidRating(t *testing.T) {
	assert.True(t, IsValidRating(0))
	assert.True(t, IsValidRating(10))
	assert.False(t, IsValidRating(-1))
	assert.False(t, IsValidRating(11))
}

func TestIsValidDepartment(t *testing.T) {
	assert.True(t, IsValidDepartment("IT"))
	assert.True(t, IsValidDepartment("HR"))
	assert.False(t, IsValidDepartment("Finance"))
	assert.False(t, IsValidDepartment("it"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password too short"},
	}

	assert.Equal(t, "email: email is required; password: password too short", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "email is required",
		"password": "password too short",
	}, errs.ToMap())
}
