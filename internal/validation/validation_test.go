package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "alice", false},
		{"valid with separators", "a.b_c-d", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too long", strings.Repeat("a", 21), true},
		{"exactly max length", strings.Repeat("a", 20), false},
		{"illegal characters", "alice!", true},
		{"spaces inside", "ali ce", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"valid", "alice@example.com", false},
		{"empty", "", true},
		{"no at sign", "alice.example.com", true},
		{"no domain dot", "alice@example", true},
		{"too long", strings.Repeat("a", 45) + "@ex.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "hunter2hunter2", false},
		{"valid minimum length", "hunter22", false},
		{"too short", "ab1", true},
		{"digits only", "12345678", true},
		{"letters only", "abcdefgh", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateText("hello"))
	assert.NoError(t, ValidateText(strings.Repeat("x", 280)))
	assert.Error(t, ValidateText(strings.Repeat("x", 281)))
	assert.Error(t, ValidateText(""))
	assert.Error(t, ValidateText("   \n\t  "))
}

func TestValidateBio(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBio(""))
	assert.NoError(t, ValidateBio(strings.Repeat("b", 500)))
	assert.Error(t, ValidateBio(strings.Repeat("b", 501)))
}
