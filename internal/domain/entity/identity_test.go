package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDisplayName(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		email       string
		want        string
	}{
		{name: "provider name wins", displayName: "Ann Lee", email: "ann@example.com", want: "Ann Lee"},
		{name: "email local part", displayName: "", email: "ann@example.com", want: "ann"},
		{name: "blank provider name", displayName: "   ", email: "bob@example.com", want: "bob"},
		{name: "email without domain", displayName: "", email: "carol", want: "carol"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultDisplayName(tt.displayName, tt.email))
		})
	}
}

func TestProfilePatch_ApplyKeepsRole(t *testing.T) {
	name := "New Name"
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	in := &Identity{ID: "u1", Name: "Old", Role: RoleHomeowner}

	out := (&ProfilePatch{Name: &name}).Apply(in, now)

	assert.Equal(t, "New Name", out.Name)
	assert.Equal(t, RoleHomeowner, out.Role)
	assert.Equal(t, now, out.UpdatedAt)
	assert.Equal(t, "Old", in.Name)
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleHomeowner, RoleFromString("homeowner"))
	assert.Equal(t, RoleUser, RoleFromString("admin"))
}

func TestSearchCriteria_MatchesAllSpotTypes(t *testing.T) {
	assert.True(t, SearchCriteria{}.MatchesAllSpotTypes())
	assert.True(t, SearchCriteria{SpotTypes: []SpotType{SpotTypeGarage, SpotTypeAll}}.MatchesAllSpotTypes())
	assert.False(t, SearchCriteria{SpotTypes: []SpotType{SpotTypeGarage}}.MatchesAllSpotTypes())
}
