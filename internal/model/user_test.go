package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func TestMergeUser(t *testing.T) {
	existing := User{
		ID:       3,
		FullName: "Old Name",
		Email:    "old@example.com",
		Password: "secret",
		Address:  "1 Main St",
	}

	merged := MergeUser(existing, UserPatch{
		ID:       3,
		FullName: strptr("New Name"),
		Email:    nil, // absent fields keep stored values
	})
	assert.Equal(t, "New Name", merged.FullName)
	assert.Equal(t, "old@example.com", merged.Email)
	assert.Equal(t, "1 Main St", merged.Address)
	assert.Equal(t, "secret", merged.Password)
}

func TestMergeUserPasswordRules(t *testing.T) {
	existing := User{ID: 3, Password: "secret"}

	merged := MergeUser(existing, UserPatch{ID: 3, Password: strptr("")})
	assert.Equal(t, "secret", merged.Password, "empty password must not overwrite")

	merged = MergeUser(existing, UserPatch{ID: 3, Password: strptr("next")})
	assert.Equal(t, "next", merged.Password)
}

func TestMergeUserBoolField(t *testing.T) {
	existing := User{ID: 3, IsCompany: true}

	merged := MergeUser(existing, UserPatch{ID: 3})
	assert.True(t, merged.IsCompany)

	no := false
	merged = MergeUser(existing, UserPatch{ID: 3, IsCompany: &no})
	assert.False(t, merged.IsCompany)
}
