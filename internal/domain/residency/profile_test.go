package residency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTenantProfile(t *testing.T) {
	p, err := NewTenantProfile("Ana@Example.com", "secret123", "Ana Souza", "11999999999", 5)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", p.Email)
	assert.Equal(t, RoleTenant, p.Role)
	require.NotNil(t, p.ApartmentNumber)
	assert.Equal(t, 5, *p.ApartmentNumber)
	assert.NotNil(t, p.MoveInDate)
	assert.True(t, p.VerifyPassword("secret123"))
	assert.False(t, p.VerifyPassword("wrong"))
}

func TestNewTenantProfileValidation(t *testing.T) {
	_, err := NewTenantProfile("not-an-email", "secret123", "Ana", "119", 5)
	assert.Error(t, err)

	_, err = NewTenantProfile("a@b.com", "short", "Ana", "119", 5)
	assert.Error(t, err)

	_, err = NewTenantProfile("a@b.com", "secret123", "", "119", 5)
	assert.Error(t, err)

	_, err = NewTenantProfile("a@b.com", "secret123", "Ana", "119", 0)
	assert.Error(t, err)
}

func TestNewAdminProfile(t *testing.T) {
	p, err := NewAdminProfile("admin@predio.com", "secret123", "Admin")
	require.NoError(t, err)
	assert.True(t, p.IsAdmin())
	assert.Nil(t, p.ApartmentNumber)
}

func TestSetPassword(t *testing.T) {
	p, err := NewAdminProfile("admin@predio.com", "secret123", "Admin")
	require.NoError(t, err)

	require.NoError(t, p.SetPassword("newpass456"))
	assert.True(t, p.VerifyPassword("newpass456"))
	assert.False(t, p.VerifyPassword("secret123"))

	assert.Error(t, p.SetPassword("x"))
}

func TestPhoneSuffix(t *testing.T) {
	p, err := NewTenantProfile("a@b.com", "secret123", "Ana", "+55 (11) 99999-1234", 5)
	require.NoError(t, err)
	assert.Equal(t, "99991234", p.PhoneSuffix(8))

	p.Phone = "1234"
	assert.Equal(t, "1234", p.PhoneSuffix(8))
}
