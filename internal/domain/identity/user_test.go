package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := NewUser("Ana Souza", "  Ana@Padaria.com ", "segredo-forte", RoleSupervisorProducao)
	require.NoError(t, err)

	assert.Equal(t, "Ana Souza", user.Name)
	assert.Equal(t, "ana@padaria.com", user.Email)
	assert.Equal(t, RoleSupervisorProducao, user.Role)
	assert.NotEqual(t, "segredo-forte", user.PasswordHash)
	assert.True(t, user.CheckPassword("segredo-forte"))
	assert.False(t, user.CheckPassword("outra-senha"))
}

func TestNewUserRejectsInvalidEmail(t *testing.T) {
	_, err := NewUser("Ana", "not-an-email", "segredo-forte", RoleEspectador)
	assert.Error(t, err)
}

func TestNewUserRejectsShortPassword(t *testing.T) {
	_, err := NewUser("Ana", "ana@padaria.com", "curta", RoleEspectador)
	assert.Error(t, err)
}

func TestRecordLogin(t *testing.T) {
	user, err := NewUser("Ana", "ana@padaria.com", "segredo-forte", RoleEspectador)
	require.NoError(t, err)
	require.Nil(t, user.LastLoginAt)

	now := time.Now()
	user.RecordLogin(now)
	require.NotNil(t, user.LastLoginAt)
	assert.Equal(t, now, *user.LastLoginAt)
}
