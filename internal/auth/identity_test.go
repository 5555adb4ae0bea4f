package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-portal-backend/internal/apperror"
)

var testSecret = []byte("test-secret")

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken(EmployeeCaller("EMP010", "Employee"), testSecret, time.Hour)
	require.NoError(t, err)

	caller, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.False(t, caller.Owner)
	assert.Equal(t, "EMP010", caller.EmpID)
	assert.Equal(t, RoleEmployee, caller.Role)
}

func TestOwnerTokenRoundTrip(t *testing.T) {
	token, err := NewToken(OwnerCaller(), testSecret, time.Hour)
	require.NoError(t, err)

	caller, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.True(t, caller.Owner)
	assert.Empty(t, caller.EmpID)
}

func TestParseTokenRejectsBadSignature(t *testing.T) {
	token, err := NewToken(EmployeeCaller("EMP010", "employee"), testSecret, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(token, []byte("other-secret"))
	assert.Equal(t, apperror.CodeUnauthenticated, apperror.GetCode(err))

	_, err = ParseToken("not-a-token", testSecret)
	assert.Equal(t, apperror.CodeUnauthenticated, apperror.GetCode(err))
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := NewToken(EmployeeCaller("EMP010", "employee"), testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token, testSecret)
	assert.Equal(t, apperror.CodeUnauthenticated, apperror.GetCode(err))
}
