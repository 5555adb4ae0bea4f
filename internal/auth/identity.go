package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"employee-portal-backend/internal/apperror"
)

// Caller is the identity behind a request. The owner is a tagged variant,
// not an employee id with a magic value: when Owner is true, EmpID is empty
// and the caller is the configuration-backed top of the hierarchy.
type Caller struct {
	Owner bool
	EmpID string
	Role  string
}

func OwnerCaller() Caller {
	return Caller{Owner: true, Role: RoleOwner}
}

func EmployeeCaller(empID, role string) Caller {
	return Caller{EmpID: empID, Role: NormalizeRole(role)}
}

type tokenClaims struct {
	EmpID string `json:"emp_id"`
	Role  string `json:"role"`
	Owner bool   `json:"owner"`
	jwt.RegisteredClaims
}

// NewToken signs a session credential for the caller. The role captured here
// is the role at login time; it is deliberately not refreshed during the
// session, so server-side role changes only take effect on the next login.
func NewToken(caller Caller, secret []byte, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		EmpID: caller.EmpID,
		Role:  caller.Role,
		Owner: caller.Owner,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken verifies the credential signature and returns the embedded
// caller identity.
func ParseToken(tokenString string, secret []byte) (Caller, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.New(apperror.CodeUnauthenticated, "unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return Caller{}, apperror.New(apperror.CodeUnauthenticated, "invalid or expired token")
	}

	if claims.Owner {
		return OwnerCaller(), nil
	}
	if claims.EmpID == "" {
		return Caller{}, apperror.New(apperror.CodeUnauthenticated, "token carries no identity")
	}
	return EmployeeCaller(claims.EmpID, claims.Role), nil
}
