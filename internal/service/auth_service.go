package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/phamanh/retail-store-backend/internal/entity"
	"github.com/phamanh/retail-store-backend/internal/repository"
)

// ErrUnauthorized is returned when a password or token does not verify. It
// deliberately carries no detail about which check failed.
var ErrUnauthorized = errors.New("unauthorized")

// Claims is the identity a session token asserts.
type Claims struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// AuthService hashes credentials, issues and validates session tokens, and
// runs the login flow for the two credentialed entities.
type AuthService struct {
	secret       []byte
	ttl          time.Duration
	customerRepo repository.CustomerRepository
	employeeRepo repository.EmployeeRepository
}

func NewAuthService(
	secret string,
	ttl time.Duration,
	customerRepo repository.CustomerRepository,
	employeeRepo repository.EmployeeRepository,
) *AuthService {
	return &AuthService{
		secret:       []byte(secret),
		ttl:          ttl,
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
	}
}

// HashPassword produces a one-way salted hash. Called before the first
// persistence of any password; the plaintext is never stored or logged.
func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the candidate matches the stored hash.
func (s *AuthService) VerifyPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken signs a time-bounded token asserting the given identity.
func (s *AuthService) IssueToken(id, email, firstName, lastName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// ParseToken validates a bearer token and returns its claims. Missing,
// malformed and expired tokens all come back as ErrUnauthorized.
func (s *AuthService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrUnauthorized
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// LoginCustomer looks up the customer by email and verifies the password.
// Unknown email surfaces repository.ErrNotFound; a bad password surfaces
// ErrUnauthorized without revealing which check failed.
func (s *AuthService) LoginCustomer(ctx context.Context, email, password string) (string, *entity.Customer, error) {
	customer, err := s.customerRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !s.VerifyPassword(customer.Password, password) {
		return "", nil, ErrUnauthorized
	}
	token, err := s.IssueToken(customer.ID, customer.Email, customer.FirstName, customer.LastName)
	if err != nil {
		return "", nil, err
	}
	return token, customer, nil
}

// LoginEmployee is the employee flavor of LoginCustomer.
func (s *AuthService) LoginEmployee(ctx context.Context, email, password string) (string, *entity.Employee, error) {
	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}
	if !s.VerifyPassword(employee.Password, password) {
		return "", nil, ErrUnauthorized
	}
	token, err := s.IssueToken(employee.ID, employee.Email, employee.FirstName, employee.LastName)
	if err != nil {
		return "", nil, err
	}
	return token, employee, nil
}
