package auth

import "errors"

var (
	// ErrInvalidCredentials is returned when the admin credential does not
	// match. Also returned when no credential is configured at all, so a
	// blank deployment cannot be logged into.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Service validates the single shared admin credential and issues session
// tokens. There are no user accounts; this is the only authentication the
// relay carries.
type Service struct {
	adminUsername     string
	adminPasswordHash string
	jwtConfig         *JWTConfig
}

// NewService creates an authentication service around the configured shared
// admin credential.
func NewService(adminUsername, adminPasswordHash string, jwtConfig *JWTConfig) *Service {
	return &Service{
		adminUsername:     adminUsername,
		adminPasswordHash: adminPasswordHash,
		jwtConfig:         jwtConfig,
	}
}

// Login checks the shared credential and returns a session token.
func (s *Service) Login(username, password string) (string, error) {
	if s.adminPasswordHash == "" || username != s.adminUsername {
		return "", ErrInvalidCredentials
	}
	if err := ComparePassword(s.adminPasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}
	return GenerateToken(s.jwtConfig, username)
}

// ValidateToken parses and validates a session token.
func (s *Service) ValidateToken(token string) (*Claims, error) {
	return ValidateToken(s.jwtConfig, token)
}
