package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-board/internal/config"
	"github.com/MKhiriev/go-task-board/internal/crypto"
	"github.com/MKhiriev/go-task-board/internal/logger"
	"github.com/MKhiriev/go-task-board/internal/store"
	"github.com/MKhiriev/go-task-board/internal/utils"
	"github.com/MKhiriev/go-task-board/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification and the session token
// lifecycle using a UserRepository for persistence and an Argon2id
// PasswordHasher for password storage.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHasher derives and verifies the salted one-way password
	// hashes persisted with each account.
	passwordHasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify session tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, passwordHasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new account.
//
// It validates the boundary input, derives a salted hash of the password,
// and delegates persistence to the UserRepository. The plaintext password
// never leaves this method.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - a validation sentinel if a required field is missing or malformed.
//   - store.ErrEmailAlreadyExists if the email is already registered; the
//     existing account is left untouched.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateRegisterRequest(request); err != nil {
		log.Error().Str("email", request.Email).Err(err).Msg("invalid registration data provided")
		return models.User{}, err
	}

	passwordHash, err := a.passwordHasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		Name:         request.Name,
	})
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks the account up by email and verifies the supplied password
// against the stored salted hash.
//
// Returns the authenticated user record or:
//   - a validation sentinel if email or password is empty.
//   - A wrapped storage error if the lookup fails (unknown email — see
//     store.ErrNoUserWasFound).
//   - ErrWrongPassword if the password does not match. An existing email
//     with a wrong password never reports the email as unknown.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := validateLoginRequest(request); err != nil {
		log.Error().Str("email", request.Email).Err(err).Msg("invalid login data provided")
		return models.User{}, err
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		log.Err(err).Str("email", request.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	matches, err := a.passwordHasher.Verify(foundUser.PasswordHash, request.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash could not be verified")
		return models.User{}, fmt.Errorf("stored password hash could not be verified: %w", err)
	}
	if !matches {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session token string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature
// and the issuer claim. Any validation failure (expired, wrong issuer,
// malformed) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
