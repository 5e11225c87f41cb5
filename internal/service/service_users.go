package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Rajshri-Priya/fundoo-notes/internal/config"
	"github.com/Rajshri-Priya/fundoo-notes/internal/logger"
	"github.com/Rajshri-Priya/fundoo-notes/internal/mailer"
	"github.com/Rajshri-Priya/fundoo-notes/internal/store"
	"github.com/Rajshri-Priya/fundoo-notes/internal/utils"
	"github.com/Rajshri-Priya/fundoo-notes/internal/validators"
	"github.com/Rajshri-Priya/fundoo-notes/models"
)

// verifyPath is the route of the users service that consumes verification links.
const verifyPath = "/api/users/verify"

// userService is the concrete implementation of UserService.
// It handles registration, email verification, credential checks and the
// JWT token lifecycle. Passwords are stored as bcrypt hashes.
type userService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// verifyURL is the public base URL verification links point to.
	verifyURL string

	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewUserService(userRepository store.UserRepository, m mailer.Mailer, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		mailer:         m,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		verifyURL:      strings.TrimRight(cfg.VerifyURL, "/"),
		logger:         logger,
	}
}

// Register creates an unverified account and mails a verification link to
// it. A failed mail is logged; the account stays registered and can be
// verified with a link sent later.
//
// Returns the public profile or:
//   - ErrValidation if the request is malformed.
//   - ErrUsernameTaken if the username is already registered.
func (u *userService) Register(ctx context.Context, req models.RegisterRequest) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, req); err != nil {
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user := req.NewUser()
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.UserProfile{}, err
	}
	user.PasswordHash = hash
	user.CreatedAt = time.Now().UTC()

	registered, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "userService.Register").Str("username", user.Username).Msg("user creation ended with error")
		return models.UserProfile{}, mapStoreError(err)
	}

	if err = u.sendVerification(ctx, registered); err != nil {
		log.Warn().Err(err).Str("func", "userService.Register").Int64("user_id", registered.ID).Msg("verification mail was not sent")
	}

	log.Info().Int64("user_id", registered.ID).Str("username", registered.Username).Msg("user registered")
	return registered.Profile(), nil
}

func (u *userService) sendVerification(ctx context.Context, user models.User) error {
	token, err := u.createToken(user.ID, utils.AudienceVerification)
	if err != nil {
		return err
	}
	link := u.verifyURL + verifyPath + "?token=" + url.QueryEscape(token.String())
	return u.mailer.SendVerification(ctx, user.Email, link)
}

// Verify marks the account named by a verification token as verified.
// Access tokens are refused.
func (u *userService) Verify(ctx context.Context, tokenString string) error {
	token, err := u.parseToken(ctx, tokenString, utils.AudienceVerification)
	if err != nil {
		return err
	}

	if err = u.userRepository.MarkVerified(ctx, token.UserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Verify").Int64("user_id", token.UserID).Msg("verification failed")
		return mapStoreError(err)
	}
	return nil
}

// Login checks the credentials and issues an access token.
//
// An unknown username and a wrong password are both reported as
// ErrWrongCredentials; an unverified account gets ErrAccountNotVerified.
func (u *userService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	user, err := u.checkCredentials(ctx, creds)
	if err != nil {
		return models.Token{}, err
	}
	if !user.IsVerified {
		return models.Token{}, ErrAccountNotVerified
	}
	return u.createToken(user.ID, utils.AudienceAccess)
}

func (u *userService) Authenticate(ctx context.Context, tokenString string) (models.UserProfile, error) {
	token, err := u.ParseToken(ctx, tokenString)
	if err != nil {
		return models.UserProfile{}, err
	}

	user, err := u.userRepository.FindUserByID(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.UserProfile{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return models.UserProfile{}, err
	}
	return user.Profile(), nil
}

// ParseToken validates a raw access token. Any validation failure (expired,
// wrong issuer or audience, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid.
func (u *userService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return u.parseToken(ctx, tokenString, utils.AudienceAccess)
}

func (u *userService) parseToken(ctx context.Context, tokenString, audience string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, u.tokenSignKey, u.tokenIssuer, audience)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "userService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	return token, nil
}

func (u *userService) GetProfile(ctx context.Context, userID int64) (models.UserProfile, error) {
	user, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, mapStoreError(err)
	}
	return user.Profile(), nil
}

func (u *userService) ListProfiles(ctx context.Context) ([]models.UserProfile, error) {
	users, err := u.userRepository.ListUsers(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, user := range users {
		profiles = append(profiles, user.Profile())
	}
	return profiles, nil
}

// DeleteAccount removes the account after re-checking its credentials.
func (u *userService) DeleteAccount(ctx context.Context, creds models.Credentials) error {
	user, err := u.checkCredentials(ctx, creds)
	if err != nil {
		return err
	}

	if err = u.userRepository.DeleteUser(ctx, user.ID); err != nil {
		return mapStoreError(err)
	}
	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("user deleted")
	return nil
}

func (u *userService) checkCredentials(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := u.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("username", creds.Username).Msg("unknown username")
		return models.User{}, ErrWrongCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "userService.checkCredentials").Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, err
	}

	if err = utils.CheckPassword(user.PasswordHash, creds.Password); err != nil {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return user, nil
}

func (u *userService) createToken(userID int64, audience string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(u.tokenIssuer, audience, userID, u.tokenDuration, u.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return token, nil
}
