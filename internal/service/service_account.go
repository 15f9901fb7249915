// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/termplay/internal/config"
	"github.com/MKhiriev/termplay/internal/logger"
	"github.com/MKhiriev/termplay/internal/mailer"
	"github.com/MKhiriev/termplay/internal/protocol"
	"github.com/MKhiriev/termplay/internal/store"
	"github.com/MKhiriev/termplay/internal/utils"
	"github.com/MKhiriev/termplay/internal/validators"
	"github.com/MKhiriev/termplay/models"
	"golang.org/x/crypto/bcrypt"
)

// ConfirmPath is the route prefix of confirmation links.
const ConfirmPath = "/confirm/"

// accountService is the concrete implementation of AccountService.
// Passwords are stored as bcrypt hashes; confirmation links carry a signed
// token whose subject is the user id.
type accountService struct {
	userRepository store.UserRepository
	mailer         mailer.Mailer
	validator      validators.Validator
	ids            *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify confirmation tokens.
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	// publicURL is the externally reachable base of the confirmation endpoint.
	publicURL string

	bcryptCost int
	compare    func(hash, password []byte) error
	now        func() time.Time

	// dummyHash is compared against on unknown logins so both failure paths
	// cost one bcrypt comparison.
	dummyHashOnce sync.Once
	dummyHash     []byte

	logger *logger.Logger
}

// NewAccountService constructs an AccountService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAccountService(
	userRepository store.UserRepository,
	m mailer.Mailer,
	validator validators.Validator,
	cfg config.App,
	publicURL string,
	logger *logger.Logger,
) AccountService {
	return &accountService{
		userRepository: userRepository,
		mailer:         m,
		validator:      validator,
		ids:            utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		publicURL:      strings.TrimRight(publicURL, "/"),
		bcryptCost:     bcrypt.DefaultCost,
		compare:        bcrypt.CompareHashAndPassword,
		now:            time.Now,
		logger:         logger,
	}
}

// Register creates a new unconfirmed account.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided wrapping the validation failure.
//   - ErrLoginTaken if the login is already registered.
//   - ErrConfirmationNotSent (with the user) if the mail failed.
func (a *accountService) Register(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, protocol.RegisterCommand{Login: login, Password: password}); err != nil {
		log.Debug().Err(err).Str("login", login).Msg("invalid registration")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Login:        login,
		PasswordHash: string(hash),
		CreatedAt:    a.now().UTC(),
	}

	if err = a.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			return models.User{}, ErrLoginTaken
		}
		log.Err(err).Str("login", login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := utils.GenerateConfirmationToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("confirmation token not issued")
		return user, fmt.Errorf("%w: %w: %w", ErrConfirmationNotSent, ErrTokenCreationFailed, err)
	}

	if err = a.mailer.Send(ctx, mailer.ConfirmationMessage(user.Login, a.confirmLink(token.SignedString))); err != nil {
		log.Err(err).Str("user_id", user.UserID).Msg("confirmation mail not sent")
		return user, fmt.Errorf("%w: %w", ErrConfirmationNotSent, err)
	}

	log.Info().Str("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates a confirmed account. Unknown logins and wrong
// passwords are both reported as ErrWrongCredentials.
func (a *accountService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, protocol.LoginCommand{Login: login, Password: password}); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = a.compare(a.unknownUserHash(), []byte(password))
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = a.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Debug().Str("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	if !user.Confirmed {
		return models.User{}, ErrNotConfirmed
	}

	return user, nil
}

// unknownUserHash returns a hash of a random password at the service's cost.
func (a *accountService) unknownUserHash() []byte {
	a.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.ids.Generate()), a.bcryptCost)
		if err != nil {
			a.logger.Err(err).Msg("generate placeholder hash")
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}

// Confirm validates token and confirms the account it names.
func (a *accountService) Confirm(ctx context.Context, token string) (string, error) {
	log := logger.FromContext(ctx)

	parsed, err := utils.ValidateConfirmationToken(token, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("rejected confirmation token")
		return "", ErrTokenIsExpiredOrInvalid
	}

	if err = a.userRepository.ConfirmUser(ctx, parsed.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrUnknownAccount
		}
		return "", fmt.Errorf("confirm user: %w", err)
	}

	log.Info().Str("user_id", parsed.UserID).Msg("account confirmed")
	return parsed.UserID, nil
}

func (a *accountService) confirmLink(token string) string {
	return a.publicURL + ConfirmPath + url.PathEscape(token)
}
