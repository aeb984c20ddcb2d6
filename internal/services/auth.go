package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/logger"
	"github.com/kazzanonim/anonlink/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrInvalidUsername    = errors.New("username must be at least 3 characters of letters, digits or underscore")
	ErrInvalidPassword    = errors.New("password must be at least 6 characters")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const (
	maxLoginFailures = 3
	lockoutDuration  = 60 * time.Minute

	minUsernameLen = 3
	minPasswordLen = 6
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// BlockedError is returned when a username is locked out after repeated
// failed logins. It carries the remaining wait so callers can render a
// countdown without another query.
type BlockedError struct {
	Until     time.Time
	Remaining time.Duration
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("login blocked for %d more minute(s)", remainingMinutes(e.Remaining))
}

// remainingMinutes ceiling-rounds a wait to whole minutes for display.
func remainingMinutes(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Minute - 1) / time.Minute)
}

// ProfileReader defines read-only operations for profiles.
type ProfileReader interface {
	GetByUsername(ctx context.Context, username string) (*models.ProfileDB, error)
}

// ProfileWriter defines write operations for profiles.
type ProfileWriter interface {
	Save(ctx context.Context, username string, passwordHash string) (uuid.UUID, error)
}

// AttemptReader reads the failed-login ledger.
type AttemptReader interface {
	Get(ctx context.Context, username string) (*models.LoginAttemptDB, error)
}

// AttemptWriter mutates the failed-login ledger. No other component
// writes these records.
type AttemptWriter interface {
	Upsert(ctx context.Context, username string, attemptCount int, lastAttempt time.Time, blockedUntil *time.Time) error
	Delete(ctx context.Context, username string) error
}

// TokenGenerator defines an interface for generating session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login with lockout enforcement.
type AuthService struct {
	reader        ProfileReader
	writer        ProfileWriter
	attemptReader AttemptReader
	attemptWriter AttemptWriter
	jwt           TokenGenerator
	now           func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader ProfileReader,
	writer ProfileWriter,
	attemptReader AttemptReader,
	attemptWriter AttemptWriter,
	jwt TokenGenerator,
) *AuthService {
	return NewAuthServiceWithClock(reader, writer, attemptReader, attemptWriter, jwt, time.Now)
}

// NewAuthServiceWithClock creates an AuthService with an injected clock.
func NewAuthServiceWithClock(
	reader ProfileReader,
	writer ProfileWriter,
	attemptReader AttemptReader,
	attemptWriter AttemptWriter,
	jwt TokenGenerator,
	now func() time.Time,
) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		attemptReader: attemptReader,
		attemptWriter: attemptWriter,
		jwt:           jwt,
		now:           now,
	}
}

// Register creates a new account and returns its id.
func (svc *AuthService) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if len(username) < minUsernameLen || !usernameRe.MatchString(username) {
		return uuid.Nil, ErrInvalidUsername
	}
	if len(password) < minPasswordLen {
		return uuid.Nil, ErrInvalidPassword
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check username", "err", err)
		return uuid.Nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", username)
		return uuid.Nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	id, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save profile", "err", err)
		return uuid.Nil, err
	}

	return id, nil
}

// Login authenticates a user and returns a session token.
// An active lockout wins over correct credentials, and the blocked check
// itself never mutates the ledger; only the attempt outcome does.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	blockedUntil, err := svc.Blocked(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check lockout", "err", err)
		return "", err
	}
	if blockedUntil != nil {
		return "", &BlockedError{
			Until:     *blockedUntil,
			Remaining: blockedUntil.Sub(svc.now()),
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "err", err)
		return "", err
	}
	if user == nil {
		svc.recordFailure(ctx, username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		svc.recordFailure(ctx, username)
		return "", ErrInvalidCredentials
	}

	// Full reset: the ledger row is deleted, not decremented.
	if err := svc.attemptWriter.Delete(ctx, username); err != nil {
		logger.Log.Errorw("failed to reset login attempts", "err", err)
		return "", err
	}

	token, err := svc.jwt.Generate(ctx, user.ID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Blocked returns the lockout expiry for a username when it lies in the
// future, otherwise nil. Pure query: a passed lockout is reported as
// expired but the attempt counter is not reset here.
func (svc *AuthService) Blocked(ctx context.Context, username string) (*time.Time, error) {
	attempt, err := svc.attemptReader.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.BlockedUntil == nil {
		return nil, nil
	}
	if !attempt.BlockedUntil.After(svc.now()) {
		return nil, nil
	}
	return attempt.BlockedUntil, nil
}

// Attempts returns the raw ledger record for a username, or nil when no
// failure is recorded. Feeds the login-page attempt counter.
func (svc *AuthService) Attempts(ctx context.Context, username string) (*models.LoginAttemptDB, error) {
	return svc.attemptReader.Get(ctx, username)
}

// recordFailure bumps the counter and re-arms the 60-minute block on
// every failure at or past the threshold. Ledger write failures are
// logged but do not mask the credential error being returned.
func (svc *AuthService) recordFailure(ctx context.Context, username string) {
	now := svc.now()

	attempt, err := svc.attemptReader.Get(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to read login attempts", "username", username, "err", err)
		return
	}

	newCount := 1
	if attempt != nil {
		newCount = attempt.AttemptCount + 1
	}

	var blockedUntil *time.Time
	if newCount >= maxLoginFailures {
		until := now.Add(lockoutDuration)
		blockedUntil = &until
	}

	if err := svc.attemptWriter.Upsert(ctx, username, newCount, now, blockedUntil); err != nil {
		logger.Log.Errorw("failed to record login attempt", "username", username, "err", err)
	}
}
