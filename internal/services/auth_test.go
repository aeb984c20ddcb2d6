package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/kazzanonim/anonlink/internal/models"
	"github.com/kazzanonim/anonlink/internal/services"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

// fakeLedger backs the attempt mocks with in-memory state so tests can
// drive multi-step lockout scenarios.
type fakeLedger struct {
	record *models.LoginAttemptDB
}

func wireLedger(reader *services.MockAttemptReader, writer *services.MockAttemptWriter, username string) *fakeLedger {
	ledger := &fakeLedger{}

	reader.EXPECT().
		Get(gomock.Any(), username).
		DoAndReturn(func(_ context.Context, _ string) (*models.LoginAttemptDB, error) {
			if ledger.record == nil {
				return nil, nil
			}
			cp := *ledger.record
			return &cp, nil
		}).
		AnyTimes()

	writer.EXPECT().
		Upsert(gomock.Any(), username, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u string, count int, last time.Time, blocked *time.Time) error {
			ledger.record = &models.LoginAttemptDB{
				Username:     u,
				AttemptCount: count,
				LastAttempt:  last,
				BlockedUntil: blocked,
			}
			return nil
		}).
		AnyTimes()

	writer.EXPECT().
		Delete(gomock.Any(), username).
		DoAndReturn(func(_ context.Context, _ string) error {
			ledger.record = nil
			return nil
		}).
		AnyTimes()

	return ledger
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockAttemptReader := services.NewMockAttemptReader(ctrl)
	mockAttemptWriter := services.NewMockAttemptWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockAttemptReader, mockAttemptWriter, mockJWT)

	newID := uuid.New()

	tests := []struct {
		name            string
		username        string
		password        string
		existingProfile *models.ProfileDB
		readerErr       error
		writerErr       error
		skipReader      bool
		wantID          uuid.UUID
		wantErr         error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "secret1",
			wantID:   newID,
		},
		{
			name:       "username too short",
			username:   "ab",
			password:   "secret1",
			skipReader: true,
			wantErr:    services.ErrInvalidUsername,
		},
		{
			name:       "username with invalid characters",
			username:   "al ice!",
			password:   "secret1",
			skipReader: true,
			wantErr:    services.ErrInvalidUsername,
		},
		{
			name:       "password too short",
			username:   "alice",
			password:   "short",
			skipReader: true,
			wantErr:    services.ErrInvalidPassword,
		},
		{
			name:            "username taken",
			username:        "alice",
			password:        "other12",
			existingProfile: &models.ProfileDB{ID: uuid.New(), Username: "alice"},
			wantErr:         services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "secret1",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "secret1",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.skipReader {
				mockReader.EXPECT().
					GetByUsername(gomock.Any(), tt.username).
					Return(tt.existingProfile, tt.readerErr)
			}

			if !tt.skipReader && tt.existingProfile == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), tt.username, gomock.Any()).
					Return(tt.wantID, tt.writerErr)
			}

			id, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Equal(t, uuid.Nil, id)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockAttemptReader := services.NewMockAttemptReader(ctrl)
	mockAttemptWriter := services.NewMockAttemptWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	password := "secret1"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userID := uuid.New()
	user := &models.ProfileDB{ID: userID, Username: "alice", PasswordHash: string(hashed)}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	now := base
	svc := services.NewAuthServiceWithClock(
		mockReader, mockWriter, mockAttemptReader, mockAttemptWriter, mockJWT,
		func() time.Time { return now },
	)

	ledger := wireLedger(mockAttemptReader, mockAttemptWriter, "alice")

	mockReader.EXPECT().
		GetByUsername(gomock.Any(), "alice").
		Return(user, nil).
		AnyTimes()
	mockJWT.EXPECT().
		Generate(gomock.Any(), userID, "alice").
		Return("JWT_TOKEN", nil).
		AnyTimes()

	ctx := context.Background()

	// Two failures: warned, not yet blocked.
	for i := 1; i <= 2; i++ {
		_, err := svc.Login(ctx, "alice", "wrongpass")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Equal(t, i, ledger.record.AttemptCount)
		assert.Nil(t, ledger.record.BlockedUntil)
	}

	// Third failure arms the 60-minute lockout.
	_, err := svc.Login(ctx, "alice", "wrongpass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Equal(t, 3, ledger.record.AttemptCount)
	if assert.NotNil(t, ledger.record.BlockedUntil) {
		assert.Equal(t, now.Add(60*time.Minute), *ledger.record.BlockedUntil)
	}

	// Lockout wins even over the correct password.
	_, err = svc.Login(ctx, "alice", password)
	var blockedErr *services.BlockedError
	if assert.ErrorAs(t, err, &blockedErr) {
		assert.Equal(t, 60*time.Minute, blockedErr.Remaining)
	}
	assert.Equal(t, 3, ledger.record.AttemptCount, "blocked rejection must not bump the counter")

	// After the lockout passes, a success resets the ledger entirely.
	now = base.Add(61 * time.Minute)
	token, err := svc.Login(ctx, "alice", password)
	assert.NoError(t, err)
	assert.Equal(t, "JWT_TOKEN", token)
	assert.Nil(t, ledger.record)

	// A failure after reset starts over at 1, not 4.
	_, err = svc.Login(ctx, "alice", "wrongpass")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Equal(t, 1, ledger.record.AttemptCount)
}

func TestAuthService_Login_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockAttemptReader := services.NewMockAttemptReader(ctrl)
	mockAttemptWriter := services.NewMockAttemptWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockAttemptReader, mockAttemptWriter, mockJWT)
	ctx := context.Background()

	t.Run("unknown username records a failure", func(t *testing.T) {
		ledger := wireLedger(mockAttemptReader, mockAttemptWriter, "ghost")
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "ghost").
			Return(nil, nil)

		_, err := svc.Login(ctx, "ghost", "whatever1")
		assert.ErrorIs(t, err, services.ErrUserDoesNotExist)
		assert.Equal(t, 1, ledger.record.AttemptCount)
	})

	t.Run("ledger read error surfaces and mutates nothing", func(t *testing.T) {
		mockAttemptReader.EXPECT().
			Get(gomock.Any(), "bob").
			Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, "bob", "whatever1")
		assert.EqualError(t, err, "db down")
	})

	t.Run("profile read error leaves the ledger untouched", func(t *testing.T) {
		mockAttemptReader.EXPECT().
			Get(gomock.Any(), "carol").
			Return(nil, nil)
		mockReader.EXPECT().
			GetByUsername(gomock.Any(), "carol").
			Return(nil, errors.New("db down"))

		_, err := svc.Login(ctx, "carol", "whatever1")
		assert.EqualError(t, err, "db down")
	})
}

func TestAuthService_Blocked_IsPureQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockAttemptReader := services.NewMockAttemptReader(ctrl)
	mockAttemptWriter := services.NewMockAttemptWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := services.NewAuthServiceWithClock(
		mockReader, mockWriter, mockAttemptReader, mockAttemptWriter, mockJWT,
		func() time.Time { return base },
	)
	ctx := context.Background()

	until := base.Add(30 * time.Minute)
	record := &models.LoginAttemptDB{
		Username:     "alice",
		AttemptCount: 3,
		LastAttempt:  base.Add(-30 * time.Minute),
		BlockedUntil: &until,
	}

	// No Upsert/Delete expectations: any ledger write fails the test.
	mockAttemptReader.EXPECT().
		Get(gomock.Any(), "alice").
		Return(record, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		got, err := svc.Blocked(ctx, "alice")
		assert.NoError(t, err)
		if assert.NotNil(t, got) {
			assert.Equal(t, until, *got)
		}
	}
}

func TestAuthService_Blocked_ExpiredLockoutKeepsCounter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockProfileReader(ctrl)
	mockWriter := services.NewMockProfileWriter(ctrl)
	mockAttemptReader := services.NewMockAttemptReader(ctrl)
	mockAttemptWriter := services.NewMockAttemptWriter(ctrl)
	mockJWT := services.NewMockTokenGenerator(ctrl)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := services.NewAuthServiceWithClock(
		mockReader, mockWriter, mockAttemptReader, mockAttemptWriter, mockJWT,
		func() time.Time { return base },
	)

	until := base.Add(-time.Second)
	record := &models.LoginAttemptDB{
		Username:     "alice",
		AttemptCount: 5,
		LastAttempt:  base.Add(-61 * time.Minute),
		BlockedUntil: &until,
	}

	mockAttemptReader.EXPECT().
		Get(gomock.Any(), "alice").
		Return(record, nil)

	got, err := svc.Blocked(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Nil(t, got, "a passed lockout reads as not blocked, without resetting the counter")
}
