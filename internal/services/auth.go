package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/med-tracker/internal/jwt"
	"github.com/sbilibin2017/med-tracker/internal/logger"
	"github.com/sbilibin2017/med-tracker/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username already registered")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserInactive       = errors.New("user is deactivated")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// JWTProvider defines token issuing and verification operations.
type JWTProvider interface {
	Generate(ctx context.Context, username string) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserCache caches user lookups by username.
type UserCache interface {
	Get(ctx context.Context, username string) (*models.UserDB, error)
	Set(ctx context.Context, user *models.UserDB) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AuthService handles registration, login and bearer-token resolution.
type AuthService struct {
	reader      UserReader
	writer      UserWriter
	jwt         JWTProvider
	cache       UserCache
	kafkaWriter KafkaWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt JWTProvider, cache UserCache, kafkaWriter KafkaWriter) *AuthService {
	return &AuthService{
		reader:      reader,
		writer:      writer,
		jwt:         jwt,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Register registers a new user. Callers can never grant themselves the
// admin role: new users are always created with is_admin=false.
func (svc *AuthService) Register(ctx context.Context, username, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	created, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publishAudit(ctx, created.UserID, "user_registered")

	return created, nil
}

// Login authenticates a user and returns a bearer token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.Log.Errorw("login attempt by deactivated user", "username", username)
		return "", ErrUserInactive
	}

	token, err := svc.jwt.Generate(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// ResolveToken verifies a bearer token and returns the acting user.
// The subject is looked up in the cache first, then in the database; banned
// or vanished users fail resolution even if the token itself is valid.
func (svc *AuthService) ResolveToken(ctx context.Context, tokenString string) (*models.UserDB, error) {
	claims, err := svc.jwt.GetClaims(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := svc.lookupUser(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Log.Errorw("token subject no longer exists", "username", claims.Username)
		return nil, ErrUserDoesNotExist
	}

	if !user.IsActive {
		logger.Log.Errorw("request by deactivated user", "username", user.Username)
		return nil, ErrUserInactive
	}

	return user, nil
}

// lookupUser reads a user through the cache, falling back to the database.
// Cache failures degrade to a plain database read.
func (svc *AuthService) lookupUser(ctx context.Context, username string) (*models.UserDB, error) {
	if svc.cache != nil {
		if user, err := svc.cache.Get(ctx, username); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if user != nil && svc.cache != nil {
		if err := svc.cache.Set(ctx, user); err != nil {
			logger.Log.Warnw("failed to cache user", "username", username, "error", err)
		}
	}

	return user, nil
}

// publishAudit publishes an audit event to Kafka, best effort.
func (svc *AuthService) publishAudit(ctx context.Context, userID uuid.UUID, action string) {
	publishAuditEvent(ctx, svc.kafkaWriter, userID, action)
}

// publishAuditEvent publishes an audit event through the given writer.
// A nil writer disables publishing; failures are logged and swallowed.
func publishAuditEvent(ctx context.Context, writer KafkaWriter, userID uuid.UUID, action string) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "action", action)
		return
	}

	event := models.AuditEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		Action:    action,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish audit event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Audit event published", "event_id", event.EventID, "action", action)
	}
}
