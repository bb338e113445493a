package services

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"attendance-registry/internal/logger"
	"attendance-registry/internal/models"
	"attendance-registry/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users         repository.UserRepository
	adminUsername string
	adminPassword string
}

func NewAuthService(users repository.UserRepository, adminUsername, adminPassword string) *AuthService {
	return &AuthService{users: users, adminUsername: adminUsername, adminPassword: adminPassword}
}

// AdminUsername: единственный аккаунт, которому разрешено заводить пользователей.
func (s *AuthService) AdminUsername() string { return s.adminUsername }

func (s *AuthService) IsPrivileged(username string) bool {
	return username != "" && username == s.adminUsername
}

// Bootstrap создаёт администратора, если таблица пользователей пуста.
func (s *AuthService) Bootstrap() (bool, error) {
	count, err := s.users.Count()
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	hash, err := HashPassword(s.adminPassword)
	if err != nil {
		return false, err
	}
	if err := s.users.Create(&models.User{Username: s.adminUsername, PasswordHash: hash}); err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}

	logger.L.Info().Str("username", s.adminUsername).Msg("administrator account created")
	return true, nil
}

// Verify сверяет пару логин/пароль с сохранённым хэшем.
func (s *AuthService) Verify(username, password string) bool {
	u, found, err := s.users.FindByUsername(username)
	if err != nil {
		logger.L.Error().Err(err).Str("username", username).Msg("failed to look up user")
		return false
	}
	if !found {
		return false
	}
	return CheckPassword(u.PasswordHash, password)
}

// Provision заводит нового пользователя от имени actor.
func (s *AuthService) Provision(actor, username, password string) error {
	if !s.IsPrivileged(actor) {
		return ErrForbidden
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrEmptyField
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	if err := s.users.Create(&models.User{Username: username, PasswordHash: hash}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrDuplicateUser
		}
		return fmt.Errorf("create user %s: %w", username, err)
	}

	logger.L.Info().Str("actor", actor).Str("username", username).Msg("user provisioned")
	return nil
}

func (s *AuthService) ListUsers() ([]models.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// bcrypt принимает не больше 72 байт, длинные пароли сначала сворачиваются в sha256.
const bcryptMaxPassword = 72

func bcryptInput(password string) []byte {
	if len(password) <= bcryptMaxPassword {
		return []byte(password)
	}
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(bcryptInput(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword понимает bcrypt и старый формат: hex(sha256(password)) без соли.
func CheckPassword(stored, password string) bool {
	if isLegacyDigest(stored) {
		return subtle.ConstantTimeCompare([]byte(stored), []byte(LegacyDigest(password))) == 1
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), bcryptInput(password)) == nil
}

func LegacyDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func isLegacyDigest(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
