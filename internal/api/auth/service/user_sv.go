package authService

import (
	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf16"

	"github.com/sirupsen/logrus"
)

const minPasswordLength = 7

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegistration checks req in a fixed order and returns the first
// violation.
func ValidateRegistration(req auth.RegisterRequest) error {
	if len(nameParts(req.FullName)) < 2 {
		return auth.ErrInvalidFullName
	}

	if !emailPattern.MatchString(req.Email) {
		return auth.ErrInvalidEmailFormat
	}

	if passwordLength(req.Password) < minPasswordLength {
		return auth.ErrPasswordTooShort
	}

	if req.Password != req.ConfirmPassword {
		return auth.ErrPasswordMismatch
	}

	return nil
}

// passwordLength counts UTF-16 code units.
func passwordLength(password string) int {
	n := 0
	for _, r := range password {
		n += utf16.RuneLen(r)
	}
	return n
}

// nameParts splits on the space character only. Tabs and newlines stay
// inside a part.
func nameParts(fullName string) []string {
	var parts []string
	for _, p := range strings.Split(fullName, " ") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// SplitFullName returns the first word and the remaining words joined by a
// single space.
func SplitFullName(fullName string) (string, string) {
	parts := nameParts(fullName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func (s *userDomainImpl) RegisterUser(c context.Context, req auth.RegisterRequest) (int64, error) {
	requestID := contextPkg.GetRequestID(c)

	if err := ValidateRegistration(req); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Registration rejected")
		return 0, err
	}

	hashedPassword, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return 0, auth.ErrInternal
	}

	repo := s.repo.NewClient()

	firstName, lastName := SplitFullName(req.FullName)
	id, err := repo.Users.CreateUser(c, entity.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, auth.ErrEmailAlreadyExists) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"email":      req.Email,
			}).Warn("Registration with an existing email")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to create user")
		}
		return 0, auth.ErrEmailExistsOrDatabase
	}

	s.metrics.IncRegistrations()

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    id,
	}).Info("User registered")

	return id, nil
}

func (s *userDomainImpl) GetByEmail(c context.Context, email string) (entity.User, error) {
	return s.repo.NewClient().Users.GetByEmail(c, email)
}
