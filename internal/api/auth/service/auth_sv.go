package authService

import (
	"ProjectBlog/internal/api/auth"
	"ProjectBlog/internal/entity"
	contextPkg "ProjectBlog/pkg/context"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

func (s *authDomainImpl) Login(c context.Context, req auth.LoginRequest) (entity.UserLoginData, error) {
	requestID := contextPkg.GetRequestID(c)

	repo := s.repo.NewClient()

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login with unknown email")
			s.metrics.IncLoginFailure("email_not_found")
			return entity.UserLoginData{}, auth.ErrEmailNotFound
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		s.metrics.IncLoginFailure("database")
		return entity.UserLoginData{}, auth.ErrDatabase
	}

	if err := s.bcryptUtils.ComparePassword(user.Password, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    user.ID,
		}).Warn("Password comparison failed")
		s.metrics.IncLoginFailure("bad_password")
		return entity.UserLoginData{}, auth.ErrIncorrectPassword
	}

	s.metrics.IncLogins()

	return entity.UserLoginData{
		ID:    user.ID,
		Email: user.Email,
	}, nil
}
