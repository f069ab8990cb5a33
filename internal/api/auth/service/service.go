package authService

import (
	"ProjectBlog/internal/api/auth"
	authRepository "ProjectBlog/internal/api/auth/repository"
	"ProjectBlog/internal/entity"
	"ProjectBlog/pkg/bcrypt"
	"ProjectBlog/pkg/metrics"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	User() UserDomain
	Auth() AuthDomain
}

type UserDomain interface {
	RegisterUser(c context.Context, req auth.RegisterRequest) (int64, error)
	GetByEmail(c context.Context, email string) (entity.User, error)
}

type AuthDomain interface {
	Login(c context.Context, req auth.LoginRequest) (entity.UserLoginData, error)
}

type authService struct {
	log *logrus.Logger

	userDomain UserDomain
	authDomain AuthDomain
}

func (a *authService) User() UserDomain {
	return a.userDomain
}

func (a *authService) Auth() AuthDomain {
	return a.authDomain
}

type userDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	metrics     *metrics.Metrics
}

type authDomainImpl struct {
	log         *logrus.Logger
	repo        authRepository.Repository
	bcryptUtils bcrypt.IBcrypt
	metrics     *metrics.Metrics
}

// New wires the auth domains. m may be nil.
func New(log *logrus.Logger,
	authRepo authRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
	m *metrics.Metrics,
) AuthService {
	return &authService{
		log: log,

		userDomain: &userDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, metrics: m},
		authDomain: &authDomainImpl{log: log, repo: authRepo, bcryptUtils: bcryptUtils, metrics: m},
	}
}
