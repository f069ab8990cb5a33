package authRepository

import (
	"ProjectBlog/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

func (r *repository) NewClient() Client {
	return Client{
		Users: &userRepository{q: r.DB, log: r.log},
	}
}

type Client struct {
	Users interface {
		CreateUser(ctx context.Context, user entity.User) (int64, error)
		GetByEmail(ctx context.Context, email string) (entity.User, error)
	}
}

type userRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
