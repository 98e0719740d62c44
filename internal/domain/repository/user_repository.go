package repository

import "github.com/hospstock/hospstock-api/internal/domain/entity"

// UserRepository définit le port de persistance des utilisateurs (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
