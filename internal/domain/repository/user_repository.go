package repository

import "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"

// UserRepository define el puerto de persistencia de actores (clientes,
// veterinarios, administradores). FindByEmail y GetByID devuelven (nil, nil)
// si el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
