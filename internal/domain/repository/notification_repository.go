package repository

import "github.com/farmaciapetshoppf/Veterinaria-Petshop-Back-sub000/internal/domain/entity"

// NotificationRepository define el puerto de notificaciones administrativas.
// MarkRead es idempotente: marcar una notificación ya leída no cambia nada
// y el flag nunca revierte a false.
type NotificationRepository interface {
	Create(n *entity.AdminNotification) error
	GetByID(id string) (*entity.AdminNotification, error)
	List(onlyUnread bool, limit, offset int) ([]*entity.AdminNotification, error)
	MarkRead(id string) error
}
