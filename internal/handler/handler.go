package handler

import "context"

// DB is the minimal surface the health check needs from the store.
type DB interface {
	Ping(ctx context.Context) error
}

// Handler carries dependencies shared by infrastructure endpoints.
type Handler struct {
	db DB
}

func New(db DB) *Handler {
	return &Handler{db: db}
}
