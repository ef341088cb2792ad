package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrCompanyNotFound   = errors.New("empresa no encontrada")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInsufficientStock = errors.New("cantidad insuficiente")
	ErrInvalidInput      = errors.New("entrada inválida")
)
