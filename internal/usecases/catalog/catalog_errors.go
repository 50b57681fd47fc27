package catalog

import "errors"

// Erros específicos para o contexto do catálogo de preços
var (
	ErrEmptyName    = errors.New("service name is required")
	ErrInvalidValue = errors.New("service value must be a non-negative number")
)
