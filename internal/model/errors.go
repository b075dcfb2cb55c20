package model

import "errors"

var (
	// ErrInvalidPages indica número de páginas fora dos limites
	ErrInvalidPages = errors.New("número de páginas fora dos limites")

	// ErrInvalidLevel indica nível de idioma, dificuldade ou foco desconhecido
	ErrInvalidLevel = errors.New("nível desconhecido")

	// ErrRateLimited indica excesso de requisições do cliente
	ErrRateLimited = errors.New("rate limit excedido")
)
