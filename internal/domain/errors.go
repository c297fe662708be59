package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrUnknownEmphasis = errors.New("unknown emphasis")
	ErrInvalidRecipe   = errors.New("invalid recipe")
)
