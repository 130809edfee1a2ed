package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound       = errors.New("resource not found")
	ErrTeamCodeExists = errors.New("team with this code already exists")
)
