package service

import "errors"

var (
	ErrValidation     = errors.New("validation failed")
	ErrNoTeamSelected = errors.New("no team selected")
)
