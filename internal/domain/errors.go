package domain

import "errors"

var (
	ErrUserRequired          = errors.New("user must not be nil")
	ErrTeamNotFound          = errors.New("team not found")
	ErrTeamFull              = errors.New("team has reached the maximum number of members")
	ErrConflictingMembership = errors.New("user is already a member of another team")
	ErrProtectedCreator      = errors.New("the team creator cannot be removed")
	ErrScoreOutOfRange       = errors.New("score must be between 0 and 10")
	ErrInvalidStatus         = errors.New("invalid hackathon status")
)
