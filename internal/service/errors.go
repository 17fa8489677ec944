package service

import (
	"errors"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/repository"
)

var (
	ErrUserEmailExists        = repository.ErrUserEmailExists
	ErrUserNotFound           = repository.ErrUserNotFound
	ErrHackathonNotFound      = repository.ErrHackathonNotFound
	ErrTeamNotFound           = repository.ErrTeamNotFound
	ErrSupportRequestNotFound = repository.ErrSupportRequestNotFound
	ErrNotificationNotFound   = repository.ErrNotificationNotFound

	ErrTeamFull              = domain.ErrTeamFull
	ErrProtectedCreator      = domain.ErrProtectedCreator
	ErrConflictingMembership = domain.ErrConflictingMembership
	ErrScoreOutOfRange       = domain.ErrScoreOutOfRange

	ErrWrongPassword          = errors.New("wrong password")
	ErrInvalidRole            = errors.New("invalid role")
	ErrInvalidStatus          = errors.New("invalid hackathon status")
	ErrRoleViolation          = errors.New("user role does not permit this operation")
	ErrRegistrationClosed     = errors.New("registration deadline has passed")
	ErrAlreadyInTeam          = errors.New("user already belongs to a team")
	ErrNotTeamMember          = errors.New("user is not a member of this team")
	ErrHackathonNotInProgress = errors.New("hackathon is not in progress")
	ErrHackathonNotConcluded  = errors.New("hackathon has not concluded")
	ErrTeamNotInHackathon     = errors.New("team does not belong to this hackathon")
	ErrMentorNotAssigned      = errors.New("support request has no assigned mentor")
	ErrSupportRequestResolved = errors.New("support request is already resolved")
	ErrNoScheduledCall        = errors.New("support request has no scheduled call")
)
