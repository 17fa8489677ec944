package domain

import "time"

// Role gates which operations a user may perform.
type Role string

const (
	RoleParticipant Role = "PARTICIPANT"
	RoleOrganizer   Role = "ORGANIZER"
	RoleJudge       Role = "JUDGE"
	RoleMentor      Role = "MENTOR"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleParticipant, RoleOrganizer, RoleJudge, RoleMentor:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	Team      *Team     `json:"-"`
	TeamID    *uint     `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JoinTeam moves the user into a team. A user already in a team leaves it
// first; that implicit leave fails with ErrProtectedCreator when the user
// created their current team, so team creators cannot switch teams.
func (u *User) JoinTeam(team *Team) error {
	if team == nil {
		return ErrTeamNotFound
	}

	if u.Team != nil && u.Team != team {
		if err := u.LeaveTeam(); err != nil {
			return err
		}
	}

	return team.AddMember(u)
}

// LeaveTeam removes the user from their current team, if any.
func (u *User) LeaveTeam() error {
	if u.Team == nil {
		return nil
	}

	return u.Team.RemoveMember(u)
}

func (u *User) IsInTeam() bool {
	return u.Team != nil
}

func (u *User) IsTeamCreator() bool {
	return u.Team != nil && u.Team.IsCreator(u)
}
