package domain

import "time"

// Status is a hackathon lifecycle state. The set is ordered; transitions are
// not restricted to forward order, matching the behavior callers rely on.
type Status string

const (
	StatusRegistration Status = "REGISTRATION"
	StatusInProgress   Status = "IN_PROGRESS"
	StatusJudging      Status = "JUDGING"
	StatusConcluded    Status = "CONCLUDED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusRegistration, StatusInProgress, StatusJudging, StatusConcluded:
		return true
	}
	return false
}

// Order returns the position of the status within the lifecycle, or -1 for
// an unknown status.
func (s Status) Order() int {
	switch s {
	case StatusRegistration:
		return 0
	case StatusInProgress:
		return 1
	case StatusJudging:
		return 2
	case StatusConcluded:
		return 3
	}
	return -1
}

type Hackathon struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Description          string    `json:"description"`
	Rules                string    `json:"rules"`
	RegistrationDeadline time.Time `json:"registration_deadline"`
	StartDate            time.Time `json:"start_date"`
	EndDate              time.Time `json:"end_date"`
	Status               Status    `json:"status"`
	MaxTeamSize          int       `json:"max_team_size"`
	Organizer            *User     `json:"-"`
	OrganizerID          uint      `json:"organizer_id"`
	Judge                *User     `json:"-"`
	Mentors              []*User   `json:"-"`
	Teams                []*Team   `json:"-"`
	WinnerTeamID         *uint     `json:"winner_team_id,omitempty"`
	PrizePoolCents       int64     `json:"prize_pool_cents"`
	PrizeCurrency        string    `json:"prize_currency"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// IsRegistrationOpen reports whether teams may still be created.
func (h *Hackathon) IsRegistrationOpen(now time.Time) bool {
	return h.Status == StatusRegistration && now.Before(h.RegistrationDeadline)
}

// IsInProgress reports whether project submissions are accepted.
func (h *Hackathon) IsInProgress(now time.Time) bool {
	return h.Status == StatusInProgress && now.After(h.StartDate) && now.Before(h.EndDate)
}

// DetermineWinner scans the teams in stored order and picks the one with the
// strictly highest score. Unevaluated teams are never selected; ties keep the
// first occurrence. Returns nil when no team has been evaluated.
func (h *Hackathon) DetermineWinner() *Team {
	var winner *Team
	maxScore := -1.0

	for _, team := range h.Teams {
		if team.Evaluation != nil && team.Evaluation.Score > maxScore {
			maxScore = team.Evaluation.Score
			winner = team
		}
	}

	if winner != nil {
		h.WinnerTeamID = &winner.ID
	}

	return winner
}

// TeamByID looks up an owned team.
func (h *Hackathon) TeamByID(teamID uint) *Team {
	for _, team := range h.Teams {
		if team.ID == teamID {
			return team
		}
	}
	return nil
}

// HasMentor reports mentor set membership by ID.
func (h *Hackathon) HasMentor(userID uint) bool {
	for _, m := range h.Mentors {
		if m.ID == userID {
			return true
		}
	}
	return false
}

// AddMentor has set semantics; adding twice is a no-op.
func (h *Hackathon) AddMentor(mentor *User) {
	if h.HasMentor(mentor.ID) {
		return
	}
	h.Mentors = append(h.Mentors, mentor)
}

func (h *Hackathon) RemoveMentor(userID uint) {
	for i, m := range h.Mentors {
		if m.ID == userID {
			h.Mentors = append(h.Mentors[:i], h.Mentors[i+1:]...)
			return
		}
	}
}
