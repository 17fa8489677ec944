package domain

import "time"

// Project is a team's submission. Either all three fields are set together
// through Team.SubmitProject or none are; no partial submission exists.
type Project struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	RepositoryURL string `json:"repository_url"`
}

// Evaluation is a judge's verdict on a team's project.
type Evaluation struct {
	Score    float64 `json:"score"`
	Feedback string  `json:"feedback"`
}

// Team is the only place allowed to mutate the Team.Members / User.Team pair,
// so the two sides of the relation never disagree.
type Team struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Project     *Project    `json:"project,omitempty"`
	Evaluation  *Evaluation `json:"evaluation,omitempty"`
	Hackathon   *Hackathon  `json:"-"`
	HackathonID uint        `json:"hackathon_id"`
	Creator     *User       `json:"-"`
	CreatorID   uint        `json:"creator_id"`
	Members     []*User     `json:"-"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewTeam seeds the member set with the creator.
func NewTeam(name string, hackathon *Hackathon, creator *User) (*Team, error) {
	t := &Team{
		Name:      name,
		Hackathon: hackathon,
		Creator:   creator,
		CreatorID: creator.ID,
	}
	if hackathon != nil {
		t.HackathonID = hackathon.ID
	}
	if err := t.AddMember(creator); err != nil {
		return nil, err
	}

	return t, nil
}

// IsFull reports whether the team reached the hackathon's maximum size.
// A team without a hackathon reference is never considered full.
func (t *Team) IsFull() bool {
	if t.Hackathon == nil {
		return false
	}
	return len(t.Members) >= t.Hackathon.MaxTeamSize
}

// AddMember adds a user to the team and sets the user's back-reference in the
// same step. Adding an existing member is a no-op.
func (t *Team) AddMember(user *User) error {
	if user == nil {
		return ErrUserRequired
	}

	if t.IsFull() {
		return ErrTeamFull
	}

	if t.HasMember(user) {
		return nil
	}

	if user.Team != nil && user.Team != t {
		return ErrConflictingMembership
	}

	t.Members = append(t.Members, user)
	user.Team = t
	user.TeamID = &t.ID

	return nil
}

// RemoveMember removes a user and clears the back-reference. Removing a
// non-member is a no-op; removing the creator is forbidden for the life of
// the team.
func (t *Team) RemoveMember(user *User) error {
	if user == nil || !t.HasMember(user) {
		return nil
	}

	if t.IsCreator(user) {
		return ErrProtectedCreator
	}

	for i, m := range t.Members {
		if m == user {
			t.Members = append(t.Members[:i], t.Members[i+1:]...)
			break
		}
	}
	user.Team = nil
	user.TeamID = nil

	return nil
}

func (t *Team) HasMember(user *User) bool {
	for _, m := range t.Members {
		if m == user {
			return true
		}
	}
	return false
}

func (t *Team) IsCreator(user *User) bool {
	return t.Creator != nil && t.Creator == user
}

func (t *Team) MemberCount() int {
	return len(t.Members)
}

func (t *Team) MemberIDs() []uint {
	ids := make([]uint, 0, len(t.Members))
	for _, m := range t.Members {
		ids = append(ids, m.ID)
	}
	return ids
}

// SubmitProject records the submission. All three fields are set together.
func (t *Team) SubmitProject(name, description, repositoryURL string) {
	t.Project = &Project{
		Name:          name,
		Description:   description,
		RepositoryURL: repositoryURL,
	}
}

func (t *Team) HasSubmittedProject() bool {
	return t.Project != nil && t.Project.Name != ""
}

// Evaluate overwrites any previous evaluation.
func (t *Team) Evaluate(score float64, feedback string) error {
	if score < 0 || score > 10 {
		return ErrScoreOutOfRange
	}

	t.Evaluation = &Evaluation{
		Score:    score,
		Feedback: feedback,
	}

	return nil
}

func (t *Team) ResetEvaluation() {
	t.Evaluation = nil
}

func (t *Team) IsEvaluated() bool {
	return t.Evaluation != nil
}
