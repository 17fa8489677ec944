package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHackathon(maxTeamSize int) *Hackathon {
	return &Hackathon{
		ID:                   1,
		Name:                 "Test Hackathon",
		Status:               StatusRegistration,
		MaxTeamSize:          maxTeamSize,
		RegistrationDeadline: time.Now().Add(24 * time.Hour),
		StartDate:            time.Now().Add(48 * time.Hour),
		EndDate:              time.Now().Add(72 * time.Hour),
	}
}

func newTestUser(id uint, username string) *User {
	return &User{
		ID:       id,
		Email:    username + "@example.com",
		Username: username,
		Role:     RoleParticipant,
	}
}

func TestNewTeam(t *testing.T) {
	hackathon := newTestHackathon(4)
	creator := newTestUser(1, "alice")

	team, err := NewTeam("Rocket", hackathon, creator)

	require.NoError(t, err)
	assert.Equal(t, "Rocket", team.Name)
	assert.Equal(t, hackathon.ID, team.HackathonID)
	assert.Equal(t, creator.ID, team.CreatorID)
	assert.Equal(t, 1, team.MemberCount())
	assert.True(t, team.HasMember(creator))
	assert.Same(t, team, creator.Team)
}

func TestTeam_AddMember(t *testing.T) {
	t.Run("adds a member and sets the back-reference", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		team, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)

		bob := newTestUser(2, "bob")
		err = team.AddMember(bob)

		require.NoError(t, err)
		assert.Equal(t, 2, team.MemberCount())
		assert.Same(t, team, bob.Team)
		require.NotNil(t, bob.TeamID)
		assert.Equal(t, team.ID, *bob.TeamID)
	})

	t.Run("adding an existing member is a no-op", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		alice := newTestUser(1, "alice")
		team, err := NewTeam("Rocket", hackathon, alice)
		require.NoError(t, err)

		err = team.AddMember(alice)

		require.NoError(t, err)
		assert.Equal(t, 1, team.MemberCount())
	})

	t.Run("rejects a member beyond the maximum team size", func(t *testing.T) {
		hackathon := newTestHackathon(2)
		team, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)
		require.NoError(t, team.AddMember(newTestUser(2, "bob")))

		err = team.AddMember(newTestUser(3, "carol"))

		assert.ErrorIs(t, err, ErrTeamFull)
		assert.Equal(t, 2, team.MemberCount())
	})

	t.Run("rejects a user who belongs to another team", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		first, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)
		second, err := NewTeam("Comet", hackathon, newTestUser(2, "bob"))
		require.NoError(t, err)

		carol := newTestUser(3, "carol")
		require.NoError(t, first.AddMember(carol))

		err = second.AddMember(carol)

		assert.ErrorIs(t, err, ErrConflictingMembership)
		assert.True(t, first.HasMember(carol))
		assert.False(t, second.HasMember(carol))
	})

	t.Run("rejects nil", func(t *testing.T) {
		team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
		require.NoError(t, err)

		err = team.AddMember(nil)

		assert.ErrorIs(t, err, ErrUserRequired)
	})
}

func TestTeam_RemoveMember(t *testing.T) {
	t.Run("removes a member and clears the back-reference", func(t *testing.T) {
		team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
		require.NoError(t, err)
		bob := newTestUser(2, "bob")
		require.NoError(t, team.AddMember(bob))

		err = team.RemoveMember(bob)

		require.NoError(t, err)
		assert.Equal(t, 1, team.MemberCount())
		assert.Nil(t, bob.Team)
		assert.Nil(t, bob.TeamID)
	})

	t.Run("the creator cannot be removed", func(t *testing.T) {
		alice := newTestUser(1, "alice")
		team, err := NewTeam("Rocket", newTestHackathon(4), alice)
		require.NoError(t, err)

		err = team.RemoveMember(alice)

		assert.ErrorIs(t, err, ErrProtectedCreator)
		assert.True(t, team.HasMember(alice))
	})

	t.Run("removing a non-member is a no-op", func(t *testing.T) {
		team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
		require.NoError(t, err)

		err = team.RemoveMember(newTestUser(2, "bob"))

		require.NoError(t, err)
		assert.Equal(t, 1, team.MemberCount())
	})
}

func TestUser_JoinTeam(t *testing.T) {
	t.Run("leaves the current team before joining the new one", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		first, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)
		second, err := NewTeam("Comet", hackathon, newTestUser(2, "bob"))
		require.NoError(t, err)

		carol := newTestUser(3, "carol")
		require.NoError(t, carol.JoinTeam(first))

		err = carol.JoinTeam(second)

		require.NoError(t, err)
		assert.False(t, first.HasMember(carol))
		assert.True(t, second.HasMember(carol))
		assert.Same(t, second, carol.Team)
	})

	t.Run("a team creator cannot switch teams", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		alice := newTestUser(1, "alice")
		first, err := NewTeam("Rocket", hackathon, alice)
		require.NoError(t, err)
		second, err := NewTeam("Comet", hackathon, newTestUser(2, "bob"))
		require.NoError(t, err)

		err = alice.JoinTeam(second)

		assert.ErrorIs(t, err, ErrProtectedCreator)
		assert.True(t, first.HasMember(alice))
		assert.False(t, second.HasMember(alice))
	})

	t.Run("joining the current team is a no-op", func(t *testing.T) {
		hackathon := newTestHackathon(4)
		team, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)
		bob := newTestUser(2, "bob")
		require.NoError(t, bob.JoinTeam(team))

		err = bob.JoinTeam(team)

		require.NoError(t, err)
		assert.Equal(t, 2, team.MemberCount())
	})

	t.Run("the implicit leave does not run when the target is full", func(t *testing.T) {
		hackathon := newTestHackathon(2)
		first, err := NewTeam("Rocket", hackathon, newTestUser(1, "alice"))
		require.NoError(t, err)
		second, err := NewTeam("Comet", hackathon, newTestUser(2, "bob"))
		require.NoError(t, err)
		require.NoError(t, second.AddMember(newTestUser(3, "carol")))

		dave := newTestUser(4, "dave")
		require.NoError(t, first.AddMember(dave))

		err = dave.JoinTeam(second)

		assert.ErrorIs(t, err, ErrConflictingMembership)
		assert.True(t, first.HasMember(dave))
	})

	t.Run("nil team", func(t *testing.T) {
		err := newTestUser(1, "alice").JoinTeam(nil)

		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestTeam_SubmitProject(t *testing.T) {
	team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
	require.NoError(t, err)

	assert.False(t, team.HasSubmittedProject())

	team.SubmitProject("Widget", "A widget", "https://example.com/widget")

	assert.True(t, team.HasSubmittedProject())
	assert.Equal(t, "Widget", team.Project.Name)
	assert.Equal(t, "https://example.com/widget", team.Project.RepositoryURL)
}

func TestTeam_Evaluate(t *testing.T) {
	tests := []struct {
		name    string
		score   float64
		wantErr error
	}{
		{
			name:  "lower bound",
			score: 0,
		},
		{
			name:  "upper bound",
			score: 10,
		},
		{
			name:    "below range",
			score:   -0.1,
			wantErr: ErrScoreOutOfRange,
		},
		{
			name:    "above range",
			score:   10.1,
			wantErr: ErrScoreOutOfRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
			require.NoError(t, err)

			err = team.Evaluate(tt.score, "solid work")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, team.IsEvaluated())
				return
			}

			require.NoError(t, err)
			require.True(t, team.IsEvaluated())
			assert.Equal(t, tt.score, team.Evaluation.Score)
		})
	}

	t.Run("overwrites a previous evaluation", func(t *testing.T) {
		team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
		require.NoError(t, err)
		require.NoError(t, team.Evaluate(5, "ok"))

		require.NoError(t, team.Evaluate(8, "better"))

		assert.Equal(t, 8.0, team.Evaluation.Score)
		assert.Equal(t, "better", team.Evaluation.Feedback)
	})

	t.Run("reset clears the evaluation", func(t *testing.T) {
		team, err := NewTeam("Rocket", newTestHackathon(4), newTestUser(1, "alice"))
		require.NoError(t, err)
		require.NoError(t, team.Evaluate(5, "ok"))

		team.ResetEvaluation()

		assert.False(t, team.IsEvaluated())
	})
}
