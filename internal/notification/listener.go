package notification

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
)

// TeamListener turns hackathon lifecycle events into notifications for the
// people involved.
type TeamListener struct {
	dispatcher *Dispatcher
}

func NewTeamListener(dispatcher *Dispatcher) *TeamListener {
	return &TeamListener{
		dispatcher: dispatcher,
	}
}

// OnStatusChange notifies every team member in-app.
func (l *TeamListener) OnStatusChange(ctx context.Context, hackathon *domain.Hackathon, oldStatus, newStatus domain.Status) {
	message := fmt.Sprintf("The status of hackathon %q changed from %s to %s",
		hackathon.Name, oldStatus, newStatus)

	for _, team := range hackathon.Teams {
		l.dispatcher.SendToAll(ctx, domain.NotificationInApp, message, team.Members)
	}
}

// OnJudgeAssigned emails the organizer.
func (l *TeamListener) OnJudgeAssigned(ctx context.Context, hackathon *domain.Hackathon) {
	if hackathon.Judge == nil || hackathon.Organizer == nil {
		return
	}

	message := fmt.Sprintf("Judge %s has been assigned to hackathon %q",
		hackathon.Judge.Username, hackathon.Name)

	l.dispatcher.Send(ctx, domain.NotificationEmail, message, *hackathon.Organizer)
}

// OnWinnerDeclared emails every participant; the winning team gets the
// congratulations.
func (l *TeamListener) OnWinnerDeclared(ctx context.Context, hackathon *domain.Hackathon, winnerTeamID uint) {
	for _, team := range hackathon.Teams {
		message := fmt.Sprintf("Thanks for taking part in hackathon %q!", hackathon.Name)
		if team.ID == winnerTeamID {
			message = fmt.Sprintf("Congratulations! Your team won hackathon %q!", hackathon.Name)
		}

		l.dispatcher.SendToAll(ctx, domain.NotificationEmail, message, team.Members)
	}
}
