package gateway

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Facade bundles the calendar and payment boundaries behind the handful of
// operations the rest of the application actually performs.
type Facade struct {
	calendar Calendar
	payment  Payment
}

func NewFacade(calendar Calendar, payment Payment) *Facade {
	return &Facade{
		calendar: calendar,
		payment:  payment,
	}
}

// ScheduleMentorCall books a support call between a mentor and a team and
// returns the calendar event ID.
func (f *Facade) ScheduleMentorCall(ctx context.Context, mentorName, mentorEmail, teamName, teamLeaderEmail string, startTime, endTime time.Time, topic string) (string, error) {
	title := fmt.Sprintf("Support Call: %s - %s", teamName, topic)
	description := fmt.Sprintf("Mentoring session for team %s with mentor %s. Topic: %s",
		teamName, mentorName, topic)

	event, err := f.calendar.ScheduleMeeting(ctx, title, description, startTime, endTime, mentorEmail, []string{teamLeaderEmail})
	if err != nil {
		return "", fmt.Errorf("f.calendar.ScheduleMeeting -> %w", err)
	}

	zap.L().Info("mentor call scheduled", zap.String("event_id", event.ID))

	return event.ID, nil
}

// ScheduleRecurringMentorCalls books a series of one-hour calls spaced
// daysBetweenCalls apart, starting at firstCallTime.
func (f *Facade) ScheduleRecurringMentorCalls(ctx context.Context, mentorName, mentorEmail, teamName, teamLeaderEmail string, firstCallTime time.Time, numberOfCalls, daysBetweenCalls int) ([]string, error) {
	eventIDs := make([]string, 0, numberOfCalls)
	callTime := firstCallTime

	for i := 0; i < numberOfCalls; i++ {
		topic := fmt.Sprintf("Session %d/%d", i+1, numberOfCalls)

		eventID, err := f.ScheduleMentorCall(ctx, mentorName, mentorEmail, teamName, teamLeaderEmail,
			callTime, callTime.Add(time.Hour), topic)
		if err != nil {
			return eventIDs, fmt.Errorf("f.ScheduleMentorCall -> %w", err)
		}

		eventIDs = append(eventIDs, eventID)
		callTime = callTime.AddDate(0, 0, daysBetweenCalls)
	}

	return eventIDs, nil
}

func (f *Facade) CancelMentorCall(ctx context.Context, eventID string) (bool, error) {
	cancelled, err := f.calendar.CancelMeeting(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("f.calendar.CancelMeeting -> %w", err)
	}

	return cancelled, nil
}

// ProcessHackathonPrize pays the prize to the winning team's creator.
func (f *Facade) ProcessHackathonPrize(ctx context.Context, amountCents int64, currency, teamName, teamLeaderEmail, hackathonName string) (Transaction, error) {
	description := "Hackathon prize: " + hackathonName

	tx, err := f.payment.ProcessPrizePayment(ctx, amountCents, currency, teamName, teamLeaderEmail, description)
	if err != nil {
		return Transaction{}, fmt.Errorf("f.payment.ProcessPrizePayment -> %w", err)
	}

	return tx, nil
}
