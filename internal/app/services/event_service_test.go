package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prospecta/internal/app/models/dto"
	"prospecta/internal/pkg/apperrors"
)

func TestCreateEvent(t *testing.T) {
	env := newTestEnv()

	event, err := env.events.CreateEvent(context.Background(), &dto.CreateEventRequest{
		EventName:     "Feira de Carreiras",
		EventDate:     "2026-03-15",
		EventLocation: ptr("Campus Norte"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), event.ID)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), event.EventDate)
}

func TestCreateEventInvalidDate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	for _, date := range []string{"15/03/2026", "2026-3-15", "2026-03-15T10:00:00Z", "amanhã", ""} {
		_, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
			EventName: "Feira de Carreiras",
			EventDate: date,
		})
		require.Error(t, err, "date %q must be rejected", date)
		assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
		assert.Contains(t, err.Error(), "AAAA-MM-DD")
	}
}

func TestUpdateEventPartial(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	event, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
		EventName: "Feira de Carreiras",
		EventDate: "2026-03-15",
	})
	require.NoError(t, err)

	updated, err := env.events.UpdateEvent(ctx, event.ID, &dto.UpdateEventRequest{
		EventDate: ptr("2026-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Feira de Carreiras", updated.EventName)
	assert.Equal(t, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), updated.EventDate)
}

func TestUpdateEventInvalidDate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	event, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
		EventName: "Feira de Carreiras",
		EventDate: "2026-03-15",
	})
	require.NoError(t, err)

	_, err = env.events.UpdateEvent(ctx, event.ID, &dto.UpdateEventRequest{
		EventDate: ptr("01-04-2026"),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func TestDeleteEventBlockedByInteractions(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	event, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
		EventName: "Feira de Carreiras",
		EventDate: "2026-03-15",
	})
	require.NoError(t, err)

	student, err := env.students.CreateStudent(ctx, studentReq("Carla Dias", "carla@example.com"))
	require.NoError(t, err)

	_, err = env.interactions.CreateInteraction(ctx, &dto.CreateInteractionRequest{
		StudentID: ptr(student.ID),
		EventID:   ptr(event.ID),
	})
	require.NoError(t, err)

	err = env.events.DeleteEvent(ctx, event.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindDependency, apperrors.KindOf(err))

	_, err = env.events.GetEventByID(ctx, event.ID)
	assert.NoError(t, err, "event must survive the rejected delete")
}

func TestDeleteEvent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	event, err := env.events.CreateEvent(ctx, &dto.CreateEventRequest{
		EventName: "Feira de Carreiras",
		EventDate: "2026-03-15",
	})
	require.NoError(t, err)

	require.NoError(t, env.events.DeleteEvent(ctx, event.ID))

	_, err = env.events.GetEventByID(ctx, event.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
