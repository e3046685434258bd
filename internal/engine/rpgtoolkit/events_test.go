package rpgtoolkit_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/logging"
)

type EventsTestSuite struct {
	suite.Suite
	bus *events.Bus
	ctx context.Context
}

func TestEventsSuite(t *testing.T) {
	suite.Run(t, new(EventsTestSuite))
}

func (s *EventsTestSuite) SetupTest() {
	s.bus = events.NewBus()
	s.ctx = context.Background()
}

func (s *EventsTestSuite) TestPublishSheetEvent() {
	var received events.Event
	s.bus.SubscribeFunc(rpgtoolkit.EventSheetRecalculated, 0, func(_ context.Context, e events.Event) error {
		received = e
		return nil
	})

	err := rpgtoolkit.PublishSheetEvent(s.ctx, s.bus, rpgtoolkit.EventSheetRecalculated, "sheet_1", map[string]any{
		"revision":     3,
		"armor_status": "ready",
	})
	s.Require().NoError(err)
	s.Require().NotNil(received)

	s.Equal("sheet_1", received.Source().GetID())
	s.Equal(rpgtoolkit.SheetEntityType, received.Source().GetType())

	revision, ok := rpgtoolkit.ContextInt(received, "revision")
	s.True(ok)
	s.Equal(3, revision)

	status, ok := rpgtoolkit.ContextString(received, "armor_status")
	s.True(ok)
	s.Equal("ready", status)

	_, ok = rpgtoolkit.ContextString(received, "revision")
	s.False(ok)
}

func (s *EventsTestSuite) TestPublishWithoutBus() {
	s.NoError(rpgtoolkit.PublishSheetEvent(s.ctx, nil, rpgtoolkit.EventSheetRecalculated, "sheet_1", nil))
}

func (s *EventsTestSuite) TestLogSheetEvents() {
	var buf bytes.Buffer
	ids := rpgtoolkit.LogSheetEvents(s.bus, logging.NewWithWriter(&buf, slog.LevelDebug))
	s.Len(ids, 3)

	s.Require().NoError(rpgtoolkit.PublishSheetEvent(s.ctx, s.bus, rpgtoolkit.EventArmorResultStale, "sheet_7", map[string]any{
		"armor_id":         "leather-armor",
		"current_armor_id": "chain-mail",
		"generation":       4,
	}))

	out := buf.String()
	s.Contains(out, "event=sheet.armor_result_stale")
	s.Contains(out, "session_id=sheet_7")
	s.Contains(out, "generation=4")
	s.Contains(out, "current_armor_id=chain-mail")

	for _, id := range ids {
		s.NoError(s.bus.Unsubscribe(id))
	}
	buf.Reset()
	s.Require().NoError(rpgtoolkit.PublishSheetEvent(s.ctx, s.bus, rpgtoolkit.EventSheetRecalculated, "sheet_7", nil))
	s.Empty(buf.String())
}

func (s *EventsTestSuite) TestLogSheetEventsWithoutBus() {
	s.Nil(rpgtoolkit.LogSheetEvents(nil, slog.Default()))
}
