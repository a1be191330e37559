package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/GrigorasVictor/HealthCare-AI/internal/calendar"
	"github.com/GrigorasVictor/HealthCare-AI/internal/model"
)

type mockMedication struct {
	name string
	time string
}

var mockMedications = []mockMedication{
	{"Paracetamol", "12:59"},
	{"Ibuprofen", "09:00"},
	{"Aspirin", "18:30"},
	{"Paracetamol", "12:00"},
	{"Ibuprofen", "09:00"},
	{"Aspirin", "18:30"},
}

// MockService answers the prescription endpoints with fixed data.
// It holds no per-request state and is safe for concurrent use.
type MockService struct {
	log *slog.Logger
	now func() time.Time
}

func NewMockService(log *slog.Logger, now func() time.Time) *MockService {
	if log == nil {
		log = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &MockService{log: log, now: now}
}

func (s *MockService) GetStatus() model.StatusFlags {
	return model.StatusFlags{Server: false, AI: true, Calendar: true}
}

// SubmitMockup validates the upload and returns the fixed medication list
// dated today. Only the file and gender are checked.
func (s *MockService) SubmitMockup(ctx context.Context, req model.UploadRequest) ([]model.MedicationRecord, error) {
	fileName, fileSize := "", int64(0)
	if req.File != nil {
		fileName, fileSize = req.File.Name(), req.File.Size()
	}
	s.log.InfoContext(ctx, "mockup received",
		"comment", req.Comment,
		"gender", req.Gender,
		"child", req.IsChild,
		"pregnant", req.IsPregnant,
		"file", fileName,
		"size", fileSize,
	)

	if fileName == "" || fileSize == 0 {
		return nil, ErrFileMissing
	}
	if req.Gender == "" {
		return nil, ErrFieldsRequired
	}

	today := model.DateOf(s.now())
	records := make([]model.MedicationRecord, 0, len(mockMedications))
	for _, m := range mockMedications {
		records = append(records, model.MedicationRecord{Name: m.name, Date: today, Time: m.time})
	}
	return records, nil
}

// SubmitCalendarEvent logs the event. A "medicines" list, when present, is
// previewed as calendar entries in the debug log; it never fails the call.
func (s *MockService) SubmitCalendarEvent(ctx context.Context, event model.CalendarEvent) error {
	s.log.InfoContext(ctx, "calendar event received", "event", map[string]any(event))

	raw, ok := event["medicines"]
	if !ok {
		return nil
	}
	records, err := calendar.DecodeMedicines(raw)
	if err != nil {
		s.log.DebugContext(ctx, "calendar preview skipped", "err", err)
		return nil
	}
	events, err := calendar.FromMedications(records, s.now().Location())
	if err != nil {
		s.log.DebugContext(ctx, "calendar preview skipped", "err", err)
		return nil
	}
	summaries := make([]string, 0, len(events))
	for _, e := range events {
		summaries = append(summaries, e.Summary+" @ "+e.Start.DateTime)
	}
	s.log.DebugContext(ctx, "calendar preview", "events", len(events), "summaries", summaries)
	return nil
}
