package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/GrigorasVictor/HealthCare-AI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFile struct {
	name string
	size int64
}

func (f fakeFile) Name() string { return f.name }
func (f fakeFile) Size() int64  { return f.size }

var fixedNow = time.Date(2026, time.October, 14, 8, 30, 0, 0, time.UTC)

func newTestService(buf *bytes.Buffer) *MockService {
	log := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewMockService(log, func() time.Time { return fixedNow })
}

func validRequest() model.UploadRequest {
	return model.UploadRequest{
		Comment:    "twice a day",
		Gender:     "female",
		IsChild:    false,
		IsPregnant: true,
		File:       fakeFile{name: "prescription.jpg", size: 2048},
	}
}

func TestGetStatus(t *testing.T) {
	s := newTestService(&bytes.Buffer{})
	want := model.StatusFlags{Server: false, AI: true, Calendar: true}
	assert.Equal(t, want, s.GetStatus())
	assert.Equal(t, want, s.GetStatus())
}

func TestSubmitMockupFileChecks(t *testing.T) {
	cases := map[string]model.UploadFile{
		"nil file":   nil,
		"no name":    fakeFile{name: "", size: 10},
		"empty file": fakeFile{name: "scan.png", size: 0},
	}
	for name, file := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			req.File = file
			records, err := newTestService(&bytes.Buffer{}).SubmitMockup(context.Background(), req)
			assert.Nil(t, records)
			assert.ErrorIs(t, err, ErrFileMissing)
		})
	}
}

func TestSubmitMockupFileCheckedBeforeGender(t *testing.T) {
	req := validRequest()
	req.File = fakeFile{name: "scan.png"}
	req.Gender = ""

	_, err := newTestService(&bytes.Buffer{}).SubmitMockup(context.Background(), req)
	assert.ErrorIs(t, err, ErrFileMissing)
}

func TestSubmitMockupOnlyGenderRequired(t *testing.T) {
	s := newTestService(&bytes.Buffer{})

	req := validRequest()
	req.Gender = ""
	_, err := s.SubmitMockup(context.Background(), req)
	require.ErrorIs(t, err, ErrFieldsRequired)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "All fields are required", verr.Message)

	// comment is not checked
	req = validRequest()
	req.Comment = ""
	_, err = s.SubmitMockup(context.Background(), req)
	assert.NoError(t, err)
}

func TestSubmitMockupRecords(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	records, err := s.SubmitMockup(context.Background(), validRequest())
	require.NoError(t, err)

	today := model.Date{Year: 2026, Month: time.October, Day: 14}
	assert.Equal(t, []model.MedicationRecord{
		{Name: "Paracetamol", Date: today, Time: "12:59"},
		{Name: "Ibuprofen", Date: today, Time: "09:00"},
		{Name: "Aspirin", Date: today, Time: "18:30"},
		{Name: "Paracetamol", Date: today, Time: "12:00"},
		{Name: "Ibuprofen", Date: today, Time: "09:00"},
		{Name: "Aspirin", Date: today, Time: "18:30"},
	}, records)

	assert.Contains(t, buf.String(), `"gender":"female"`)
	assert.Contains(t, buf.String(), `"file":"prescription.jpg"`)
}

func TestSubmitMockupDeterministic(t *testing.T) {
	s := newTestService(&bytes.Buffer{})
	first, err := s.SubmitMockup(context.Background(), validRequest())
	require.NoError(t, err)
	second, err := s.SubmitMockup(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// callers cannot corrupt later responses
	first[0].Name = "changed"
	third, _ := s.SubmitMockup(context.Background(), validRequest())
	assert.Equal(t, "Paracetamol", third[0].Name)
}

func TestSubmitCalendarEvent(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	assert.NoError(t, s.SubmitCalendarEvent(context.Background(), model.CalendarEvent{"foo": "bar"}))
	assert.NoError(t, s.SubmitCalendarEvent(context.Background(), model.CalendarEvent{}))
	assert.NoError(t, s.SubmitCalendarEvent(context.Background(), nil))
	assert.Contains(t, buf.String(), `"foo":"bar"`)
	assert.NotContains(t, buf.String(), "calendar preview")
}

func TestSubmitCalendarEventPreview(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	err := s.SubmitCalendarEvent(context.Background(), model.CalendarEvent{
		"medicines": []any{
			map[string]any{"name": "Paracetamol #1", "date": "2026-10-14", "time": "12:00"},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Paracetamol @ 2026-10-14T12:00:00")
}

func TestSubmitCalendarEventBadMedicinesStillSucceeds(t *testing.T) {
	var buf bytes.Buffer
	s := newTestService(&buf)

	assert.NoError(t, s.SubmitCalendarEvent(context.Background(), model.CalendarEvent{"medicines": "nope"}))
	assert.NoError(t, s.SubmitCalendarEvent(context.Background(), model.CalendarEvent{
		"medicines": []any{map[string]any{"name": "Aspirin", "date": "2026-10-14", "time": "late"}},
	}))
	assert.Contains(t, buf.String(), "calendar preview skipped")
}
