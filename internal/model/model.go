package model

type StatusFlags struct {
	Server   bool `json:"server"`
	AI       bool `json:"ai"`
	Calendar bool `json:"calendar"`
}

// UploadFile is the part of an uploaded file the mock inspects.
// Content is never read.
type UploadFile interface {
	Name() string
	Size() int64
}

type UploadRequest struct {
	Comment    string
	Gender     string
	IsChild    bool
	IsPregnant bool
	File       UploadFile
}

type MedicationRecord struct {
	Name string `json:"name"`
	Date Date   `json:"date"`
	Time string `json:"time"`
}

type CalendarEvent map[string]any

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
