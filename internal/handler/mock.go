package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/GrigorasVictor/HealthCare-AI/internal/model"
	"github.com/GrigorasVictor/HealthCare-AI/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type MockHandler struct {
	svc       *service.MockService
	log       *slog.Logger
	maxUpload int64
}

func NewMockHandler(svc *service.MockService, log *slog.Logger, maxUpload int64) *MockHandler {
	if log == nil {
		log = slog.Default()
	}
	return &MockHandler{svc: svc, log: log, maxUpload: maxUpload}
}

type sendForm struct {
	Comment  string                `form:"comment"`
	Gender   string                `form:"gender"`
	Child    string                `form:"child"`
	Pregnant string                `form:"pregnant"`
	File     *multipart.FileHeader `form:"file"`
}

// parseFlag accepts the spellings Spring binds to a boolean. Empty is false.
func parseFlag(v string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "yes", "1":
		return true, true
	case "", "false", "off", "no", "0":
		return false, true
	}
	return false, false
}

type uploadedFile struct{ h *multipart.FileHeader }

func (f uploadedFile) Name() string { return f.h.Filename }
func (f uploadedFile) Size() int64  { return f.h.Size }

// GET /server/status
func (h *MockHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.GetStatus())
}

// POST /server/send  multipart: comment, gender, child, pregnant, file
func (h *MockHandler) Send(c *gin.Context) {
	if h.maxUpload > 0 {
		if c.Request.ContentLength > h.maxUpload {
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: "Upload exceeds size limit"})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload)
	}

	var form sendForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrNotMultipart):
			c.JSON(http.StatusUnsupportedMediaType, model.ErrorResponse{Error: "Content type must be multipart/form-data"})
		case errors.As(err, &tooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{Error: "Upload exceeds size limit"})
		default:
			h.log.WarnContext(c.Request.Context(), "send: bind failed", "err", err)
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Malformed multipart form"})
		}
		return
	}

	child, okChild := parseFlag(form.Child)
	pregnant, okPregnant := parseFlag(form.Pregnant)
	if !okChild || !okPregnant {
		h.log.WarnContext(c.Request.Context(), "send: bad flag", "child", form.Child, "pregnant", form.Pregnant)
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Fields 'child' and 'pregnant' must be true or false"})
		return
	}

	req := model.UploadRequest{
		Comment:    form.Comment,
		Gender:     form.Gender,
		IsChild:    child,
		IsPregnant: pregnant,
	}
	if form.File != nil {
		req.File = uploadedFile{form.File}
	}

	records, err := h.svc.SubmitMockup(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// POST /server/calendar  body: any JSON object
func (h *MockHandler) Calendar(c *gin.Context) {
	var event model.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Body must be a JSON object"})
		return
	}
	if err := h.svc.SubmitCalendarEvent(c.Request.Context(), event); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (h *MockHandler) writeError(c *gin.Context, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: verr.Message})
		return
	}
	h.log.ErrorContext(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "err", err)
	c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "internal error"})
}
