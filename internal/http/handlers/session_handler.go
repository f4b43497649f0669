package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/grant-assistant/internal/dto"
	"github.com/ignatzorin/grant-assistant/internal/http/handlers/common"
	"github.com/ignatzorin/grant-assistant/internal/http/response"
	"github.com/ignatzorin/grant-assistant/internal/models"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/service"
)

// SessionHandler обслуживает форму заявки одной страницы.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler создаёт новый хэндлер.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Create обрабатывает POST /api/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	session, err := h.sessions.Create(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.SessionResponse{
		ID:        session.ID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		Workflow:  session.Controller.Snapshot(),
	})
}

// Get обрабатывает GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	controller, err := common.CurrentController(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, controller.Snapshot())
}

// UpdateField обрабатывает PATCH /api/sessions/:id/fields/:field.
func (h *SessionHandler) UpdateField(c *gin.Context) {
	controller, err := common.CurrentController(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateFieldRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := controller.Update(c.Param("field"), *req.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, controller.Snapshot())
}

// UpdateFields обрабатывает PUT /api/sessions/:id/fields.
func (h *SessionHandler) UpdateFields(c *gin.Context) {
	controller, err := common.CurrentController(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateFieldsRequest
	if err := common.BindAndValidate(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := controller.UpdateMany(req.Values); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, controller.Snapshot())
}

// Validate обрабатывает POST /api/sessions/:id/validate.
func (h *SessionHandler) Validate(c *gin.Context) {
	controller, err := common.CurrentController(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if errs := controller.Validate(); !errs.Empty() {
		response.Error(c, apperror.Validation("please correct the highlighted fields", errs))
		return
	}

	response.Success(c, controller.Snapshot())
}

// Submit обрабатывает POST /api/sessions/:id/submit[?wait=true].
// Без wait отвечает 202 сразу после запуска генерации.
func (h *SessionHandler) Submit(c *gin.Context) {
	controller, err := common.CurrentController(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sub, err := controller.Submit(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if !common.ParseBoolQuery(c, "wait") {
		response.Accepted(c, dto.NewSubmissionResponse(sub, controller.Snapshot()))
		return
	}

	if _, err := sub.Wait(c.Request.Context()); err != nil {
		if c.Request.Context().Err() != nil {
			// Клиент ушёл, генерация продолжается без него
			return
		}
		response.Error(c, apperror.Wrap(err, apperror.ErrCodeGeneration, models.FailureNotification.Description))
		return
	}

	response.Success(c, dto.NewSubmissionResponse(sub, controller.Snapshot()))
}

// Discard обрабатывает DELETE /api/sessions/:id.
func (h *SessionHandler) Discard(c *gin.Context) {
	sessionID, err := common.CurrentSessionID(c)
	if err != nil {
		response.Error(c, apperror.Wrap(err, apperror.ErrCodeInternal, "session is not resolved"))
		return
	}

	if err := h.sessions.Discard(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"id": sessionID, "discarded": true})
}
