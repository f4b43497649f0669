package workflow

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
	"github.com/ignatzorin/grant-assistant/internal/domain/repository"
	"github.com/ignatzorin/grant-assistant/internal/domain/valueobject"
	"github.com/ignatzorin/grant-assistant/internal/goroutine"
	"github.com/ignatzorin/grant-assistant/internal/logger"
	"github.com/ignatzorin/grant-assistant/internal/metrics"
	"github.com/ignatzorin/grant-assistant/internal/models"
	"github.com/ignatzorin/grant-assistant/internal/pkg/apperror"
	"github.com/ignatzorin/grant-assistant/internal/validation"
)

// Validator проверяет черновик по объявленным правилам (form.Schema).
type Validator interface {
	Validate(d *entity.Draft) validation.FieldErrors
	ValidateField(name, value string) error
}

// Notifier канал всплывающих уведомлений пользователю.
type Notifier interface {
	Notify(ctx context.Context, sessionID uuid.UUID, n models.Notification) error
}

// Recorder учитывает исходы отправок.
type Recorder interface {
	Submission(outcome string)
}

// Controller владеет одним черновиком и проводит его через
// проверку и единственный вызов генерации.
type Controller struct {
	sessionID uuid.UUID
	schema    Validator
	aiService repository.AIService
	notifier  Notifier
	recorder  Recorder
	inflight  *semaphore.Weighted
	spawn     func(fn func())

	mu          sync.RWMutex
	draft       *entity.Draft
	state       valueobject.WorkflowState
	fieldErrors validation.FieldErrors
	result      string
	lastErr     error
	current     *Submission
	submissions int
	outcome     string
}

// NewController создаёт контроллер с пустым черновиком в состоянии Idle.
func NewController(sessionID uuid.UUID, schema Validator, aiService repository.AIService, notifier Notifier) *Controller {
	return &Controller{
		sessionID:   sessionID,
		schema:      schema,
		aiService:   aiService,
		notifier:    notifier,
		inflight:    semaphore.NewWeighted(1),
		spawn:       goroutine.SafeGo,
		draft:       entity.NewDraft(),
		state:       valueobject.WorkflowStateIdle,
		fieldErrors: validation.FieldErrors{},
		outcome:     OutcomeNone,
	}
}

// SetRecorder подключает учёт метрик.
func (c *Controller) SetRecorder(r Recorder) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recorder = r
}

func (c *Controller) SessionID() uuid.UUID {
	return c.sessionID
}

// Update задаёт значение одного поля. Разрешено в любом состоянии,
// в том числе во время генерации; на уже отправленный запрос не влияет.
func (c *Controller) Update(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.draft.Set(field, value); err != nil {
		return err
	}

	// Показанная ошибка поля перепроверяется при каждом изменении.
	if c.fieldErrors.Has(field) {
		if err := c.schema.ValidateField(field, value); err != nil {
			c.fieldErrors[field] = err.Error()
		} else {
			delete(c.fieldErrors, field)
		}
	}
	return nil
}

// UpdateMany применяет несколько изменений. Неизвестное поле прерывает
// применение до каких-либо изменений.
func (c *Controller) UpdateMany(values map[string]string) error {
	for field := range values {
		if !entity.IsDraftField(field) {
			return apperror.Wrap(apperror.ErrUnknownField, apperror.ErrCodeBadRequest, "unknown form field: "+field)
		}
	}
	for field, value := range values {
		if err := c.Update(field, value); err != nil {
			return err
		}
	}
	return nil
}

// Validate проверяет все поля и запоминает ошибки для показа рядом с полями.
func (c *Controller) Validate() validation.FieldErrors {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fieldErrors = c.schema.Validate(c.draft)
	return copyErrors(c.fieldErrors)
}

// Submit проверяет черновик и запускает генерацию.
// Пока предыдущая генерация не завершилась, возвращает ErrSubmissionInFlight
// и ничего не меняет. При ошибках проверки генерация не вызывается.
func (c *Controller) Submit(ctx context.Context) (*Submission, error) {
	if c.aiService == nil {
		return nil, apperror.ErrGeneratorUnavailable
	}

	if !c.inflight.TryAcquire(1) {
		c.record(metrics.OutcomeInFlight)
		return nil, apperror.ErrSubmissionInFlight
	}

	c.mu.Lock()
	c.transition(valueobject.WorkflowStateValidating)
	c.fieldErrors = c.schema.Validate(c.draft)

	if !c.fieldErrors.Empty() {
		errs := copyErrors(c.fieldErrors)
		c.transition(valueobject.WorkflowStateInvalid)
		c.transition(valueobject.WorkflowStateIdle)
		c.outcome = OutcomeInvalid
		c.mu.Unlock()
		c.inflight.Release(1)

		c.notify(ctx, models.MissingInformationNotification)
		c.record(metrics.OutcomeInvalid)
		return nil, apperror.Validation("please correct the highlighted fields", errs)
	}

	req, err := entity.NewGrantRequest(c.draft)
	if err != nil {
		// Черновик уже проверен, сюда попадаем только при рассинхроне схемы и сущности.
		c.transition(valueobject.WorkflowStateInvalid)
		c.transition(valueobject.WorkflowStateIdle)
		c.mu.Unlock()
		c.inflight.Release(1)
		return nil, apperror.Wrap(err, apperror.ErrCodeInternal, "failed to prepare generation request")
	}

	c.submissions++
	c.outcome = OutcomeNone
	sub := newSubmission(c.submissions)
	c.current = sub
	c.transition(valueobject.WorkflowStateSubmitting)
	c.mu.Unlock()

	logger.WithSession(c.sessionID).WithField("submission", sub.Number).Info("generation started")

	// Отмена запроса клиента не должна прерывать генерацию.
	detached := context.WithoutCancel(ctx)
	c.spawn(func() {
		c.run(detached, sub, req)
	})

	return sub, nil
}

func (c *Controller) run(ctx context.Context, sub *Submission, req entity.GrantRequest) {
	var (
		text string
		err  error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("generation panic: %v", r)
			}
		}()
		text, err = c.aiService.GenerateSuggestions(ctx, req)
	}()

	c.complete(ctx, sub, text, err)
}

func (c *Controller) complete(ctx context.Context, sub *Submission, text string, err error) {
	c.mu.Lock()
	if err != nil {
		c.transition(valueobject.WorkflowStateFailed)
		c.outcome = OutcomeFailed
		c.result = ""
		c.lastErr = apperror.Wrap(err, apperror.ErrCodeGeneration, "failed to generate suggestions")
	} else {
		c.transition(valueobject.WorkflowStateSucceeded)
		c.outcome = OutcomeSucceeded
		c.result = text
		c.lastErr = nil
	}
	c.mu.Unlock()

	c.inflight.Release(1)

	entry := logger.WithSession(c.sessionID).WithField("submission", sub.Number).
		WithField("duration", time.Since(sub.StartedAt).String())
	if err != nil {
		entry.WithError(err).Warn("generation failed")
		c.notify(ctx, models.FailureNotification)
		c.record(metrics.OutcomeFailed)
	} else {
		entry.Info("generation succeeded")
		c.notify(ctx, models.SuccessNotification)
		c.record(metrics.OutcomeSucceeded)
	}

	// current снимается только после уведомления: Discard ждёт его по Done.
	c.mu.Lock()
	if c.current == sub {
		c.current = nil
	}
	c.mu.Unlock()

	sub.finish(text, err)
}

// transition вызывается под c.mu.
func (c *Controller) transition(next valueobject.WorkflowState) {
	if !c.state.CanTransitionTo(next) {
		logger.WithSession(c.sessionID).Errorf("workflow: недопустимый переход %s -> %s", c.state, next)
	}
	c.state = next
}

func (c *Controller) notify(ctx context.Context, n models.Notification) {
	if c.notifier == nil {
		return
	}
	n.SessionID = c.sessionID

	entry := logger.WithSession(c.sessionID).WithField("toast", n.Title)
	if n.Variant.IsDestructive() {
		entry.Warn("workflow: destructive toast")
	} else {
		entry.Debug("workflow: toast")
	}

	if err := c.notifier.Notify(ctx, c.sessionID, n); err != nil {
		logger.WithSession(c.sessionID).WithError(err).Warn("notification not delivered")
	}
}

func (c *Controller) record(outcome string) {
	c.mu.RLock()
	r := c.recorder
	c.mu.RUnlock()
	if r != nil {
		r.Submission(outcome)
	}
}

// Loading сообщает, идёт ли генерация.
func (c *Controller) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state == valueobject.WorkflowStateSubmitting
}

// Current возвращает выполняющуюся отправку или nil.
func (c *Controller) Current() *Submission {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Discard очищает черновик, результат и ошибки (уход со страницы).
func (c *Controller) Discard() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft.Reset()
	c.fieldErrors = validation.FieldErrors{}
	c.result = ""
	c.lastErr = nil
	c.outcome = OutcomeNone
}

// Итог последней отправки.
const (
	OutcomeNone      = "none"
	OutcomeInvalid   = "invalid"
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
)

// Snapshot состояние контроллера для отображения.
type Snapshot struct {
	SessionID   uuid.UUID                 `json:"session_id"`
	State       valueobject.WorkflowState `json:"state"`
	Phase       string                    `json:"phase"`
	Outcome     string                    `json:"outcome"`
	Loading     bool                      `json:"loading"`
	Values      map[string]string         `json:"values"`
	FieldErrors validation.FieldErrors    `json:"field_errors"`
	Result      string                    `json:"result,omitempty"`
	Error       string                    `json:"error,omitempty"`
	Submissions int                       `json:"submissions"`
	UpdatedAt   time.Time                 `json:"updated_at"`
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		SessionID:   c.sessionID,
		State:       c.state,
		Phase:       phaseOf(c.state),
		Outcome:     c.outcome,
		Loading:     c.state == valueobject.WorkflowStateSubmitting,
		Values:      c.draft.Values(),
		FieldErrors: copyErrors(c.fieldErrors),
		Result:      c.result,
		Submissions: c.submissions,
		UpdatedAt:   c.draft.UpdatedAt,
	}
	if c.lastErr != nil {
		s.Error = models.FailureNotification.Description
	}
	return s
}

// phaseOf сводит состояние к фазе: завершённые и отклонённые отправки считаются idle.
func phaseOf(s valueobject.WorkflowState) string {
	if s.IsIdle() || s == valueobject.WorkflowStateInvalid {
		return string(valueobject.WorkflowStateIdle)
	}
	return string(s)
}

func copyErrors(src validation.FieldErrors) validation.FieldErrors {
	out := make(validation.FieldErrors, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
