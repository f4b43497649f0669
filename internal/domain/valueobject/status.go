package valueobject

// WorkflowState состояние контроллера формы заявки.
type WorkflowState string

const (
	WorkflowStateIdle       WorkflowState = "idle"
	WorkflowStateValidating WorkflowState = "validating"
	WorkflowStateInvalid    WorkflowState = "invalid"
	WorkflowStateSubmitting WorkflowState = "submitting"

	// Succeeded и Failed: Idle с результатом и Idle с ошибкой.
	WorkflowStateSucceeded WorkflowState = "succeeded"
	WorkflowStateFailed    WorkflowState = "failed"
)

// IsIdle сообщает, что контроллер находится в одном из вариантов Idle.
func (s WorkflowState) IsIdle() bool {
	switch s {
	case WorkflowStateIdle, WorkflowStateSucceeded, WorkflowStateFailed:
		return true
	}
	return false
}

func (s WorkflowState) CanTransitionTo(newState WorkflowState) bool {
	transitions := map[WorkflowState][]WorkflowState{
		WorkflowStateIdle:       {WorkflowStateValidating},
		WorkflowStateSucceeded:  {WorkflowStateValidating},
		WorkflowStateFailed:     {WorkflowStateValidating},
		WorkflowStateValidating: {WorkflowStateInvalid, WorkflowStateSubmitting},
		WorkflowStateInvalid:    {WorkflowStateIdle},
		WorkflowStateSubmitting: {WorkflowStateSucceeded, WorkflowStateFailed},
	}

	allowed, ok := transitions[s]
	if !ok {
		return false
	}

	for _, state := range allowed {
		if state == newState {
			return true
		}
	}
	return false
}

// NotificationVariant вид всплывающего уведомления.
type NotificationVariant string

const (
	NotificationVariantDefault     NotificationVariant = "default"
	NotificationVariantDestructive NotificationVariant = "destructive"
)

func (v NotificationVariant) IsDestructive() bool {
	return v == NotificationVariantDestructive
}
