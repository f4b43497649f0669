package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkflowState_Transitions(t *testing.T) {
	allowed := [][2]WorkflowState{
		{WorkflowStateIdle, WorkflowStateValidating},
		{WorkflowStateValidating, WorkflowStateInvalid},
		{WorkflowStateInvalid, WorkflowStateIdle},
		{WorkflowStateValidating, WorkflowStateSubmitting},
		{WorkflowStateSubmitting, WorkflowStateSucceeded},
		{WorkflowStateSubmitting, WorkflowStateFailed},
		{WorkflowStateSucceeded, WorkflowStateValidating},
		{WorkflowStateFailed, WorkflowStateValidating},
	}
	for _, tr := range allowed {
		assert.True(t, tr[0].CanTransitionTo(tr[1]), "%s -> %s", tr[0], tr[1])
	}

	forbidden := [][2]WorkflowState{
		{WorkflowStateIdle, WorkflowStateSubmitting},
		{WorkflowStateSubmitting, WorkflowStateValidating},
		{WorkflowStateInvalid, WorkflowStateSubmitting},
		{WorkflowStateSubmitting, WorkflowStateIdle},
	}
	for _, tr := range forbidden {
		assert.False(t, tr[0].CanTransitionTo(tr[1]), "%s -> %s", tr[0], tr[1])
	}
}

func TestWorkflowState_IsIdle(t *testing.T) {
	assert.True(t, WorkflowStateIdle.IsIdle())
	assert.True(t, WorkflowStateSucceeded.IsIdle())
	assert.True(t, WorkflowStateFailed.IsIdle())
	assert.False(t, WorkflowStateSubmitting.IsIdle())
	assert.False(t, WorkflowStateValidating.IsIdle())
}

func TestNotificationVariant(t *testing.T) {
	assert.True(t, NotificationVariantDestructive.IsDestructive())
	assert.False(t, NotificationVariantDefault.IsDestructive())
}
