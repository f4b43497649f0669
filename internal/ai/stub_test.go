package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/grant-assistant/internal/domain/entity"
)

func TestStubClient_ReturnsTemplate(t *testing.T) {
	stub := NewStubClient(0)

	text, err := stub.GenerateSuggestions(context.Background(), entity.GrantRequest{
		OrganizationName: "Green Future",
		GrantTitle:       "Tree Canopy",
	})

	require.NoError(t, err)
	assert.Equal(t, "Based on your input for Green Future, here are some suggestions for your grant proposal on Tree Canopy:\n\n"+
		"1. Focus on demonstrating clear impact metrics\n"+
		"2. Highlight your organization's unique approach\n"+
		"3. Include specific timeline and milestones\n"+
		"4. Detail the sustainability of your proposed project", text)
	assert.Equal(t, "stub", stub.Name())
}

func TestStubClient_WaitsForDelay(t *testing.T) {
	fired := make(chan time.Time)
	var requested time.Duration
	stub := NewStubClient(2 * time.Second)
	stub.after = func(d time.Duration) <-chan time.Time {
		requested = d
		return fired
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = stub.GenerateSuggestions(context.Background(), entity.GrantRequest{})
	}()

	select {
	case <-done:
		t.Fatal("stub returned before the delay elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	close(fired)
	<-done
	assert.Equal(t, DefaultStubDelay, requested)
}

func TestStubClient_ContextCanceled(t *testing.T) {
	stub := NewStubClient(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stub.GenerateSuggestions(ctx, entity.GrantRequest{})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewStubClient_NegativeDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewStubClient(-time.Second).delay)
}
