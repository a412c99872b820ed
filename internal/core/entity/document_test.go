package entity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stokado/internal/core/apperror"
)

func TestDocument_Lifecycle(t *testing.T) {
	d := NewDocument(time.Now())
	assert.Equal(t, StatusDraft, d.Status)
	assert.True(t, d.IsEditable())

	require.NoError(t, d.Confirm())
	assert.Equal(t, StatusConfirmed, d.Status)
	assert.False(t, d.IsEditable())

	require.NoError(t, d.Complete())
	assert.Equal(t, StatusCompleted, d.Status)
}

func TestDocument_Cancel(t *testing.T) {
	// Draft can be cancelled.
	d := NewDocument(time.Now())
	require.NoError(t, d.Cancel())
	assert.Equal(t, StatusCancelled, d.Status)

	// Confirmed can be cancelled.
	d = NewDocument(time.Now())
	require.NoError(t, d.Confirm())
	require.NoError(t, d.Cancel())
	assert.Equal(t, StatusCancelled, d.Status)

	// Completed cannot.
	d = NewDocument(time.Now())
	require.NoError(t, d.Confirm())
	require.NoError(t, d.Complete())
	err := d.Cancel()
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidStatusTransition, appErr.Code)
}

func TestDocument_InvalidTransitions(t *testing.T) {
	d := NewDocument(time.Now())

	// Complete requires confirmed.
	err := d.Complete()
	require.Error(t, err)

	// Confirm is not repeatable.
	require.NoError(t, d.Confirm())
	err = d.Confirm()
	require.Error(t, err)

	// Nothing moves out of cancelled.
	require.NoError(t, d.Cancel())
	assert.Error(t, d.Confirm())
	assert.Error(t, d.Complete())
	assert.Error(t, d.Cancel())
}

func TestDocument_Validate(t *testing.T) {
	ctx := context.Background()

	d := NewDocument(time.Now())
	assert.NoError(t, d.Validate(ctx))

	d.Date = time.Time{}
	assert.Error(t, d.Validate(ctx))

	d = NewDocument(time.Now())
	d.Status = Status("shipped")
	assert.Error(t, d.Validate(ctx))
}
