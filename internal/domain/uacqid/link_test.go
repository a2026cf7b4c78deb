package uacqid

import (
	"testing"

	"github.com/census-rm/caseapi/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUacQidLink(t *testing.T) {
	t.Run("creates unlinked pair", func(t *testing.T) {
		link, err := NewUacQidLink("0120000000000100", "abcd1234efgh5678")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, link.ID)
		assert.Equal(t, "0120000000000100", link.QID)
		assert.Equal(t, "abcd1234efgh5678", link.UAC)
		assert.True(t, link.Active)
		assert.False(t, link.IsLinked())
		assert.Empty(t, link.GetDomainEvents())
	})

	t.Run("fails with empty QID", func(t *testing.T) {
		_, err := NewUacQidLink("", "abcd1234efgh5678")
		assert.Error(t, err)
	})

	t.Run("fails with empty UAC", func(t *testing.T) {
		_, err := NewUacQidLink("0120000000000100", " ")
		assert.Error(t, err)
	})
}

func TestLinkToCase(t *testing.T) {
	newLink := func(t *testing.T) *UacQidLink {
		t.Helper()
		link, err := NewUacQidLink("0120000000000100", "abcd1234efgh5678")
		require.NoError(t, err)
		return link
	}

	t.Run("links unlinked pair and raises exactly one event", func(t *testing.T) {
		link := newLink(t)
		caseID := uuid.New()
		txID := uuid.New()

		err := link.LinkToCase(caseID, txID)

		require.NoError(t, err)
		assert.True(t, link.IsLinked())
		require.NotNil(t, link.CaseID)
		assert.Equal(t, caseID, *link.CaseID)

		events := link.GetDomainEvents()
		require.Len(t, events, 1)
		linked, ok := events[0].(*QuestionnaireLinkedEvent)
		require.True(t, ok)
		assert.Equal(t, link.QID, linked.QuestionnaireID)
		assert.Equal(t, caseID, linked.CaseID)
		assert.Equal(t, txID, linked.TransactionID)
		assert.Equal(t, link.ID, linked.AggregateID())

		require.Len(t, link.Events, 1)
		assert.Equal(t, EventTypeQuestionnaireLinked, link.Events[0].EventType)
		assert.Equal(t, link.ID, link.Events[0].LinkID)
	})

	t.Run("relinking to the same case is a no-op", func(t *testing.T) {
		link := newLink(t)
		caseID := uuid.New()

		require.NoError(t, link.LinkToCase(caseID, uuid.New()))
		link.ClearDomainEvents()

		err := link.LinkToCase(caseID, uuid.New())

		require.NoError(t, err)
		assert.Empty(t, link.GetDomainEvents())
		assert.Len(t, link.Events, 1)
	})

	t.Run("relinking to a different case is rejected", func(t *testing.T) {
		link := newLink(t)
		first := uuid.New()
		require.NoError(t, link.LinkToCase(first, uuid.New()))

		err := link.LinkToCase(uuid.New(), uuid.New())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "CONFLICT", domainErr.Code)
		assert.Equal(t, first, *link.CaseID)
	})
}

func TestNewCaseEvent(t *testing.T) {
	linkID := uuid.New()

	event := NewCaseEvent(linkID, EventTypeResponseReceived, "Response received")

	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, linkID, event.LinkID)
	assert.Equal(t, EventTypeResponseReceived, event.EventType)
	assert.Equal(t, "Response received", event.Description)
}
