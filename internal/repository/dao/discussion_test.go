package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscussionDAO_InsertMessageBumpsCounters(t *testing.T) {
	ctx := context.Background()
	d := NewDiscussionDAO(testDB)

	discussion, err := d.Insert(ctx, Discussion{
		Title:          "Carpool",
		DiscussionType: "event",
		LinkedID:       1,
		CreatorID:      1,
	})
	require.NoError(t, err)
	require.Zero(t, discussion.MessageCount)

	before := discussion.UpdatedAt

	root, err := d.InsertMessage(ctx, Message{
		DiscussionID: discussion.ID,
		AuthorID:     1,
		Content:      "anyone driving from downtown?",
	})
	require.NoError(t, err)

	fresh, err := d.FindByID(ctx, discussion.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.MessageCount)
	assert.False(t, fresh.UpdatedAt.Before(before))

	// A reply bumps the discussion counter and the parent's reply count
	// in the same transaction as the insert.
	_, err = d.InsertMessage(ctx, Message{
		DiscussionID:    discussion.ID,
		ParentMessageID: &root.ID,
		AuthorID:        2,
		Content:         "I am, two seats left",
	})
	require.NoError(t, err)

	fresh, err = d.FindByID(ctx, discussion.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.MessageCount)

	parent, err := d.FindMessageByID(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, parent.ReplyCount)
}

func TestDiscussionDAO_FindLastMessagesNewestFirst(t *testing.T) {
	ctx := context.Background()
	d := NewDiscussionDAO(testDB)

	discussion, err := d.Insert(ctx, Discussion{
		Title:          "Setup",
		DiscussionType: "event",
		LinkedID:       1,
		CreatorID:      1,
	})
	require.NoError(t, err)

	for _, content := range []string{"first", "second", "third"} {
		_, err = d.InsertMessage(ctx, Message{
			DiscussionID: discussion.ID,
			AuthorID:     1,
			Content:      content,
		})
		require.NoError(t, err)
	}

	messages, err := d.FindLastMessages(ctx, discussion.ID, 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "third", messages[0].Content)
}
