package textbot_test

import (
	"testing"

	"github.com/fwojciec/textbot"
	"github.com/stretchr/testify/assert"
)

func TestNewSession(t *testing.T) {
	t.Parallel()

	s := textbot.NewSession("Ada Lovelace", textbot.PrefixWhoIs)

	assert.Equal(t, "Ada Lovelace", s.SearchTerm)
	assert.Equal(t, textbot.PrefixWhoIs, s.Prefix)
	assert.Equal(t, textbot.StageIdle, s.Stage)
	assert.Empty(t, s.RawContent)
	assert.Empty(t, s.SanitizedContent)
	assert.NotNil(t, s.Sentences)
	assert.Empty(t, s.Sentences)
}

func TestSession_Update(t *testing.T) {
	t.Parallel()

	s := textbot.NewSession("x", "")
	s.Update("rawContent")
	s.Update("sanitizedContent")

	assert.Equal(t, []string{"sanitizedContent"}, s.ChangedFields)
}

func TestSession_Query(t *testing.T) {
	t.Parallel()

	s := textbot.NewSession("Rome", textbot.PrefixTheHistoryOf)

	assert.Equal(t, textbot.Query{Term: "Rome", Prefix: textbot.PrefixTheHistoryOf}, s.Query())
}

func TestStage_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", textbot.StageIdle.String())
	assert.Equal(t, "content_fetched", textbot.StageContentFetched.String())
	assert.Equal(t, "sanitized", textbot.StageSanitized.String())
	assert.Equal(t, "segmented", textbot.StageSegmented.String())
	assert.Equal(t, "annotated", textbot.StageAnnotated.String())
	assert.Equal(t, "done", textbot.StageDone.String())
	assert.Equal(t, "unknown", textbot.Stage(42).String())
}
