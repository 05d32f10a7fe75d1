package postcap_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/postcap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *postcap.Record {
	return &postcap.Record{
		URL: "https://x.com/jack/status/20",
		Author: postcap.Author{
			ProfileURL: "https://x.com/jack",
		},
		Media: []postcap.MediaItem{},
	}
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid record", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validRecord().Validate())
	})

	t.Run("missing URL", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.URL = ""
		err := rec.Validate()
		assert.Equal(t, postcap.EINVALID, postcap.ErrorCode(err))
	})

	t.Run("missing profile URL", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.Author.ProfileURL = ""
		err := rec.Validate()
		assert.Equal(t, postcap.EINVALID, postcap.ErrorCode(err))
	})

	t.Run("nil media list", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.Media = nil
		err := rec.Validate()
		assert.Equal(t, postcap.EINVALID, postcap.ErrorCode(err))
	})

	t.Run("invalid nested parent", func(t *testing.T) {
		t.Parallel()

		rec := validRecord()
		rec.Parent = &postcap.Record{Media: []postcap.MediaItem{}}
		err := rec.Validate()
		assert.Equal(t, postcap.EINVALID, postcap.ErrorCode(err))
	})
}

// The record is the wire contract with downstream consumers: undetermined
// values must serialize as JSON null and empty containers must stay
// containers, never null.
func TestRecord_JSONShape(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(validRecord())
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Nil(t, out["text"])
	assert.Nil(t, out["timestamp"])
	assert.Nil(t, out["linkCard"])
	assert.Nil(t, out["parent"])

	media, ok := out["media"].([]any)
	require.True(t, ok, "media must serialize as an array, got %T", out["media"])
	assert.Empty(t, media)

	metrics, ok := out["metrics"].(map[string]any)
	require.True(t, ok, "metrics must serialize as an object")
	for _, key := range []string{"replyCount", "retweetCount", "likeCount", "bookmarkCount", "viewCount"} {
		v, present := metrics[key]
		assert.True(t, present, "metrics.%s must be present", key)
		assert.Nil(t, v, "metrics.%s must be null when undetermined", key)
	}

	author, ok := out["author"].(map[string]any)
	require.True(t, ok, "author must serialize as an object")
	assert.Equal(t, "https://x.com/jack", author["profileUrl"])
	assert.Nil(t, author["handle"])

	tweetType, ok := out["tweetType"].(map[string]any)
	require.True(t, ok, "tweetType must serialize as an object")
	assert.Equal(t, false, tweetType["isRetweet"])
}
