package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/postcap"
	main "github.com/fwojciec/postcap/cmd/postcap"
	"github.com/fwojciec/postcap/goquery"
	"github.com/fwojciec/postcap/mock"
)

const parseFixtureHTML = `<article data-testid="tweet">
	<div data-testid="User-Name">
		<a href="/jack"><span>Jack</span></a>
		<a href="/jack"><span>@jack</span></a>
	</div>
	<div data-testid="tweetText" lang="en">just setting up my twttr</div>
	<a href="/jack/status/20"><time datetime="2006-03-21T20:50:14.000Z">Mar 21, 2006</time></a>
</article>`

func TestParseCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("extracts record from saved HTML file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "post.html")
		require.NoError(t, os.WriteFile(file, []byte(parseFixtureHTML), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.ParseCmd{Files: []string{file}}

		err := cmd.Run(deps)

		require.NoError(t, err)

		var rec postcap.Record
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &rec))
		require.NotNil(t, rec.Text)
		assert.Equal(t, "just setting up my twttr", *rec.Text)
		assert.Equal(t, "https://x.com/jack/status/20", rec.URL)
	})

	t.Run("skips records below the confidence floor", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "sparse.html")
		require.NoError(t, os.WriteFile(file, []byte(`<article data-testid="tweet"></article>`), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.ParseCmd{Files: []string{file}, MinConfidence: 0.5}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "skipped")
	})

	t.Run("continues past unreadable files and returns the error", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		good := filepath.Join(dir, "good.html")
		require.NoError(t, os.WriteFile(good, []byte(parseFixtureHTML), 0o644))
		missing := filepath.Join(dir, "missing.html")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Extractor: goquery.NewExtractor(),
		}

		cmd := &main.ParseCmd{Files: []string{missing, good}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "missing.html")
		assert.Contains(t, stdout.String(), "just setting up my twttr")
	})

	t.Run("reports extraction failure per file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		file := filepath.Join(dir, "empty.html")
		require.NoError(t, os.WriteFile(file, []byte("<div>not a post</div>"), 0o644))

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		extractCalled := false
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: stderr,
			Extractor: &mock.PostExtractor{
				ExtractFn: func(html string) (*postcap.Record, error) {
					extractCalled = true
					return nil, postcap.Errorf(postcap.EINVALID, "no post container found")
				},
			},
		}

		cmd := &main.ParseCmd{Files: []string{file}}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.True(t, extractCalled)
		assert.Contains(t, stderr.String(), "no post container found")
		assert.Empty(t, stdout.String())
	})
}
