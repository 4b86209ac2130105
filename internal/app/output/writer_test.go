package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"

	apperrors "audio-transcriber/internal/app/errors"
	"audio-transcriber/internal/app/model"
)

func buildResult(t *testing.T, outcomes ...model.Outcome) *model.BatchResult {
	t.Helper()
	r := model.NewBatchResult(len(outcomes))
	for _, o := range outcomes {
		require.True(t, r.Put(o))
	}
	return r
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestWriter_PerItemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	jobs := model.JobSet{model.NewJob(filepath.Join(dir, "a.wav"))}
	result := buildResult(t, model.Succeeded("a", "hello world"))

	w := NewWriter(model.PerItem, "", zaptest.NewLogger(t))
	written, err := w.Write(jobs, result)
	require.NoError(t, err)

	want := filepath.Join(dir, "a_transcription.txt")
	assert.Equal(t, []string{want}, written)
	assert.Equal(t, "hello world", readFile(t, want))
}

func TestWriter_PerItemSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	jobs := model.JobSet{
		model.NewJob(filepath.Join(dir, "a.wav")),
		model.NewJob(filepath.Join(dir, "b.mp3")),
	}
	result := buildResult(t,
		model.Succeeded("a", "foo"),
		model.Failed("b", errors.New("bad audio")),
	)

	written, err := NewWriter(model.PerItem, "", nil).Write(jobs, result)
	require.NoError(t, err)
	assert.Len(t, written, 1)

	_, statErr := os.Stat(filepath.Join(dir, "b_transcription.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriter_PerItemBestEffort(t *testing.T) {
	dir := t.TempDir()
	jobs := model.JobSet{
		model.NewJob(filepath.Join(dir, "missing-dir", "a.wav")),
		model.NewJob(filepath.Join(dir, "b.wav")),
		model.NewJob(filepath.Join(dir, "gone", "c.wav")),
	}
	result := buildResult(t,
		model.Succeeded("a", "one"),
		model.Succeeded("b", "two"),
		model.Succeeded("c", "three"),
	)

	written, err := NewWriter(model.PerItem, "", nil).Write(jobs, result)
	require.Error(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "b_transcription.txt")}, written)
	assert.Equal(t, "two", readFile(t, written[0]))

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		var werr *WriteError
		require.True(t, errors.As(e, &werr))
		assert.True(t, errors.Is(e, apperrors.ErrFileWriteFailed))
	}
}

func TestWriter_CombinedManifestFormat(t *testing.T) {
	dir := t.TempDir()
	result := buildResult(t,
		model.Succeeded("a", "foo"),
		model.Failed("b", errors.New("rate limited")),
	)

	w := NewWriter(model.Combined, dir, nil)
	written, err := w.Write(nil, result)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, ManifestName)}, written)
	assert.Equal(t, "a foo", readFile(t, w.ManifestPath()))
}

func TestWriter_CombinedKeepsResultOrder(t *testing.T) {
	dir := t.TempDir()
	result := buildResult(t,
		model.Succeeded("z", "last letter"),
		model.Failed("m", errors.New("x")),
		model.Succeeded("a", "first letter"),
		model.Succeeded("k", ""),
	)

	w := NewWriter(model.Combined, dir, nil)
	_, err := w.Write(nil, result)
	require.NoError(t, err)
	assert.Equal(t, "z last letter\na first letter\nk ", readFile(t, w.ManifestPath()))
}

func TestManifest_FoldsLineBreaks(t *testing.T) {
	result := buildResult(t,
		model.Succeeded("a", "first line\nsecond line"),
		model.Succeeded("b", "bar"),
		model.Succeeded("c", "one\r\ntwo\rthree"),
	)

	manifest := Manifest(result)

	assert.Equal(t, "a first line second line\nb bar\nc one two three", manifest)
	assert.Len(t, strings.Split(manifest, "\n"), result.Len())
}

func TestWriter_PerItemKeepsLineBreaks(t *testing.T) {
	dir := t.TempDir()
	jobs := model.JobSet{model.NewJob(filepath.Join(dir, "a.wav"))}
	result := buildResult(t, model.Succeeded("a", "first line\nsecond line"))

	written, err := NewWriter(model.PerItem, "", nil).Write(jobs, result)
	require.NoError(t, err)
	assert.Equal(t, "first line\nsecond line", readFile(t, written[0]))
}

// An all-failed Combined run still produces an empty manifest rather than
// skipping the write.
func TestWriter_CombinedEmptyManifestPolicy(t *testing.T) {
	dir := t.TempDir()
	result := buildResult(t,
		model.Failed("a", errors.New("x")),
		model.Failed("b", errors.New("y")),
	)

	w := NewWriter(model.Combined, dir, nil)
	written, err := w.Write(nil, result)
	require.NoError(t, err)
	require.Len(t, written, 1)

	info, err := os.Stat(w.ManifestPath())
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriter_CombinedWriteError(t *testing.T) {
	w := NewWriter(model.Combined, filepath.Join(t.TempDir(), "absent"), nil)
	_, err := w.Write(nil, buildResult(t, model.Succeeded("a", "foo")))

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, w.ManifestPath(), werr.Path)
}

func TestItemStreamer(t *testing.T) {
	dir := t.TempDir()
	ok := model.NewJob(filepath.Join(dir, "a.wav"))
	bad := model.NewJob(filepath.Join(dir, "b.wav"))
	broken := model.NewJob(filepath.Join(dir, "nowhere", "c.wav"))

	s := NewItemStreamer(NewWriter(model.PerItem, "", nil))
	s.JobDone(ok, model.Succeeded("a", "streamed"), time.Millisecond)
	s.JobDone(bad, model.Failed("b", errors.New("x")), time.Millisecond)
	s.JobDone(broken, model.Succeeded("c", "lost"), time.Millisecond)

	written, err := s.Result()
	assert.Equal(t, []string{filepath.Join(dir, "a_transcription.txt")}, written)
	assert.Equal(t, "streamed", readFile(t, written[0]))
	assert.Len(t, multierr.Errors(err), 1)
}
