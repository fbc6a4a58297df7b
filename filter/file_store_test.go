package filter_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/logsink/logsink/filter"
)

func writeProps(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
}

func TestFileStoreLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.prop")
	writeProps(t, path, "# thresholds\nlog.tag.MyApp E\nlog.tag.DEFAULT D\n\nbadline\n")

	s, err := filter.OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok := s.Get("log.tag.MyApp")
	require.True(t, ok)
	require.Equal(t, "E", v)

	v, ok = s.Get("log.tag.DEFAULT")
	require.True(t, ok)
	require.Equal(t, "D", v)

	_, ok = s.Get("badline")
	require.False(t, ok)
}

func TestFileStoreMissingFile(t *testing.T) {
	_, err := filter.OpenFileStore(filepath.Join(t.TempDir(), "nope.prop"))
	require.Error(t, err)
}

func TestFileStoreReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "local.prop")
	writeProps(t, path, "log.tag.MyApp E\n")

	s, err := filter.OpenFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	writeProps(t, path, "log.tag.MyApp V\n")

	require.Eventually(t, func() bool {
		v, ok := s.Get("log.tag.MyApp")
		return ok && v == "V"
	}, 2*time.Second, 10*time.Millisecond, "expected the store to pick up the new threshold")
}
