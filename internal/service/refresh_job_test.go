package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRefreshJob_RejectsBadSchedule(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)

	job := NewRefreshJob(r)
	require.Error(t, job.Start("not a schedule"))
}

func TestRefreshJob_ReloadsOnSchedule(t *testing.T) {
	dir := t.TempDir()
	writeTemplate(t, dir, "index.html", "<html></html>")

	r, err := NewRenderer(dir)
	require.NoError(t, err)
	require.False(t, r.Has("bar"))

	job := NewRefreshJob(r)
	require.NoError(t, job.Start("@every 50ms"))
	defer job.Stop()

	writeTemplate(t, dir, "bar.html", "<html><body>the bar</body></html>")
	require.Eventually(t, func() bool { return r.Has("bar") }, 2*time.Second, 25*time.Millisecond)
}
