package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wyfcoding/dateutil/xerrors"
)

func TestStatus(t *testing.T) {
	assert.Equal(t, StatusOK, Status(nil))
	assert.Equal(t, StatusEmpty, Status(xerrors.Wrap(xerrors.ErrTimeEmpty, xerrors.ErrUnknown, "empty")))
	assert.Equal(t, StatusInvalid, Status(xerrors.Wrap(xerrors.ErrTimeUnparseable, xerrors.ErrUnknown, "bad")))
	assert.Equal(t, StatusError, Status(errors.New("io")))
}

func TestObserve(t *testing.T) {
	m := NewMetrics("test")
	m.Observe("parse", time.Millisecond, nil)
	m.Observe("parse", time.Millisecond, nil)
	m.Observe("parse", time.Millisecond, xerrors.ErrTimeUnparseable)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("parse", StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("parse", StatusInvalid)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.OperationDuration))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.Observe("parse", 0, nil) })
}

func TestBuildInfoRegisteredOnce(t *testing.T) {
	m := NewMetrics("test")
	m.RegisterBuildInfo("", "v1")
	assert.NotPanics(t, func() { m.RegisterBuildInfo("svc", "v2") })
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BuildInfo.WithLabelValues("unknown", "v1")))
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics("test")
	m.Observe("friendly", time.Millisecond, nil)

	path := filepath.Join(t.TempDir(), "dateutil.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `dateutil_operations_total{operation="friendly",status="ok"} 1`)

	assert.NoError(t, m.WriteTextfile(""))
	assert.Error(t, m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
