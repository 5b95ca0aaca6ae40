package metrics

import (
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetPoolStats(t *testing.T) {
	m := New("test")

	m.SetPoolStats(sql.DBStats{OpenConnections: 3, Idle: 1, InUse: 2, WaitCount: 4})
	assert.Equal(t, 3.0, testutil.ToFloat64(m.dbPoolOpen))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dbPoolIdle))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.dbPoolInUse))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbPoolWaitCount))

	// Счетчик ожиданий двигается только на прирост накопительного значения
	m.SetPoolStats(sql.DBStats{WaitCount: 9})
	assert.Equal(t, 9.0, testutil.ToFloat64(m.dbPoolWaitCount))

	m.SetPoolStats(sql.DBStats{WaitCount: 9})
	assert.Equal(t, 9.0, testutil.ToFloat64(m.dbPoolWaitCount))
}
