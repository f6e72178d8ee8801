package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	extdatetime "github.com/ellavs/extdatetime"
	"github.com/ellavs/extdatetime/internal/config"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEval(t *testing.T) {
	extdatetime.SetDefaultLocation(time.UTC)
	t.Cleanup(func() { extdatetime.SetDefaultLocation(nil) })
	var out bytes.Buffer

	err := eval(&out, []string{"2019-12-31 16:17:35", "addMonth:-46,toEndOfDay", "mutable"})

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assertRow(t, lines[0], "Step", "Time")
	assertRow(t, lines[1], "input", "2019-12-31 16:17:35")
	assertRow(t, lines[2], "addMonth:-46", "2016-02-29 16:17:35")
	assertRow(t, lines[3], "toEndOfDay", "2016-02-29 23:59:59")
	assertRow(t, lines[4], "result", "2016-02-29 23:59:59")
}

// assertRow Ячейки присутствуют в строке таблицы в заданном порядке.
func assertRow(t *testing.T, line string, cells ...string) {
	t.Helper()
	rest := line
	for _, cell := range cells {
		idx := strings.Index(rest, cell)
		if !assert.GreaterOrEqual(t, idx, 0, "ячейка %q в строке %q", cell, line) {
			return
		}
		rest = rest[idx+len(cell):]
	}
}

func TestEval_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Нет операций", args: []string{"2019-12-31"}},
		{name: "Неизвестный режим", args: []string{"2019-12-31", "toNoon", "frozen"}},
		{name: "Неверная дата", args: []string{"31/31/31 25:61", "toNoon"}},
		{name: "Неизвестная операция", args: []string{"2019-12-31", "addYears:1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, eval(&bytes.Buffer{}, tt.args))
		})
	}
}

func TestPrintNow(t *testing.T) {
	extdatetime.SetDefaultLocation(time.UTC)
	extdatetime.SetClock(clockwork.NewFakeClockAt(time.Date(2020, time.January, 1, 10, 0, 0, 0, time.UTC)))
	t.Cleanup(func() {
		extdatetime.SetDefaultLocation(nil)
		extdatetime.SetClock(nil)
	})
	var out bytes.Buffer

	require.NoError(t, printNow(&out))

	assert.Equal(t, "2020-01-01 10:00:00\n", out.String())
}

func TestSetConfigSettings_keepsDefaultsForEmptyValues(t *testing.T) {
	savedAddr, savedLayout, savedSize := listenAddr, outputLayout, locationCacheSize
	t.Cleanup(func() { listenAddr, outputLayout, locationCacheSize = savedAddr, savedLayout, savedSize })

	setConfigSettings(config.Config{ListenAddr: ":9999"})

	assert.Equal(t, ":9999", listenAddr)
	assert.Equal(t, savedLayout, outputLayout)
	assert.Equal(t, savedSize, locationCacheSize)
}
