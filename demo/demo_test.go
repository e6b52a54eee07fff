package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunDESTestsAllPass(t *testing.T) {
	var buf bytes.Buffer
	ok := RunDESTests(&buf)
	assert.True(t, ok)
	assert.NotContains(t, buf.String(), "FAIL")
}

func TestRunDDTAnalysisReportsSignature(t *testing.T) {
	var buf bytes.Buffer
	RunDDTAnalysis(&buf)
	assert.Contains(t, buf.String(), "at least one S-box attains the maximum of 16: true")
}

func TestRunLATAnalysisReportsS5Signature(t *testing.T) {
	var buf bytes.Buffer
	RunLATAnalysis(&buf)
	out := buf.String()
	assert.Contains(t, out, "S5 signature: alpha=16 beta=15 LAT=")
	assert.True(t, strings.Contains(out, "LAT=+20") || strings.Contains(out, "LAT=-20"))
	assert.Contains(t, out, "Piling-Up")
}

func TestClampRounds(t *testing.T) {
	actual, warned := ClampRounds(DemoRounds)
	assert.Equal(t, DemoRounds, actual)
	assert.False(t, warned)

	actual, warned = ClampRounds(16)
	assert.Equal(t, DemoRounds, actual)
	assert.True(t, warned)
}

func TestRunDifferentialAttackDemoWarnsOnMismatch(t *testing.T) {
	var buf bytes.Buffer
	RunDifferentialAttackDemo(&buf, 6)
	assert.Contains(t, buf.String(), "warning: requested 6 rounds")
}

func TestRunLinearAttackDemoReportsRecoveredCount(t *testing.T) {
	var buf bytes.Buffer
	RunLinearAttackDemo(&buf, DemoRounds)
	out := buf.String()
	assert.NotContains(t, out, "warning:")
	assert.True(t, strings.Contains(out, "recovered"))
}

func TestRunAllRunsEveryPhase(t *testing.T) {
	var buf bytes.Buffer
	RunAll(&buf, DemoRounds)
	out := buf.String()
	assert.Contains(t, out, "=== DES self-test ===")
	assert.Contains(t, out, "=== DDT analysis ===")
	assert.Contains(t, out, "=== differential attack demo ===")
	assert.Contains(t, out, "=== LAT analysis ===")
	assert.Contains(t, out, "=== linear attack demo ===")
	assert.NotContains(t, out, "aborting before analysis phases")
}
