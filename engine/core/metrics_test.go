package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsFrameTimeAverage(t *testing.T) {
	m := NewMetrics()
	for i := 0; i < frameAvgCount; i++ {
		m.Update(0.016)
	}
	assert.InDelta(t, 16.0, m.FrameTime(), 0.01)
}

func TestMetricsFPSOverOneSecond(t *testing.T) {
	m := NewMetrics()
	// 60 frames of ~16.7ms cross the one second mark
	for i := 0; i < 61; i++ {
		m.Update(1.0 / 60.0)
	}
	fps, _ := m.Frame()
	assert.InDelta(t, 60.0, fps, 1.0)
}
