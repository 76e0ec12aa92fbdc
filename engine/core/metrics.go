package core

const frameAvgCount = 30

// Metrics accumulates per-frame timings for the running engine. A single
// instance is owned by the engine loop; it is not safe for concurrent use.
type Metrics struct {
	frameTimes  [frameAvgCount]float64
	frameCursor int
	avgMS       float64

	frames        int32
	accumulatedMS float64
	fps           float64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

// Update records the elapsed time of one frame, in seconds.
func (m *Metrics) Update(frameElapsed float64) {
	frameMS := frameElapsed * 1000.0

	m.frameTimes[m.frameCursor] = frameMS
	if m.frameCursor == frameAvgCount-1 {
		sum := 0.0
		for i := 0; i < frameAvgCount; i++ {
			sum += m.frameTimes[i]
		}
		m.avgMS = sum / frameAvgCount
	}
	m.frameCursor = (m.frameCursor + 1) % frameAvgCount

	m.accumulatedMS += frameMS
	if m.accumulatedMS > 1000 {
		m.fps = float64(m.frames)
		m.accumulatedMS -= 1000
		m.frames = 0
	}
	m.frames++
}

func (m *Metrics) FPS() float64 {
	return m.fps
}

func (m *Metrics) FrameTime() float64 {
	return m.avgMS
}

func (m *Metrics) Frame() (float64, float64) {
	return m.fps, m.avgMS
}
