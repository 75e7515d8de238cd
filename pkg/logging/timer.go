package logging

import "time"

// PhaseTimer measures one pipeline phase and logs it when done
type PhaseTimer struct {
	logger Logger
	phase  string
	start  time.Time
}

// StartPhase begins timing a phase
func StartPhase(logger Logger, phase string) *PhaseTimer {
	return &PhaseTimer{logger: logger, phase: phase, start: time.Now()}
}

// End logs the phase at INFO with its duration and any extra fields
func (p *PhaseTimer) End(fields ...Field) {
	p.logger.Info("phase complete", append([]Field{Phase(p.phase), Latency(time.Since(p.start))}, fields...)...)
}

// Fail logs the phase at ERROR with its duration and the error
func (p *PhaseTimer) Fail(err error) {
	p.logger.Error("phase failed", Phase(p.phase), Latency(time.Since(p.start)), Error(err))
}
