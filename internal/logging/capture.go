package logging

import (
	"sync"

	"go.uber.org/zap/zapcore"
)

// Capture is a zapcore.Core that records formatted log lines at or above
// a minimum level. The run command tees it next to the console core so
// the validation report carries the stage log lines.
type Capture struct {
	mu    sync.Mutex
	min   zapcore.Level
	lines []string
}

// NewCapture creates a capture sink recording entries at min and above.
func NewCapture(min zapcore.Level) *Capture {
	return &Capture{min: min}
}

// Enabled implements zapcore.Core
func (c *Capture) Enabled(level zapcore.Level) bool {
	return level >= c.min
}

// With implements zapcore.Core; captured lines keep only the message.
func (c *Capture) With([]zapcore.Field) zapcore.Core {
	return c
}

// Check implements zapcore.Core
func (c *Capture) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

// Write implements zapcore.Core
func (c *Capture) Write(entry zapcore.Entry, _ []zapcore.Field) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, entry.Message)
	return nil
}

// Sync implements zapcore.Core
func (c *Capture) Sync() error {
	return nil
}

// Lines returns the captured messages in emission order.
func (c *Capture) Lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}
