package alert

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// ConsoleSink 终端报警显示
// 严重报警：打印报警文本后闪烁 cycles 次，每次两帧，每帧间隔 interval（阻塞）
// 警告：打印 "体征名: 警告文本"
type ConsoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	cycles   int
	interval time.Duration
	sleep    func(time.Duration)
}

// NewConsoleSink 创建终端报警显示
func NewConsoleSink(out io.Writer, cycles int, interval time.Duration) *ConsoleSink {
	return &ConsoleSink{
		out:      out,
		cycles:   cycles,
		interval: interval,
		sleep:    time.Sleep,
	}
}

// OnCritical 阻塞直到闪烁结束
func (c *ConsoleSink) OnCritical(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "%s\n", message)
	for i := 0; i < c.cycles; i++ {
		fmt.Fprint(c.out, "\r* ")
		c.sleep(c.interval)
		fmt.Fprint(c.out, "\r *")
		c.sleep(c.interval)
	}
}

func (c *ConsoleSink) OnWarning(vitalName, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.out, "%s: %s\n", vitalName, message)
}
