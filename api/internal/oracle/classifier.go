package oracle

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Unavailable is the verdict reported when the engine could not answer.
const Unavailable = "unavailable"

const DefaultTimeout = 30 * time.Second

// Classifier asks an Engine for the language of a text. It never returns an
// error: any failure, including the timeout, becomes Unavailable.
type Classifier struct {
	engine      Engine
	timeout     time.Duration
	promptChars int
}

func NewClassifier(engine Engine, timeout time.Duration, promptChars int) *Classifier {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if promptChars <= 0 {
		promptChars = DefaultPromptChars
	}
	return &Classifier{engine: engine, timeout: timeout, promptChars: promptChars}
}

func (c *Classifier) Name() string {
	if c.engine == nil {
		return ""
	}
	return c.engine.Name()
}

type answer struct {
	text string
	err  error
}

func (c *Classifier) Classify(ctx context.Context, text string) string {
	if c.engine == nil {
		return Unavailable
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := BuildPrompt(text, c.promptChars)
	ch := make(chan answer, 1)
	start := time.Now()
	// an engine that ignores ctx must not hold the request past the timeout
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- answer{err: fmt.Errorf("panic: %v", r)}
			}
		}()
		out, err := c.engine.DetectLanguage(ctx, prompt)
		ch <- answer{text: out, err: err}
	}()

	var a answer
	select {
	case a = <-ch:
	case <-ctx.Done():
		a.err = ctx.Err()
	}
	log.Printf("oracle %s (%s) time: %d ms", c.engine.Name(), c.engine.GetModel(), time.Since(start).Milliseconds())

	if a.err != nil {
		log.Printf("oracle %s unavailable: %v", c.engine.Name(), a.err)
		return Unavailable
	}
	out := strings.TrimSpace(a.text)
	if out == "" {
		log.Printf("oracle %s unavailable: empty answer", c.engine.Name())
		return Unavailable
	}
	return out
}

// Disabled is an oracle that is switched off.
type Disabled struct{}

func (Disabled) Classify(context.Context, string) string { return Unavailable }
