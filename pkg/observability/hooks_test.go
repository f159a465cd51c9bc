package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	generates int
	renders   int
}

func (h *recordingPipelineHooks) OnGenerateStart(ctx context.Context, model string) {
	h.generates++
}

func (h *recordingPipelineHooks) OnRenderComplete(ctx context.Context, drawn, skipped int, d time.Duration, err error) {
	h.renders++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits   int
	misses int
}

func (h *recordingCacheHooks) OnCacheHit(ctx context.Context, keyType string)  { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(ctx context.Context, keyType string) { h.misses++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()

	// Must not panic.
	ctx := context.Background()
	Pipeline().OnGenerateStart(ctx, "model")
	Pipeline().OnGenerateComplete(ctx, "model", false, time.Second, nil)
	Pipeline().OnDecodeComplete(ctx, 3, nil)
	Pipeline().OnRenderStart(ctx, []string{"floor"}, []string{"png"})
	Pipeline().OnRenderComplete(ctx, 3, 0, time.Second, nil)
	Cache().OnCacheHit(ctx, "gen")
	Cache().OnCacheMiss(ctx, "gen")
	Cache().OnCacheSet(ctx, "gen", 100)
}

func TestSetAndReset(t *testing.T) {
	defer Reset()

	ph := &recordingPipelineHooks{}
	ch := &recordingCacheHooks{}
	SetPipelineHooks(ph)
	SetCacheHooks(ch)

	ctx := context.Background()
	Pipeline().OnGenerateStart(ctx, "model")
	Pipeline().OnRenderComplete(ctx, 1, 0, time.Second, nil)
	Cache().OnCacheHit(ctx, "gen")
	Cache().OnCacheMiss(ctx, "gen")

	if ph.generates != 1 || ph.renders != 1 {
		t.Errorf("pipeline hooks = %d generates, %d renders, want 1 each", ph.generates, ph.renders)
	}
	if ch.hits != 1 || ch.misses != 1 {
		t.Errorf("cache hooks = %d hits, %d misses, want 1 each", ch.hits, ch.misses)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() did not restore noop pipeline hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	ph := &recordingPipelineHooks{}
	SetPipelineHooks(ph)
	SetPipelineHooks(nil)

	Pipeline().OnGenerateStart(context.Background(), "model")
	if ph.generates != 1 {
		t.Error("SetPipelineHooks(nil) replaced the registered hooks")
	}
}
