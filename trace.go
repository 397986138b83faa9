package fsched

// TraceHooks are the two mandatory one-shot event reports around the
// blocking point inside SAC (C8). They receive the worker id. A nil hook
// field is skipped - tracing must be no-cost when disabled, so the
// interpreter checks for nil rather than calling through a no-op closure.
type TraceHooks struct {
	// WaitStarts fires immediately before a worker blocks in SAC's barrier
	// wait.
	WaitStarts func(worker int)
	// WaitEnds fires immediately after a worker is released from SAC's
	// barrier wait.
	WaitEnds func(worker int)
}

func (h *TraceHooks) waitStarts(worker int) {
	if h != nil && h.WaitStarts != nil {
		h.WaitStarts(worker)
	}
}

func (h *TraceHooks) waitEnds(worker int) {
	if h != nil && h.WaitEnds != nil {
		h.WaitEnds(worker)
	}
}
