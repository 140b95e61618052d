package logger

// run is the worker loop. It is the only goroutine that touches the sinks,
// so lines are written in exactly the order they were dequeued. Once the
// queue is closed, Pop keeps returning the backlog, which drains it fully
// before the loop exits.
func (l *Logger) run() {
	defer close(l.done)

	for {
		rec, ok := l.queue.Pop()
		if !ok {
			return
		}
		if rec.flushed != nil {
			l.barriers.Add(-1)
			close(rec.flushed)
			continue
		}
		l.dispatch(rec)
	}
}

// dispatch writes one entry to the console and then to the file. A failing
// sink never stops the loop; the line is lost for that sink only.
func (l *Logger) dispatch(rec record) {
	l.report(l.console.Handle(rec.entry, rec.line))
	l.report(l.file.Handle(rec.entry, rec.line))
}

// report hands err to the configured ErrorHandler, shielding the worker
// from a panicking callback.
func (l *Logger) report(err error) {
	if err == nil || l.onError == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	l.onError(err)
}
