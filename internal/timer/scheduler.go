// internal/timer/scheduler.go
package timer

import "container/heap"

// Timer - отменяемый токен запланированного вызова.
// Нулевой указатель безопасен: Cancel ничего не делает, Active возвращает false.
type Timer struct {
	s        *Scheduler
	at       float64
	interval float64 // 0 для одноразового таймера
	fn       func()
	seq      uint64
	index    int // позиция в куче, -1 вне очереди
	done     bool
}

// Cancel снимает таймер с очереди. Повторный вызов безопасен.
func (t *Timer) Cancel() {
	if t == nil || t.done {
		return
	}
	t.done = true
	if t.index >= 0 {
		heap.Remove(&t.s.queue, t.index)
	}
}

// Active сообщает, сработает ли таймер ещё хотя бы раз.
func (t *Timer) Active() bool {
	return t != nil && !t.done
}

// Remaining возвращает игровое время до следующего срабатывания.
func (t *Timer) Remaining() float64 {
	if !t.Active() {
		return 0
	}
	if r := t.at - t.s.now; r > 0 {
		return r
	}
	return 0
}

// Scheduler - общие игровые часы. Время идёт только через Advance,
// поэтому пауза замораживает все таймеры одновременно.
type Scheduler struct {
	now    float64
	seq    uint64
	paused bool
	queue  timerQueue
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After вызывает fn один раз через delay секунд игрового времени.
func (s *Scheduler) After(delay float64, fn func()) *Timer {
	return s.schedule(delay, 0, fn)
}

// Every вызывает fn каждые interval секунд, первый раз через interval.
func (s *Scheduler) Every(interval float64, fn func()) *Timer {
	if interval <= 0 {
		panic("timer: non-positive interval")
	}
	return s.schedule(interval, interval, fn)
}

func (s *Scheduler) schedule(delay, interval float64, fn func()) *Timer {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &Timer{s: s, at: s.now + delay, interval: interval, fn: fn, seq: s.seq, index: -1}
	heap.Push(&s.queue, t)
	return t
}

// Advance сдвигает часы на deltaTime и вызывает наступившие таймеры
// в порядке времени срабатывания. Если колбэк ставит часы на паузу,
// оставшиеся таймеры ждут Resume.
func (s *Scheduler) Advance(deltaTime float64) {
	if s.paused || deltaTime <= 0 {
		return
	}
	target := s.now + deltaTime
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.at > target {
			break
		}
		heap.Pop(&s.queue)
		s.now = next.at
		if next.interval > 0 {
			next.at += next.interval
			heap.Push(&s.queue, next)
		} else {
			next.done = true
		}
		next.fn()
		if s.paused {
			return
		}
	}
	s.now = target
}

// Pause замораживает игровое время.
func (s *Scheduler) Pause() { s.paused = true }

// Resume продолжает игровое время с места остановки.
func (s *Scheduler) Resume() { s.paused = false }

func (s *Scheduler) Paused() bool { return s.paused }

// Now - текущее игровое время в секундах.
func (s *Scheduler) Now() float64 { return s.now }

// Pending - число таймеров в очереди.
func (s *Scheduler) Pending() int { return len(s.queue) }

// Clear отменяет все таймеры.
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.done = true
		t.index = -1
	}
	s.queue = s.queue[:0]
}

// timerQueue - min-куча по (at, seq).
type timerQueue []*Timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at == q[j].at {
		return q[i].seq < q[j].seq
	}
	return q[i].at < q[j].at
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*Timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
