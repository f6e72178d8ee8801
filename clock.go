package extdatetime

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Состояние пакета: источник времени, часовой пояс по умолчанию и последний выданный Current момент.
var (
	mu              sync.Mutex
	clock           = clockwork.NewRealClock()
	defaultLocation = time.Local
	lastCurrent     time.Time
)

// SetClock Замена источника времени (например, на clockwork.NewFakeClock в тестах).
// nil возвращает системные часы. Счетчик строгого возрастания Current сбрасывается.
func SetClock(c clockwork.Clock) {
	mu.Lock()
	defer mu.Unlock()
	if c == nil {
		c = clockwork.NewRealClock()
	}
	clock = c
	lastCurrent = time.Time{}
}

// SetDefaultLocation Часовой пояс, используемый, если он не передан явно. nil - time.Local.
func SetDefaultLocation(loc *time.Location) {
	mu.Lock()
	defer mu.Unlock()
	if loc == nil {
		loc = time.Local
	}
	defaultLocation = loc
}

// DefaultLocation Текущий часовой пояс по умолчанию.
func DefaultLocation() *time.Location {
	mu.Lock()
	defer mu.Unlock()
	return defaultLocation
}

// locationOrDefault nil заменяется часовым поясом по умолчанию.
func locationOrDefault(loc *time.Location) *time.Location {
	if loc != nil {
		return loc
	}
	return DefaultLocation()
}

// clockNow Текущее время без монотонной составляющей.
func clockNow() time.Time {
	mu.Lock()
	defer mu.Unlock()
	return clock.Now().Round(0)
}

// nextMicrosecond Текущий момент с точностью до микросекунды.
// Каждый следующий вызов возвращает строго больший момент: если часы не ушли вперед
// с прошлого вызова, результат сдвигается на 1 мкс.
func nextMicrosecond() time.Time {
	mu.Lock()
	defer mu.Unlock()
	t := clock.Now().Truncate(time.Microsecond)
	if !t.After(lastCurrent) {
		t = lastCurrent.Add(time.Microsecond)
	}
	lastCurrent = t
	return t
}

// currentTime Текущий момент в часовом поясе по умолчанию. Момент собирается в строку
// с микросекундами и разбирается обратно тем же путем, что и CreateFromFormat.
// При нулевом смещении строка оканчивается на "Z" и разбирается в UTC, поэтому
// результат переводится в пояс по умолчанию.
func currentTime() (time.Time, error) {
	loc := DefaultLocation()
	text := nextMicrosecond().In(loc).Format(LayoutMicro)
	t, err := parseFormat(LayoutMicro, text, loc)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
