// Package extdatetime Расширение стандартного time.Time: изменяемый (DateTime) и неизменяемый
// (DateTimeImmutable) варианты даты со сдвигом на часы, дни и месяцы (с прижатием к концу месяца)
// и установкой начала/конца дня и месяца.
package extdatetime

import (
	"encoding/json"
	"time"

	"github.com/ellavs/extdatetime/internal/helpers/timeutils"
)

// Шаблоны форматирования, используемые пакетом и в тестах.
const (
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutDate     = "2006-01-02"
	// LayoutMicro - дата и время с микросекундами и смещением часового пояса.
	LayoutMicro = "2006-01-02T15:04:05.000000Z07:00"
)

// Moment Общий интерфейс чтения для обоих вариантов даты.
type Moment interface {
	Time() time.Time
	Format(layout string) string
	String() string
	Location() *time.Location
	Unix() int64
	UnixMicro() int64
	Year() int
	Month() time.Month
	Day() int
	Hour() int
	Minute() int
	Second() int
	Microsecond() int
	DaysInMonth() int
	Equal(other Moment) bool
	Before(other Moment) bool
	After(other Moment) bool
	Compare(other Moment) int
	Diff(other Moment) time.Duration
}

// moment Общее хранилище момента времени. Методы только читают значение.
type moment struct {
	t time.Time
}

// Time Копия момента в виде time.Time.
func (m moment) Time() time.Time {
	return m.t
}

func (m moment) Format(layout string) string {
	return m.t.Format(layout)
}

// String Представление с микросекундами и смещением, например "2019-12-31T16:17:35.000000Z".
func (m moment) String() string {
	return m.t.Format(LayoutMicro)
}

func (m moment) Location() *time.Location {
	return m.t.Location()
}

func (m moment) Unix() int64 {
	return m.t.Unix()
}

func (m moment) UnixMicro() int64 {
	return m.t.UnixMicro()
}

func (m moment) Year() int {
	return m.t.Year()
}

func (m moment) Month() time.Month {
	return m.t.Month()
}

func (m moment) Day() int {
	return m.t.Day()
}

func (m moment) Hour() int {
	return m.t.Hour()
}

func (m moment) Minute() int {
	return m.t.Minute()
}

func (m moment) Second() int {
	return m.t.Second()
}

func (m moment) Microsecond() int {
	return m.t.Nanosecond() / int(time.Microsecond)
}

// DaysInMonth Количество дней в текущем месяце.
func (m moment) DaysInMonth() int {
	return timeutils.DaysInMonth(m.t)
}

// Equal Сравнение моментов без учета часового пояса.
func (m moment) Equal(other Moment) bool {
	return m.t.Equal(other.Time())
}

func (m moment) Before(other Moment) bool {
	return m.t.Before(other.Time())
}

func (m moment) After(other Moment) bool {
	return m.t.After(other.Time())
}

// Compare -1, 0 или +1, как time.Time.Compare.
func (m moment) Compare(other Moment) int {
	return m.t.Compare(other.Time())
}

// Diff Продолжительность от other до текущего момента (отрицательная, если other позже).
func (m moment) Diff(other Moment) time.Duration {
	return m.t.Sub(other.Time())
}

func (m moment) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.t)
}

// unmarshalTime Общая часть UnmarshalJSON для обоих вариантов.
func unmarshalTime(data []byte) (time.Time, error) {
	var t time.Time
	err := json.Unmarshal(data, &t)
	return t, err
}
