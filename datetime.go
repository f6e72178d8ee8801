package extdatetime

import (
	"time"

	"github.com/ellavs/extdatetime/internal/helpers/timeutils"
)

// DateTime Изменяемая дата: операции меняют сам объект и возвращают его же,
// что позволяет строить цепочки вызовов. Не безопасен для одновременного изменения из нескольких горутин.
type DateTime struct {
	moment
}

// Current Текущий момент с точностью до микросекунды в часовом поясе по умолчанию.
// Два вызова подряд всегда возвращают разные, возрастающие значения.
func Current() (*DateTime, error) {
	t, err := currentTime()
	if err != nil {
		return nil, err
	}
	return CreateFromTime(t), nil
}

// CreateFromFormat Разбор строки по шаблону Go (например, LayoutDateTime).
// Если loc == nil, используется часовой пояс по умолчанию.
// При ошибке разбора возвращается ErrCreateFromFormat.
func CreateFromFormat(layout, text string, loc *time.Location) (*DateTime, error) {
	t, err := parseFormat(layout, text, loc)
	if err != nil {
		return nil, err
	}
	return CreateFromTime(t), nil
}

// CreateFromTime Новый объект из time.Time (момент и часовой пояс сохраняются).
func CreateFromTime(t time.Time) *DateTime {
	return &DateTime{moment{t: t}}
}

// CreateFromObject Копия любого момента (изменяемого или неизменяемого) в виде нового DateTime.
func CreateFromObject(src Moment) *DateTime {
	return CreateFromTime(src.Time())
}

// CreateFromImmutable Копия неизменяемой даты в виде изменяемой.
func CreateFromImmutable(src *DateTimeImmutable) *DateTime {
	return CreateFromObject(src)
}

// Create Разбор строки: "now" (или "") - текущий момент, иначе дата в одном из
// распространенных форматов ("2019-12-31 16:17:35", "2019-12-31", RFC 3339 и т.п.).
func Create(text string, loc *time.Location) (*DateTime, error) {
	t, err := parseText(text, loc)
	if err != nil {
		return nil, err
	}
	return CreateFromTime(t), nil
}

// ToImmutable Копия в виде неизменяемой даты, исходный объект не меняется.
func (d *DateTime) ToImmutable() *DateTimeImmutable {
	return CreateFromMutable(d)
}

// Duplicate Независимая копия объекта.
func (d *DateTime) Duplicate() *DateTime {
	return CreateFromTime(d.t)
}

// AddHours Прибавление часов (для вычитания передать отрицательное число).
func (d *DateTime) AddHours(hours int) *DateTime {
	d.t = timeutils.AddHours(d.t, hours)
	return d
}

// SubHours Вычитание часов (для прибавления передать отрицательное число).
func (d *DateTime) SubHours(hours int) *DateTime {
	return d.AddHours(-hours)
}

// AddDays Прибавление дней (для вычитания передать отрицательное число).
func (d *DateTime) AddDays(days int) *DateTime {
	d.t = timeutils.AddDays(d.t, days)
	return d
}

// SubDays Вычитание дней (для прибавления передать отрицательное число).
func (d *DateTime) SubDays(days int) *DateTime {
	return d.AddDays(-days)
}

// AddMonth Прибавление месяцев.
// ВНИМАНИЕ: если в целевом месяце меньше дней, чем число текущей даты, дата устанавливается
// на последний день целевого месяца. Например, "2017-01-30 17:00:00" + 1 месяц = "2017-02-28 17:00:00".
func (d *DateTime) AddMonth(months int) *DateTime {
	d.t = timeutils.AddMonths(d.t, months)
	return d
}

// SubMonth Вычитание месяцев с тем же прижатием к концу месяца.
// Например, "2017-03-31 17:00:00" - 1 месяц = "2017-02-28 17:00:00".
func (d *DateTime) SubMonth(months int) *DateTime {
	d.t = timeutils.SubMonths(d.t, months)
	return d
}

// ToStartOfDay Время 00:00:00.
func (d *DateTime) ToStartOfDay() *DateTime {
	d.t = timeutils.StartOfDay(d.t)
	return d
}

// ToNoon Время 12:00:00.
func (d *DateTime) ToNoon() *DateTime {
	d.t = timeutils.Noon(d.t)
	return d
}

// ToEndOfDay Время 23:59:59, доли секунды обнуляются.
func (d *DateTime) ToEndOfDay() *DateTime {
	d.t = timeutils.EndOfDay(d.t)
	return d
}

// ToStartOfMonth Первое число месяца, 00:00:00.
func (d *DateTime) ToStartOfMonth() *DateTime {
	d.t = timeutils.StartOfMonth(d.t)
	return d
}

// ToEndOfMonth Последнее число месяца, 23:59:59.
func (d *DateTime) ToEndOfMonth() *DateTime {
	d.t = timeutils.EndOfMonth(d.t)
	return d
}

// SetDate Установка даты, время суток сохраняется.
func (d *DateTime) SetDate(year int, month time.Month, day int) *DateTime {
	d.t = timeutils.SetDate(d.t, year, month, day)
	return d
}

// SetTime Установка времени суток, доли секунды обнуляются.
func (d *DateTime) SetTime(hour, minute, second int) *DateTime {
	d.t = timeutils.SetTime(d.t, hour, minute, second)
	return d
}

// SetLocation Перевод в другой часовой пояс (момент времени не меняется).
func (d *DateTime) SetLocation(loc *time.Location) *DateTime {
	d.t = d.t.In(locationOrDefault(loc))
	return d
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	t, err := unmarshalTime(data)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}
