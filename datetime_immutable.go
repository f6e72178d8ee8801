package extdatetime

import (
	"time"

	"github.com/ellavs/extdatetime/internal/helpers/timeutils"
)

// DateTimeImmutable Неизменяемая дата: каждая операция возвращает новый объект,
// исходный не меняется (даже при нулевом сдвиге). Безопасна для совместного использования горутинами.
type DateTimeImmutable struct {
	moment
}

// CurrentImmutable Текущий момент с точностью до микросекунды, см. Current.
func CurrentImmutable() (*DateTimeImmutable, error) {
	t, err := currentTime()
	if err != nil {
		return nil, err
	}
	return CreateImmutableFromTime(t), nil
}

// CreateImmutableFromFormat Разбор строки по шаблону Go, см. CreateFromFormat.
func CreateImmutableFromFormat(layout, text string, loc *time.Location) (*DateTimeImmutable, error) {
	t, err := parseFormat(layout, text, loc)
	if err != nil {
		return nil, err
	}
	return CreateImmutableFromTime(t), nil
}

// CreateImmutableFromTime Новый объект из time.Time (момент и часовой пояс сохраняются).
func CreateImmutableFromTime(t time.Time) *DateTimeImmutable {
	return &DateTimeImmutable{moment{t: t}}
}

// CreateImmutableFromObject Копия любого момента в виде нового DateTimeImmutable.
func CreateImmutableFromObject(src Moment) *DateTimeImmutable {
	return CreateImmutableFromTime(src.Time())
}

// CreateFromMutable Копия изменяемой даты. Дальнейшие изменения источника на копию не влияют.
func CreateFromMutable(src *DateTime) *DateTimeImmutable {
	return CreateImmutableFromObject(src)
}

// CreateImmutable Разбор строки, см. Create.
func CreateImmutable(text string, loc *time.Location) (*DateTimeImmutable, error) {
	t, err := parseText(text, loc)
	if err != nil {
		return nil, err
	}
	return CreateImmutableFromTime(t), nil
}

// ToMutable Копия в виде изменяемой даты.
func (d *DateTimeImmutable) ToMutable() *DateTime {
	return CreateFromImmutable(d)
}

// Duplicate Новый объект с тем же моментом и часовым поясом.
func (d *DateTimeImmutable) Duplicate() *DateTimeImmutable {
	return d.with(d.t)
}

// with Обертка результата операции в новый объект.
func (d *DateTimeImmutable) with(t time.Time) *DateTimeImmutable {
	return CreateImmutableFromTime(t)
}

func (d *DateTimeImmutable) AddHours(hours int) *DateTimeImmutable {
	return d.with(timeutils.AddHours(d.t, hours))
}

func (d *DateTimeImmutable) SubHours(hours int) *DateTimeImmutable {
	return d.AddHours(-hours)
}

func (d *DateTimeImmutable) AddDays(days int) *DateTimeImmutable {
	return d.with(timeutils.AddDays(d.t, days))
}

func (d *DateTimeImmutable) SubDays(days int) *DateTimeImmutable {
	return d.AddDays(-days)
}

// AddMonth Прибавление месяцев с прижатием к последнему дню целевого месяца.
// Например, "2019-12-31 16:17:35" - 46 месяцев = "2016-02-29 16:17:35".
func (d *DateTimeImmutable) AddMonth(months int) *DateTimeImmutable {
	return d.with(timeutils.AddMonths(d.t, months))
}

// SubMonth Вычитание месяцев с прижатием к последнему дню целевого месяца.
func (d *DateTimeImmutable) SubMonth(months int) *DateTimeImmutable {
	return d.with(timeutils.SubMonths(d.t, months))
}

func (d *DateTimeImmutable) ToStartOfDay() *DateTimeImmutable {
	return d.with(timeutils.StartOfDay(d.t))
}

func (d *DateTimeImmutable) ToNoon() *DateTimeImmutable {
	return d.with(timeutils.Noon(d.t))
}

// ToEndOfDay Время 23:59:59, доли секунды обнуляются.
func (d *DateTimeImmutable) ToEndOfDay() *DateTimeImmutable {
	return d.with(timeutils.EndOfDay(d.t))
}

func (d *DateTimeImmutable) ToStartOfMonth() *DateTimeImmutable {
	return d.with(timeutils.StartOfMonth(d.t))
}

func (d *DateTimeImmutable) ToEndOfMonth() *DateTimeImmutable {
	return d.with(timeutils.EndOfMonth(d.t))
}

func (d *DateTimeImmutable) SetDate(year int, month time.Month, day int) *DateTimeImmutable {
	return d.with(timeutils.SetDate(d.t, year, month, day))
}

func (d *DateTimeImmutable) SetTime(hour, minute, second int) *DateTimeImmutable {
	return d.with(timeutils.SetTime(d.t, hour, minute, second))
}

// SetLocation Тот же момент в другом часовом поясе.
func (d *DateTimeImmutable) SetLocation(loc *time.Location) *DateTimeImmutable {
	return d.with(d.t.In(locationOrDefault(loc)))
}

// UnmarshalJSON Заполнение при декодировании, для уже созданных значений не используется.
func (d *DateTimeImmutable) UnmarshalJSON(data []byte) error {
	t, err := unmarshalTime(data)
	if err != nil {
		return err
	}
	d.t = t
	return nil
}
