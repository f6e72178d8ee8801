// Package timeutils Хелпер для календарных операций с датами и временем.
// Все функции сохраняют часовой пояс переданной даты.
package timeutils

import (
	"time"

	"github.com/jinzhu/now"
)

// AbsoluteMonths Функция возвращает номер месяца от начала летоисчисления (год*12 + месяц).
// Используется для проверки, не "перескочила" ли дата в следующий месяц.
func AbsoluteMonths(t time.Time) int {
	return t.Year()*12 + int(t.Month())
}

// AddHours Функция прибавляет часы (отрицательное значение - вычитает).
// Прибавляется абсолютная продолжительность, поэтому переход на летнее время учитывается.
func AddHours(t time.Time, hours int) time.Time {
	return t.Add(time.Duration(hours) * time.Hour)
}

// AddDays Функция прибавляет календарные дни (отрицательное значение - вычитает), время суток не меняется.
// Время в "дыре" перехода на летнее время сдвигается вперед (см. date).
func AddDays(t time.Time, days int) time.Time {
	y, m, d := t.Date()
	return date(y, m, d+days, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// AddMonths Функция прибавляет месяцы (отрицательное значение - вычитает).
// Если в целевом месяце нет такого числа, дата прижимается к последнему дню целевого месяца.
// Например, при t = "31.10.2016 16:17:35" и months = 1 функция вернет дату "30.11.2016 16:17:35"
func AddMonths(t time.Time, months int) time.Time {
	return shiftMonths(t, months)
}

// SubMonths Функция вычитает месяцы (отрицательное значение - прибавляет).
// Например, при t = "31.08.2011 16:17:35" и months = 2 функция вернет дату "30.06.2011 16:17:35"
func SubMonths(t time.Time, months int) time.Time {
	return shiftMonths(t, -months)
}

func shiftMonths(t time.Time, months int) time.Time {
	expected := AbsoluteMonths(t) + months
	y, m, d := t.Date()
	t = date(y, m+time.Month(months), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	return clampOverflow(t, expected)
}

// clampOverflow Если дата ушла в следующий месяц (31.01 + 1 месяц = 03.03),
// то вычитается число текущего дня, что дает последний день ожидаемого месяца.
func clampOverflow(t time.Time, expected int) time.Time {
	if AbsoluteMonths(t) != expected {
		t = AddDays(t, -t.Day())
	}
	return t
}

// SetTime Установка времени суток, доли секунды обнуляются.
func SetTime(t time.Time, hour, minute, second int) time.Time {
	y, m, d := t.Date()
	return date(y, m, d, hour, minute, second, 0, t.Location())
}

// SetDate Установка даты, время суток не меняется.
// Выход за пределы месяца нормализуется (32.01 = 01.02).
func SetDate(t time.Time, year int, month time.Month, day int) time.Time {
	return date(year, month, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// date Аналог time.Date. Если заданного времени нет из-за перехода на летнее время
// (например, 02:30 08.03.2020 в America/New_York), time.Date может вернуть время раньше
// заданного (01:30 EST). В этом случае результат сдвигается вперед на размер перехода (03:30 EDT).
func date(year int, month time.Month, day, hour, minute, second, nsec int, loc *time.Location) time.Time {
	t := time.Date(year, month, day, hour, minute, second, nsec, loc)
	want := time.Date(year, month, day, hour, minute, second, nsec, time.UTC)
	got := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	if shift := want.Sub(got); shift > 0 {
		t = t.Add(shift)
	}
	return t
}

// StartOfDay 00:00:00
func StartOfDay(t time.Time) time.Time {
	return SetTime(t, 0, 0, 0)
}

// Noon 12:00:00
func Noon(t time.Time) time.Time {
	return SetTime(t, 12, 0, 0)
}

// EndOfDay 23:59:59 (без долей секунды).
func EndOfDay(t time.Time) time.Time {
	return SetTime(t, 23, 59, 59)
}

// StartOfMonth Функция возвращает момент начала месяца указанной даты.
// Например, при t = "16.10.2022 15:22:30" функция вернет дату "01.10.2022 00:00:00"
func StartOfMonth(t time.Time) time.Time {
	return now.With(t).BeginningOfMonth()
}

// DaysInMonth Количество дней в месяце указанной даты (с учетом високосного года).
func DaysInMonth(t time.Time) int {
	return now.With(t).EndOfMonth().Day()
}

// EndOfMonth Функция возвращает последний день месяца указанной даты со временем 23:59:59.
// Например, при t = "16.02.2016 15:22:30" функция вернет дату "29.02.2016 23:59:59"
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return EndOfDay(SetDate(t, y, m, DaysInMonth(t)))
}
