package calc

import (
	"context"
	"time"

	extdatetime "github.com/ellavs/extdatetime"
	"github.com/opentracing/opentracing-go"
)

// Step Результат после очередной операции.
type Step struct {
	Op   Op
	Time time.Time
}

// Result Исходная дата, итоговая дата и промежуточные результаты.
type Result struct {
	Input  extdatetime.Moment
	Result extdatetime.Moment
	Steps  []Step
}

var mutableOps = map[string]func(d *extdatetime.DateTime, n int) *extdatetime.DateTime{
	AddHours:       (*extdatetime.DateTime).AddHours,
	SubHours:       (*extdatetime.DateTime).SubHours,
	AddDays:        (*extdatetime.DateTime).AddDays,
	SubDays:        (*extdatetime.DateTime).SubDays,
	AddMonth:       (*extdatetime.DateTime).AddMonth,
	SubMonth:       (*extdatetime.DateTime).SubMonth,
	ToStartOfDay:   func(d *extdatetime.DateTime, _ int) *extdatetime.DateTime { return d.ToStartOfDay() },
	ToNoon:         func(d *extdatetime.DateTime, _ int) *extdatetime.DateTime { return d.ToNoon() },
	ToEndOfDay:     func(d *extdatetime.DateTime, _ int) *extdatetime.DateTime { return d.ToEndOfDay() },
	ToStartOfMonth: func(d *extdatetime.DateTime, _ int) *extdatetime.DateTime { return d.ToStartOfMonth() },
	ToEndOfMonth:   func(d *extdatetime.DateTime, _ int) *extdatetime.DateTime { return d.ToEndOfMonth() },
}

var immutableOps = map[string]func(d *extdatetime.DateTimeImmutable, n int) *extdatetime.DateTimeImmutable{
	AddHours:       (*extdatetime.DateTimeImmutable).AddHours,
	SubHours:       (*extdatetime.DateTimeImmutable).SubHours,
	AddDays:        (*extdatetime.DateTimeImmutable).AddDays,
	SubDays:        (*extdatetime.DateTimeImmutable).SubDays,
	AddMonth:       (*extdatetime.DateTimeImmutable).AddMonth,
	SubMonth:       (*extdatetime.DateTimeImmutable).SubMonth,
	ToStartOfDay:   func(d *extdatetime.DateTimeImmutable, _ int) *extdatetime.DateTimeImmutable { return d.ToStartOfDay() },
	ToNoon:         func(d *extdatetime.DateTimeImmutable, _ int) *extdatetime.DateTimeImmutable { return d.ToNoon() },
	ToEndOfDay:     func(d *extdatetime.DateTimeImmutable, _ int) *extdatetime.DateTimeImmutable { return d.ToEndOfDay() },
	ToStartOfMonth: func(d *extdatetime.DateTimeImmutable, _ int) *extdatetime.DateTimeImmutable { return d.ToStartOfMonth() },
	ToEndOfMonth:   func(d *extdatetime.DateTimeImmutable, _ int) *extdatetime.DateTimeImmutable { return d.ToEndOfMonth() },
}

// Evaluator Выполнение цепочек операций.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Apply Выполнение цепочки над копией m. В режиме mutable все операции применяются к одному
// объекту DateTime, иначе каждая операция создает новый DateTimeImmutable. Исходный m не меняется.
func (e *Evaluator) Apply(ctx context.Context, m extdatetime.Moment, ops []Op, mutable bool) (Result, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "calc.Apply")
	defer span.Finish()
	span.SetTag("ops", len(ops))
	span.SetTag("mutable", mutable)

	for _, op := range ops {
		if err := op.Validate(); err != nil {
			span.SetTag("error", true)
			return Result{}, err
		}
	}

	if mutable {
		return applyMutable(m, ops), nil
	}
	return applyImmutable(m, ops), nil
}

func applyMutable(m extdatetime.Moment, ops []Op) Result {
	input := extdatetime.CreateImmutableFromObject(m)
	d := extdatetime.CreateFromObject(m)
	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		d = mutableOps[op.Name](d, op.Arg)
		steps = append(steps, Step{Op: op, Time: d.Time()})
	}
	return Result{Input: input, Result: d, Steps: steps}
}

func applyImmutable(m extdatetime.Moment, ops []Op) Result {
	input := extdatetime.CreateImmutableFromObject(m)
	d := input
	steps := make([]Step, 0, len(ops))
	for _, op := range ops {
		d = immutableOps[op.Name](d, op.Arg)
		steps = append(steps, Step{Op: op, Time: d.Time()})
	}
	return Result{Input: input, Result: d, Steps: steps}
}
