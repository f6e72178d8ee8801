// Package calc Цепочки операций над датой: разбор строки вида "addMonth:1,toEndOfDay" и выполнение.
package calc

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownOperation = errors.New("Неизвестная операция.")
	ErrInvalidArgument  = errors.New("Неверный аргумент операции.")
)

// Имена операций.
const (
	AddHours       = "addHours"
	SubHours       = "subHours"
	AddDays        = "addDays"
	SubDays        = "subDays"
	AddMonth       = "addMonth"
	SubMonth       = "subMonth"
	ToStartOfDay   = "toStartOfDay"
	ToNoon         = "toNoon"
	ToEndOfDay     = "toEndOfDay"
	ToStartOfMonth = "toStartOfMonth"
	ToEndOfMonth   = "toEndOfMonth"
)

// withArg Операции, которым нужен целый аргумент. Остальным аргумент не передается.
var withArg = map[string]bool{
	AddHours: true, SubHours: true,
	AddDays: true, SubDays: true,
	AddMonth: true, SubMonth: true,
	ToStartOfDay: false, ToNoon: false, ToEndOfDay: false,
	ToStartOfMonth: false, ToEndOfMonth: false,
}

// Op Одна операция цепочки.
type Op struct {
	Name   string
	Arg    int
	HasArg bool
}

// String Запись операции в том же виде, что принимает Parse.
func (o Op) String() string {
	if !o.HasArg {
		return o.Name
	}
	return o.Name + ":" + strconv.Itoa(o.Arg)
}

// Validate Проверка имени и наличия аргумента.
func (o Op) Validate() error {
	needArg, known := withArg[o.Name]
	if !known {
		return errors.Wrapf(ErrUnknownOperation, "%q", o.Name)
	}
	if needArg != o.HasArg {
		if needArg {
			return errors.Wrapf(ErrInvalidArgument, "%s: argument required", o.Name)
		}
		return errors.Wrapf(ErrInvalidArgument, "%s: takes no argument", o.Name)
	}
	return nil
}

// Parse Разбор цепочки операций, разделенных запятыми: "addMonth:-46,toEndOfDay".
// Пустая строка - пустая цепочка.
func Parse(text string) ([]Op, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	ops := make([]Op, 0, len(parts))
	for _, part := range parts {
		op, err := parseOp(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func parseOp(text string) (Op, error) {
	name, arg, hasArg := strings.Cut(text, ":")
	op := Op{Name: strings.TrimSpace(name), HasArg: hasArg}
	if hasArg {
		n, err := strconv.Atoi(strings.TrimSpace(arg))
		if err != nil {
			return Op{}, errors.Wrapf(ErrInvalidArgument, "%s: %q is not an integer", op.Name, arg)
		}
		op.Arg = n
	}
	if err := op.Validate(); err != nil {
		return Op{}, err
	}
	return op, nil
}
