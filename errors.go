package extdatetime

import "github.com/pkg/errors"

var (
	// ErrCreateFromFormat Строку не удалось разобрать по заданному шаблону
	// (также возвращается Current, если не удалось собрать текущий момент).
	ErrCreateFromFormat = errors.New("Cannot create an object by DateTime::createFromFormat().")
	// ErrCreate Строку не удалось распознать ни одним из поддерживаемых форматов.
	ErrCreate = errors.New("Cannot create an object from the given time string.")
)
