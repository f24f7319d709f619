package catalog

import "errors"

var (
	// ErrDecode возвращается при ошибке чтения или разбора файла справочника
	ErrDecode = errors.New("catalog: failed to decode catalog file")

	// ErrInvalid возвращается, когда справочник структурно некорректен
	ErrInvalid = errors.New("catalog: invalid catalog data")
)
