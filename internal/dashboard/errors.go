package dashboard

import "errors"

var ErrInvalidPeriod = errors.New("month must be 1-12 and year 1970-9999")
