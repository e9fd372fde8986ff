package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")

var ErrReportsDisabled = errors.New("report export is not configured")
