package status

import "errors"

var ErrUndefinedStatus = errors.New("undefined segment status")
