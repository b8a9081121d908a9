package memory

import "errors"

var errUniqueEmail = errors.New("unique constraint violated: customers.email")
