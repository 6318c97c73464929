package permission

import "errors"

var ErrForbidden = errors.New("permission denied")
