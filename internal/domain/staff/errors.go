package staff

import "errors"

var (
	ErrStaffNotFound = errors.New("staff member not found")
	ErrNoJobHistory  = errors.New("staff member has no job history")
	ErrStaffInactive = errors.New("staff member is inactive")
)
