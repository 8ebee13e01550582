package models

import "errors"

// Storage-level uniqueness violations. Repositories wrap driver errors with these.
var (
	ErrDuplicateExternalID = errors.New("user with this external id already exists")
	ErrDuplicateMessage    = errors.New("message already submitted")
	ErrDuplicateMedia      = errors.New("media already submitted")
	ErrDuplicateSubmitter  = errors.New("user already has a submission")
	ErrDuplicateVote       = errors.New("user already voted for this submission")
)
