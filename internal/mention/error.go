package mention

import "errors"

var (
	ErrMentionNotFound  = errors.New("mention not found")
	ErrDuplicateMention = errors.New("duplicate mention")
	ErrBrandRequired    = errors.New("brand id is required")
	ErrEmptyCandidate   = errors.New("candidate has no text")
)
