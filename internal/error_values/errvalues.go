package errorvalues

import "errors"

var (
	ErrUserExists          = errors.New("such user already exists")
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrWrongCredentials    = errors.New("wrong name or password")
	ErrPreferenceNotFound  = errors.New("no preference configured")
	ErrDayNotFound         = errors.New("no day row for requested date")
	ErrChallengeNotFound   = errors.New("challenge doesn't exists")
	ErrCatalogExists       = errors.New("user already picked challenges")
	ErrWrongChallengeCount = errors.New("wrong number of challenges")
	ErrWrongOwner          = errors.New("challenge belongs to different user")
	ErrEntryNotFound       = errors.New("progress entry doesn't exists")
	ErrDateNotAllowed      = errors.New("progress date not allowed")
	ErrInvalidToken        = errors.New("invalid token")
)
