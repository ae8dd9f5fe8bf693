package futsal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrInvalidID          = fmt.Errorf("%w: invalid id", ErrInvalidArgument)
	ErrNotFound           = errors.New("not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrAssignmentNotFound = errors.New("player assignment not found")
)
