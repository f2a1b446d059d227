package snake

import (
	"errors"
	"fmt"
)

// ErrBoardTooSmall is matched by errors.Is for any *BoardTooSmallError.
var ErrBoardTooSmall = errors.New("snake: board too small")

// BoardTooSmallError reports a board below the playable minimum.
type BoardTooSmallError struct {
	RequiredHeight int
	RequiredWidth  int
	Height         int
	Width          int
}

func (e *BoardTooSmallError) Error() string {
	return fmt.Sprintf("snake: board too small: need at least %dx%d, got %dx%d",
		e.RequiredWidth, e.RequiredHeight, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrBoardTooSmall) succeed.
func (e *BoardTooSmallError) Is(target error) bool {
	return target == ErrBoardTooSmall
}
