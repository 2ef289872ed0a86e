package btreeset

import "errors"

// ErrBuilderCompleted signals a Builder method called after Build, the
// direct analogue of the teacher's ErrCordCompleted.
var ErrBuilderCompleted = errors.New("btreeset: builder already completed")
