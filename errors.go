package flacbatch

import (
	"github.com/simonhull/flacbatch/internal/types"
)

// ContainerReadError is an alias to types.ContainerReadError: the codec
// could not load a file.
type ContainerReadError = types.ContainerReadError

// ContainerWriteError is an alias to types.ContainerWriteError: the
// codec could not persist a file.
type ContainerWriteError = types.ContainerWriteError

// ConsistencyError is an alias to types.ConsistencyError: the selection
// does not share the same block or tag shape.
type ConsistencyError = types.ConsistencyError

// UnresolvedBlockError is an alias to types.UnresolvedBlockError: a
// reconciliation entry matched no block in a file's backup list.
type UnresolvedBlockError = types.UnresolvedBlockError

// ValidationError is an alias to types.ValidationError: an operation
// was rejected before any file I/O.
type ValidationError = types.ValidationError
