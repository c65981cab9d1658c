package inference

import "errors"

// Sentinel kinds for artifact and inference errors.
var (
	ErrShape        = errors.New("artifact shape does not match feature count")
	ErrFeatureOrder = errors.New("artifact feature order does not match")
	ErrClasses      = errors.New("artifact classes must be [0, 1]")
	ErrKind         = errors.New("unexpected artifact kind")
	ErrParameter    = errors.New("non-finite parameter")
	ErrLoadArtifact = errors.New("load artifact failed")
)
