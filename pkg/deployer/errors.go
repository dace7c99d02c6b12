// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by Orchestrator.Run matches exactly one
// of them with errors.Is.
var (
	ErrAccountResolution = errors.New("account resolution failed")
	ErrNetworkQuery      = errors.New("network query failed")
	ErrDeployment        = errors.New("deployment failed")
	ErrTransaction       = errors.New("transaction failed")
)

// StepError reports which step of the sequence failed, the failure kind and
// the underlying cause
type StepError struct {
	Step Step
	Kind error
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Step, e.Kind, e.Err)
}

func (e *StepError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
