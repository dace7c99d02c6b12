// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import "fmt"

// Step is a state of the deployment sequence that can fail. Steps only move
// forward; any failure ends the run. Assembling the summary comes last and
// cannot fail, so it has no Step.
type Step int

const (
	StepResolveAccount Step = iota + 1
	StepQueryBalance
	StepDeployProtocol
	StepRecordProtocol
	StepDeployToken
	StepRecordToken
	StepConfigure
)

var stepNames = map[Step]string{
	StepResolveAccount: "resolve signing account",
	StepQueryBalance:   "query deployer balance",
	StepDeployProtocol: "deploy protocol contract",
	StepRecordProtocol: "record protocol address",
	StepDeployToken:    "deploy token contract",
	StepRecordToken:    "record token address",
	StepConfigure:      "register supported token",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return fmt.Sprintf("step %d (%s)", int(s), name)
	}
	return fmt.Sprintf("step %d", int(s))
}
