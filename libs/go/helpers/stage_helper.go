package helpers

import (
	"fmt"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
)

// Stage constants define the possible deployment/runtime environments.
const (
	StageProd  = constants.ProdEnvironment
	StageDev   = "dev"
	StageLocal = "local"
)

// IsValidStage checks if the provided stage string is one of the defined valid stages.
func IsValidStage(stage string) bool {
	switch stage {
	case StageProd, StageDev, StageLocal:
		return true
	default:
		return false
	}
}

// ResolveStage returns stage, or StageLocal when it is empty
func ResolveStage(stage string) (string, error) {
	if stage == "" {
		return StageLocal, nil
	}
	if !IsValidStage(stage) {
		return "", fmt.Errorf("invalid STAGE %q: must be one of %s, %s, %s", stage, StageProd, StageDev, StageLocal)
	}
	return stage, nil
}
