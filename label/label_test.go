package label_test

import (
	"testing"

	"github.com/opencivic/tallyengine/label"

	"github.com/stretchr/testify/require"
)

func TestDecideInvalidOnGateFailure(t *testing.T) {
	l, reason := label.Decide(false, "quorum_not_met", 10, 5, label.FrontierRiskFlags{})
	require.Equal(t, label.Invalid, l)
	require.Equal(t, "quorum_not_met", reason)
}

func TestDecideInvalidFallsBackToGatesFailed(t *testing.T) {
	l, reason := label.Decide(false, "", 10, 5, label.FrontierRiskFlags{})
	require.Equal(t, label.Invalid, l)
	require.Equal(t, label.ReasonGatesFailed, reason)
}

func TestDecideMarginalBelowThreshold(t *testing.T) {
	l, reason := label.Decide(true, "", 3, 5, label.FrontierRiskFlags{})
	require.Equal(t, label.Marginal, l)
	require.Equal(t, label.ReasonMarginBelowThreshold, reason)
}

func TestDecideMarginalOnFrontierRisk(t *testing.T) {
	l, reason := label.Decide(true, "", 10, 5, label.FrontierRiskFlags{Enclave: true})
	require.Equal(t, label.Marginal, l)
	require.Equal(t, label.ReasonFrontierRiskPresent, reason)
}

func TestDecideDecisive(t *testing.T) {
	l, reason := label.Decide(true, "", 10, 5, label.FrontierRiskFlags{})
	require.Equal(t, label.Decisive, l)
	require.Equal(t, label.ReasonMarginMeetsThreshold, reason)
}
