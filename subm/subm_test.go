package subm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTerminality(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusWrong.IsTerminal())
	assert.True(t, StatusError.IsTerminal())
}
