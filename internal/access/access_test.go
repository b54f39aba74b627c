package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-io/reward-ledger/internal/access"
)

func TestStaticGate(t *testing.T) {
	gate := access.NewStaticGate([]string{"root"}, []string{"ops-1", "ops-2"})

	assert.True(t, gate.HasRole("root", access.RoleAdmin))
	assert.False(t, gate.HasRole("root", access.RoleManager))

	assert.True(t, gate.HasRole("ops-1", access.RoleManager))
	assert.True(t, gate.HasRole("ops-2", access.RoleManager))
	assert.False(t, gate.HasRole("ops-1", access.RoleAdmin))

	assert.False(t, gate.HasRole("stranger", access.RoleAdmin))
	assert.False(t, gate.HasRole("stranger", access.RoleManager))
	assert.False(t, gate.HasRole("root", access.Role("OTHER")))
}
