package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry("../../configs/activity-registry.json")
	require.NoError(t, err)
	require.NotEmpty(t, reg.Activities)

	ids := make(map[string]bool)
	taskTypes := make(map[string]bool)
	for _, act := range reg.Activities {
		assert.NotEmpty(t, act.ID)
		assert.NotEmpty(t, act.DisplayName)
		assert.NotEmpty(t, act.TaskType)
		assert.NotEmpty(t, act.Category)
		assert.False(t, ids[act.ID], "duplicate activity ID: %s", act.ID)
		assert.False(t, taskTypes[act.TaskType], "duplicate task type: %s", act.TaskType)
		ids[act.ID] = true
		taskTypes[act.TaskType] = true
	}

	assert.True(t, taskTypes["checklist.generate"])
	assert.True(t, taskTypes["checklist.store"])
	assert.True(t, taskTypes["checklist.email.send"])
	assert.True(t, taskTypes["checklist.crm.sync"])
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry("does-not-exist.json")
	assert.Error(t, err)
}

func TestFindActivity(t *testing.T) {
	reg, err := LoadRegistry("../../configs/activity-registry.json")
	require.NoError(t, err)

	act := reg.FindActivity("generate-checklist")
	require.NotNil(t, act)
	assert.Equal(t, "checklist.generate", act.TaskType)
	assert.Contains(t, act.ErrorCodes, "SNAPSHOT_VALIDATION_FAILED")

	assert.Nil(t, reg.FindActivity("no-such-activity"))
}

func TestFindByTaskType(t *testing.T) {
	reg, err := LoadRegistry("../../configs/activity-registry.json")
	require.NoError(t, err)

	act := reg.FindByTaskType("checklist.store")
	require.NotNil(t, act)
	assert.Equal(t, "store-checklist", act.ID)

	assert.Nil(t, reg.FindByTaskType("checklist.unknown"))
}
