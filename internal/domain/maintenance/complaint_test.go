package maintenance

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Plumbing ")
	require.NoError(t, err)
	assert.Equal(t, CategoryPlumbing, c)

	_, err = ParseCategory("hvac")
	assert.Error(t, err)
}

func TestCategoryIconIsExhaustive(t *testing.T) {
	for _, c := range Categories() {
		assert.NotEmpty(t, c.Icon(), "category %s has no icon", c)
	}
}

func TestCategoryIsRepair(t *testing.T) {
	assert.True(t, CategoryPlumbing.IsRepair())
	assert.True(t, CategoryAIRepair.IsRepair())
	assert.False(t, CategoryMessage.IsRepair())
	assert.False(t, CategoryOther.IsRepair())
}

func TestNewComplaint(t *testing.T) {
	c, err := NewComplaint(uuid.New(), 5, CategoryElectrical, "Outlet sparking in the kitchen")
	require.NoError(t, err)
	assert.Equal(t, StatusNew, c.Status)
	assert.Equal(t, 5, c.ApartmentNumber)
}

func TestNewComplaintValidation(t *testing.T) {
	_, err := NewComplaint(uuid.Nil, 5, CategoryOther, "text")
	assert.Error(t, err)

	_, err = NewComplaint(uuid.New(), 5, CategoryOther, "   ")
	assert.Error(t, err)

	_, err = NewComplaint(uuid.New(), 5, CategoryOther, strings.Repeat("a", 2001))
	assert.Error(t, err)
}

func TestSetStatus(t *testing.T) {
	c, err := NewComplaint(uuid.New(), 5, CategoryPlumbing, "Leak under sink")
	require.NoError(t, err)

	require.NoError(t, c.SetStatus(StatusInProgress))
	assert.Equal(t, StatusInProgress, c.Status)

	assert.Error(t, c.SetStatus(Status("closed")))
}
