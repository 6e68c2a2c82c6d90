package typereg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

func TestDataVersionOrder(t *testing.T) {
	v1 := typereg.NewDataVersion(1)
	v2 := typereg.NewDataVersion(2)
	v1Again := typereg.NewDataVersion(1)

	assert.True(t, v1.Less(v2))
	assert.False(t, v2.Less(v1))
	assert.True(t, v1.Equal(v1Again))
	assert.Equal(t, -1, v1.Compare(v2))
	assert.Equal(t, 1, v2.Compare(v1))
	assert.Equal(t, 0, v1.Compare(v1Again))
}

func TestDataVersionClampsNegative(t *testing.T) {
	v := typereg.NewDataVersion(-5)
	assert.Equal(t, int64(0), v.Int())
}

func TestTypeReferenceInterning(t *testing.T) {
	a := typereg.NewTypeReference("entity.player")
	b := typereg.NewTypeReference("entity.player")
	c := typereg.NewTypeReference("entity.zombie")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.Equal(t, "entity.player", a.ID())
}
