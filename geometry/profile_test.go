package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileNormalizeDefaultsVicinityToFootprint(t *testing.T) {
	fp := Finalize(Circle{Radius: 1})
	profile := NewProfile(&fp, nil).Normalize()

	assert.False(t, profile.Inert())
	assert.Equal(t, profile.Footprint(), profile.Vicinity())
}

func TestProfileInertWithNeitherShape(t *testing.T) {
	profile := NewProfile(nil, nil).Normalize()
	assert.True(t, profile.Inert())
}

func TestProfileAsymmetricByPointerIdentity(t *testing.T) {
	fp := Finalize(Circle{Radius: 1})
	vc := Finalize(Circle{Radius: 2})

	asymmetric := NewProfile(&fp, &vc).Normalize()
	assert.True(t, asymmetric.Asymmetric())

	symmetric := NewProfile(&fp, nil).Normalize()
	assert.False(t, symmetric.Asymmetric())
}

func TestProfileAsymmetricDoesNotPanicOnPolygon(t *testing.T) {
	fp := Finalize(Box(1, 1))
	vc := Finalize(Box(2, 2))

	profile := NewProfile(&fp, &vc).Normalize()
	assert.NotPanics(t, func() {
		profile.Asymmetric()
	})
}
