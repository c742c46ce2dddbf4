/*
File    : plox/control/control_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package control

import (
	"errors"
	"testing"

	"github.com/akashmaji946/plox/objects"
	"github.com/stretchr/testify/assert"
)

func TestOk_IsNormal(t *testing.T) {
	assert.True(t, Ok.IsNormal())
	assert.Equal(t, Normal, Ok.Kind)
}

func TestReturning_CarriesValue(t *testing.T) {
	sig := Returning(&objects.Number{Value: 7})
	assert.Equal(t, Return, sig.Kind)
	assert.False(t, sig.IsNormal())
	assert.Equal(t, "7", sig.Value.ToString())
}

func TestBreaking_IsBreakKind(t *testing.T) {
	assert.Equal(t, Break, Breaking.Kind)
	assert.False(t, Breaking.IsNormal())
}

func TestFailing_CarriesError(t *testing.T) {
	err := errors.New("boom")
	sig := Failing(err)
	assert.Equal(t, Err, sig.Kind)
	assert.Same(t, err, sig.Error)
	assert.False(t, sig.IsNormal())
}
