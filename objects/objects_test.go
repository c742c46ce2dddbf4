/*
File    : plox/objects/objects_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumber_ToString_IntegralVsFractional(t *testing.T) {
	assert.Equal(t, "3", (&Number{Value: 3.0}).ToString())
	assert.Equal(t, "3.5", (&Number{Value: 3.5}).ToString())
	assert.Equal(t, "-2", (&Number{Value: -2.0}).ToString())
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(NilValue))
	assert.False(t, Truthy(&Boolean{Value: false}))
	assert.True(t, Truthy(&Boolean{Value: true}))
	assert.True(t, Truthy(&Number{Value: 0}))
	assert.True(t, Truthy(&String{Value: ""}))
}

func TestEqual_SameKindSameValue(t *testing.T) {
	assert.True(t, Equal(&Number{Value: 1}, &Number{Value: 1}))
	assert.False(t, Equal(&Number{Value: 1}, &Number{Value: 2}))
	assert.True(t, Equal(&String{Value: "a"}, &String{Value: "a"}))
	assert.True(t, Equal(NilValue, &Nil{}))
}

func TestEqual_DifferentKindsNeverEqual(t *testing.T) {
	assert.False(t, Equal(&Number{Value: 0}, &String{Value: "0"}))
	assert.False(t, Equal(&Boolean{Value: false}, NilValue))
}
