package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScalar_Text(t *testing.T) {
	tests := []struct {
		name   string
		scalar Scalar
		want   string
	}{
		{"string", String("ADL SCORM"), "ADL SCORM"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Int(80), "80"},
		{"negative int", Int(-3), "-3"},
		{"float ratio", Float(80.0 / 100), "0.8"},
		{"float version", Float(1.3), "1.3"},
		{"whole float", Float(1), "1"},
		{"absent", Scalar{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.scalar.Text())
		})
	}
}

func TestScalar_IsSet(t *testing.T) {
	assert.False(t, Scalar{}.IsSet())
	assert.True(t, String("").IsSet())
	assert.True(t, Bool(false).IsSet())
	assert.Equal(t, KindInt, Int(0).Kind())
}

func TestScalar_Stringified(t *testing.T) {
	assert.Equal(t, String("0.8"), Float(0.8).Stringified())
	assert.Equal(t, String("true"), Bool(true).Stringified())
	assert.False(t, Scalar{}.Stringified().IsSet())
}
