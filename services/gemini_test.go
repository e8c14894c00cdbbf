package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no fence", `{"a": 1}`, `{"a": 1}`},
		{"json fence", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"bare fence", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestLooksLikeJSON(t *testing.T) {
	assert.True(t, looksLikeJSON(`{"sections": []}`))
	assert.True(t, looksLikeJSON("  \n{"))
	assert.False(t, looksLikeJSON("Here is your resume:"))
	assert.False(t, looksLikeJSON("[1, 2]"))
}
