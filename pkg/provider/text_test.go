package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripThinkBlocks(t *testing.T) {
	assert.Equal(t, "result", StripThinkBlocks("<think>reasoning</think>result"))
	assert.Equal(t, "a b", StripThinkBlocks("a <think>x</think>b<think>y</think>"))
	assert.Equal(t, "before", StripThinkBlocks("before<think>unclosed"))
	assert.Equal(t, "plain text", StripThinkBlocks("plain text"))
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences(`{"a":1}`))
	assert.Equal(t, `{"a":1}`, StripFences("<think>hmm</think>```json\n{\"a\":1}\n```"))
}
