package editor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"textcatalog/pkg/editor"
)

type action struct{ updates int }

func (a *action) Update() { a.updates++ }

type target struct{ readOnly bool }

func (t target) ValidateTargetState() bool { return !t.readOnly }

type fileRule struct{ path string }

type document struct{ rule editor.RuleHandle }

func (d document) SchedulingRule() editor.RuleHandle { return d.rule }

func TestUpdateAll(t *testing.T) {
	a, b := &action{}, &action{}
	n := editor.UpdateAll(a, "not an updater", b, nil, a)

	assert.Equal(t, 3, n)
	assert.Equal(t, 2, a.updates)
	assert.Equal(t, 1, b.updates)
	assert.Zero(t, editor.UpdateAll())
}

func TestCanModify(t *testing.T) {
	tests := []struct {
		name   string
		target any
		want   bool
	}{
		{name: "writable validator", target: target{}, want: true},
		{name: "read-only validator", target: target{readOnly: true}, want: false},
		{name: "plain target", target: struct{}{}, want: true},
		{name: "nil", target: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, editor.CanModify(tt.target))
		})
	}
}

func TestRuleOf(t *testing.T) {
	rule := &fileRule{path: "/src/main.go"}

	assert.Same(t, rule, editor.RuleOf(document{rule: rule}))
	assert.Nil(t, editor.RuleOf(document{}))
	assert.Nil(t, editor.RuleOf(&action{}))
}
