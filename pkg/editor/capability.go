// Package editor declares the capability contracts a text editor host
// consumes from the components plugged into it.
//
// Each contract is a single method. Consumers receive plain values and probe
// for capabilities with a type assertion, so a component only implements
// what it supports.
package editor

// Updater is implemented by components that can refresh their own state,
// for example an action whose enablement depends on the editor input.
type Updater interface {
	Update()
}

// FindReplaceTargetValidator is implemented by find/replace targets that
// can refuse modification (a read-only document, a stale input).
type FindReplaceTargetValidator interface {
	// ValidateTargetState reports whether the target may be modified now.
	ValidateTargetState() bool
}

// RuleHandle is the opaque token handed out by the host job system. It is
// only ever passed back to that system.
type RuleHandle any

// SchedulingRuleProvider exposes the rule under which operations on the
// component must be scheduled. A nil rule means no constraint.
type SchedulingRuleProvider interface {
	SchedulingRule() RuleHandle
}

// UpdateAll calls Update on every target that is an Updater and returns how
// many were refreshed.
func UpdateAll(targets ...any) int {
	n := 0
	for _, t := range targets {
		if u, ok := t.(Updater); ok {
			u.Update()
			n++
		}
	}
	return n
}

// CanModify reports whether a find/replace target accepts modification.
// Targets without a validator are assumed modifiable; nil never is.
func CanModify(target any) bool {
	if v, ok := target.(FindReplaceTargetValidator); ok {
		return v.ValidateTargetState()
	}
	return target != nil
}

// RuleOf returns the scheduling rule of target, or nil.
func RuleOf(target any) RuleHandle {
	if p, ok := target.(SchedulingRuleProvider); ok {
		return p.SchedulingRule()
	}
	return nil
}
