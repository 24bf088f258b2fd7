// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/owais-symtera/cognito-sub001/ent"
)

// The AnalysisRequestFunc type is an adapter to allow the use of ordinary
// function as AnalysisRequest mutator.
type AnalysisRequestFunc func(context.Context, *ent.AnalysisRequestMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AnalysisRequestFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AnalysisRequestMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AnalysisRequestMutation", m)
}

// The AuditEventFunc type is an adapter to allow the use of ordinary
// function as AuditEvent mutator.
type AuditEventFunc func(context.Context, *ent.AuditEventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuditEventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuditEventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuditEventMutation", m)
}

// The CategoryDependencyFunc type is an adapter to allow the use of ordinary
// function as CategoryDependency mutator.
type CategoryDependencyFunc func(context.Context, *ent.CategoryDependencyMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CategoryDependencyFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CategoryDependencyMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CategoryDependencyMutation", m)
}

// The CategoryResultFunc type is an adapter to allow the use of ordinary
// function as CategoryResult mutator.
type CategoryResultFunc func(context.Context, *ent.CategoryResultMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CategoryResultFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CategoryResultMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CategoryResultMutation", m)
}

// The FinalOutputFunc type is an adapter to allow the use of ordinary
// function as FinalOutput mutator.
type FinalOutputFunc func(context.Context, *ent.FinalOutputMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f FinalOutputFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.FinalOutputMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.FinalOutputMutation", m)
}

// The MergedDataFunc type is an adapter to allow the use of ordinary
// function as MergedData mutator.
type MergedDataFunc func(context.Context, *ent.MergedDataMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f MergedDataFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.MergedDataMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.MergedDataMutation", m)
}

// The ParameterResultFunc type is an adapter to allow the use of ordinary
// function as ParameterResult mutator.
type ParameterResultFunc func(context.Context, *ent.ParameterResultMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ParameterResultFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ParameterResultMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ParameterResultMutation", m)
}

// The PharmaCategoryFunc type is an adapter to allow the use of ordinary
// function as PharmaCategory mutator.
type PharmaCategoryFunc func(context.Context, *ent.PharmaCategoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PharmaCategoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PharmaCategoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PharmaCategoryMutation", m)
}

// The PipelineStageFunc type is an adapter to allow the use of ordinary
// function as PipelineStage mutator.
type PipelineStageFunc func(context.Context, *ent.PipelineStageMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PipelineStageFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PipelineStageMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PipelineStageMutation", m)
}

// The ProcessTrackingFunc type is an adapter to allow the use of ordinary
// function as ProcessTracking mutator.
type ProcessTrackingFunc func(context.Context, *ent.ProcessTrackingMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ProcessTrackingFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ProcessTrackingMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ProcessTrackingMutation", m)
}

// The ProviderResponseFunc type is an adapter to allow the use of ordinary
// function as ProviderResponse mutator.
type ProviderResponseFunc func(context.Context, *ent.ProviderResponseMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ProviderResponseFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ProviderResponseMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ProviderResponseMutation", m)
}

// The RateBucketFunc type is an adapter to allow the use of ordinary
// function as RateBucket mutator.
type RateBucketFunc func(context.Context, *ent.RateBucketMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f RateBucketFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.RateBucketMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.RateBucketMutation", m)
}

// The ScoringParameterFunc type is an adapter to allow the use of ordinary
// function as ScoringParameter mutator.
type ScoringParameterFunc func(context.Context, *ent.ScoringParameterMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ScoringParameterFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ScoringParameterMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ScoringParameterMutation", m)
}

// The ScoringRangeFunc type is an adapter to allow the use of ordinary
// function as ScoringRange mutator.
type ScoringRangeFunc func(context.Context, *ent.ScoringRangeMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ScoringRangeFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ScoringRangeMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ScoringRangeMutation", m)
}

// The SourceConflictFunc type is an adapter to allow the use of ordinary
// function as SourceConflict mutator.
type SourceConflictFunc func(context.Context, *ent.SourceConflictMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SourceConflictFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SourceConflictMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SourceConflictMutation", m)
}

// The StageEventFunc type is an adapter to allow the use of ordinary
// function as StageEvent mutator.
type StageEventFunc func(context.Context, *ent.StageEventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f StageEventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.StageEventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.StageEventMutation", m)
}

// The SummaryHistoryFunc type is an adapter to allow the use of ordinary
// function as SummaryHistory mutator.
type SummaryHistoryFunc func(context.Context, *ent.SummaryHistoryMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SummaryHistoryFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SummaryHistoryMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SummaryHistoryMutation", m)
}

// The SummaryStyleFunc type is an adapter to allow the use of ordinary
// function as SummaryStyle mutator.
type SummaryStyleFunc func(context.Context, *ent.SummaryStyleMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SummaryStyleFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SummaryStyleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SummaryStyleMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
