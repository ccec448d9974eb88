// Package action defines the scene actions that input shortcuts are bound to
// and the targets those actions apply to.
//
// Actions form three closed sets, one per event arity:
//
//   - DOF2Action: two-axis motion (pointer drags and gestures)
//   - DOF1Action: one-axis motion (the wheel)
//   - ClickAction: discrete clicks
//
// Each set has a Null member, its zero value, used to shadow a shortcut
// without removing it. The Action interface is sealed: only the three
// enum types implement it.
//
// Every DOF1Action has a DOF2Action with the same meaning, so wheel
// bindings can live in a motion profile. DOF1Action.DOF2 is total;
// DOF2Action.DOF1 reports whether the reverse mapping exists.
package action
