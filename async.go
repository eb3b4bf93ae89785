package ducks

import (
	"errors"
)

// All reasons why an asynchronous action constructor could not be built, or
// why its deferred operation could not be started.
var (
	// ErrMissingPromise is returned by CreateAsyncAction when no deferred
	// operation is given. An asynchronous action without one has nothing for
	// the host runtime to execute.
	ErrMissingPromise = errors.New("promise is not defined")
	// ErrMissingClient is returned by a BoundPromise called with a nil
	// client. The client is supplied by the host runtime at execution time;
	// a nil one would make every deferred operation fail further away from
	// the actual mistake.
	ErrMissingClient = errors.New("no client provided")
)

// All reasons why a set of lifecycle state flags is invalid.
var (
	// ErrMissingStateFlag is returned when one of the three flag names is
	// empty.
	ErrMissingStateFlag = errors.New("state flag name is empty")
	// ErrDuplicateStateFlag is returned when two flag names collide.
	// The generated cases keep exactly one of the three flags true at a
	// time, which only holds if the names address three distinct fields.
	ErrDuplicateStateFlag = errors.New("state flag names are not distinct")
)

// ErrStateFlag holds the error that makes a set of lifecycle state flags
// invalid, as well as the offending flag name.
type ErrStateFlag struct {
	Flag string
	Err  error
}

func (err *ErrStateFlag) Unwrap() error {
	return err.Err
}

func (err *ErrStateFlag) Error() string {
	return "invalid state flag: " + err.Flag + ": " + err.Err.Error()
}

// Suffixes appended to the base type of an asynchronous action to derive the
// types of its success and failure actions.
const (
	SuccessSuffix = "_SUCCESS"
	FailureSuffix = "_FAILURE"
)

// Fields the generated success and failure cases write the action payload to.
const (
	payloadField = "payload"
	errorField   = "error"
)

// Client holds whatever the host dispatch runtime hands to deferred
// operations at execution time, typically an API client.
// It can contain what user wants.
type Client interface{}

// A Promise is the deferred operation attached to an asynchronous action.
// It is never executed by this library: the host runtime invokes it with a
// client and dispatches the success action with its result, or the failure
// action with its error.
type Promise func(client Client, payload interface{}) (interface{}, error)

// A BoundPromise is a Promise whose payload has been captured by an
// AsyncActionCreator. Only the client remains to be supplied, at execution
// time, by the host runtime.
type BoundPromise func(client Client) (interface{}, error)

// AsyncActionTypes holds the three lifecycle action types of an asynchronous
// action: the base type dispatched when the operation starts, and the types
// derived from it for its success and failure outcomes.
type AsyncActionTypes struct {
	Pending ActionType
	Success ActionType
	Failure ActionType
}

// An AsyncAction describes an intent to run a deferred operation.
// The host runtime extracts the Types and the Promise, invokes the Promise
// with a client, and dispatches the matching lifecycle actions itself.
type AsyncAction struct {
	Types   AsyncActionTypes
	Promise BoundPromise
	Payload interface{}
}

// An AsyncActionCreator builds asynchronous actions of a fixed type, binding
// the payload into the carried Promise.
type AsyncActionCreator func(payload interface{}) *AsyncAction

// AsyncStates names the three boolean fields the generated lifecycle cases
// maintain on the state record, one per phase of the deferred operation.
//
// The three names must be distinct and non-empty.
type AsyncStates struct {
	Pending string
	Success string
	Failure string
}

func (states AsyncStates) validate() error {
	flags := &stateFlagsSet{}

	for _, flag := range []string{states.Pending, states.Success, states.Failure} {
		if flag == "" {
			return &ErrStateFlag{
				Flag: flag,
				Err:  ErrMissingStateFlag,
			}
		}

		if flags.Has(flag) {
			return &ErrStateFlag{
				Flag: flag,
				Err:  ErrDuplicateStateFlag,
			}
		}

		flags.Add(flag)
	}

	return nil
}

// DefaultAsyncCases returns the standard three-phase case set for an
// asynchronous action, keyed by the given lifecycle action types.
//
// Each generated case shallow-merges onto the incoming state and leaves
// exactly one of the three flags true:
//
// 1. the pending case marks the operation as started
//
// 2. the success case marks it as succeeded and stores the action payload
// under the "payload" field
//
// 3. the failure case marks it as failed and stores the action payload under
// the "error" field
func DefaultAsyncCases(pendingType, successType, failureType ActionType, states AsyncStates) Cases {
	return Cases{
		pendingType: func(state State, _ Action) State {
			nextState := state.Copy()

			nextState[states.Pending] = true
			nextState[states.Success] = false
			nextState[states.Failure] = false

			return nextState
		},

		successType: func(state State, action Action) State {
			nextState := state.Copy()

			nextState[states.Pending] = false
			nextState[states.Success] = true
			nextState[states.Failure] = false
			nextState[payloadField] = action.Payload

			return nextState
		},

		failureType: func(state State, action Action) State {
			nextState := state.Copy()

			nextState[states.Pending] = false
			nextState[states.Success] = false
			nextState[states.Failure] = true
			nextState[errorField] = action.Payload

			return nextState
		},
	}
}

// CreateAsyncAction creates a constructor for asynchronous actions of the
// given type, carrying the given deferred operation.
// The success and failure action types are derived from the base type with
// SuccessSuffix and FailureSuffix.
//
// The returned constructor binds the payload into the Promise; the client is
// validated when the BoundPromise is invoked by the host runtime, not when
// the constructor is built.
func (table *ReducerTable) CreateAsyncAction(actionType ActionType, promise Promise) (AsyncActionCreator, error) {
	if actionType == "" {
		return nil, ErrMissingActionType
	}

	if promise == nil {
		return nil, ErrMissingPromise
	}

	types := AsyncActionTypes{
		Pending: actionType,
		Success: actionType + SuccessSuffix,
		Failure: actionType + FailureSuffix,
	}

	return func(payload interface{}) *AsyncAction {
		return &AsyncAction{
			Types: types,
			Promise: func(client Client) (interface{}, error) {
				if client == nil {
					return nil, ErrMissingClient
				}

				return promise(client, payload)
			},
			Payload: payload,
		}
	}, nil
}

// CreateAsyncActionWithStates works as CreateAsyncAction and additionally
// merges the case set generated by DefaultAsyncCases into the table, so that
// the three lifecycle actions are handled without writing their cases by
// hand.
//
// On key collision, cases already registered in the table win over the
// generated ones: a hand-written case is an override, not an error.
func (table *ReducerTable) CreateAsyncActionWithStates(actionType ActionType, promise Promise, states AsyncStates) (AsyncActionCreator, error) {
	creator, err := table.CreateAsyncAction(actionType, promise)
	if err != nil {
		return nil, err
	}

	if err := states.validate(); err != nil {
		return nil, err
	}

	generatedCases := DefaultAsyncCases(
		actionType,
		actionType+SuccessSuffix,
		actionType+FailureSuffix,
		states,
	)

	mergedCases := make(Cases, len(table.cases)+len(generatedCases))
	for generatedType, handler := range generatedCases {
		mergedCases[generatedType] = handler
	}
	for existingType, handler := range table.cases {
		mergedCases[existingType] = handler
	}

	table.cases = mergedCases

	return creator, nil
}
