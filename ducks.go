package ducks

import (
	"errors"
)

// All reasons why a dispatched action could not be reduced.
var (
	// ErrMissingAction is returned by the bound reducer when it is called
	// without an action.
	// The reducer cannot guess an intent: every call must carry the action
	// that describes the state change to perform.
	ErrMissingAction = errors.New("no action provided")
	// ErrMissingActionType is returned when an action does not carry a type,
	// such as the zero value of Action.
	// It is also returned by factories given an empty ActionType, so that an
	// unusable case or creator can never be built:
	//  increment, err := ducks.CreateAction("")
	//  // err is ErrMissingActionType, increment is nil
	ErrMissingActionType = errors.New("no action type provided")
)

// ErrMissingCaseHandler is returned, wrapped in an ErrCase, when a case table
// maps an action type to a nil handler.
//
// Case tables validity is checked when NewReducerTable function is called.
var ErrMissingCaseHandler = errors.New("case handler is not defined")

// ErrCase holds the error that makes a case unusable, as well as the action
// type the case is registered under.
type ErrCase struct {
	Type ActionType
	Err  error
}

func (err *ErrCase) Unwrap() error {
	return err.Err
}

func (err *ErrCase) Error() string {
	return "invalid case for action type: " + string(err.Type) + ": " + err.Err.Error()
}

// State is the record a reducer transforms.
// It has no required shape: it holds whatever named fields the application
// wants.
type State map[string]interface{}

// Copy returns a shallow copy of the state.
// Case handlers conventionally build their result by copying the incoming
// state and overwriting the fields they own; the handlers generated by
// DefaultAsyncCases do exactly that.
func (s State) Copy() State {
	stateCopy := make(State, len(s))

	for field, value := range s {
		stateCopy[field] = value
	}

	return stateCopy
}

// ActionType identifies one case of a reducer.
type ActionType string

// An Action describes an intent to change state.
// It carries the type tag a reducer matches cases against, and an arbitrary
// payload, nil when absent.
type Action struct {
	Type    ActionType
	Payload interface{}
}

// A Case is a handler bound to one action type.
// It takes the current state and the dispatched action and returns the next
// state. Cases are expected to be pure: they must not modify the incoming
// state, and their return value becomes the new state.
type Case func(State, Action) State

// Cases map holds which action types to handle and their corresponding Case.
type Cases map[ActionType]Case

// A Reducer is the dispatch function invoked by the host runtime with the
// current state and an incoming action, to compute the next state.
//
// A nil state stands for an omitted one and is replaced with the initial
// state of the table the reducer was bound to.
type Reducer func(State, *Action) (State, error)

// NewReducerTable takes an initial state and a table of cases and returns a
// ReducerTable if one could be created from them.
// The case table is validated so that a dispatch can never reach a nil
// handler at runtime.
// Nil arguments stand for empty records.
//
// Immutability of the arguments is the caller's responsibility: they are
// retained by reference, not copied.
func NewReducerTable(initialState State, cases Cases) (*ReducerTable, error) {
	if initialState == nil {
		initialState = State{}
	}
	if cases == nil {
		cases = Cases{}
	}

	table := &ReducerTable{
		initialState: initialState,
		cases:        cases,
	}
	if err := table.validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// A ReducerTable owns the initial state of one logical reducer and the cases
// the reducer dispatches on.
// Reducer tables should be instanciated through NewReducerTable function,
// that will validate the case table.
//
// The case table only ever grows: CreateAsyncActionWithStates merges the
// generated lifecycle cases into it, and nothing removes entries.
type ReducerTable struct {
	initialState State
	cases        Cases
}

// Validate ensures all cases are registered under a non-empty action type
// and have a handler.
func (table *ReducerTable) validate() error {
	for actionType, handler := range table.cases {
		if actionType == "" {
			return &ErrCase{
				Type: actionType,
				Err:  ErrMissingActionType,
			}
		}

		if handler == nil {
			return &ErrCase{
				Type: actionType,
				Err:  ErrMissingCaseHandler,
			}
		}
	}

	return nil
}

// InitialState returns the state the table was created with.
func (table *ReducerTable) InitialState() State {
	return table.initialState
}

// Cases returns the current case table.
// The returned map is the table's own: callers must treat it as read-only.
func (table *ReducerTable) Cases() Cases {
	return table.cases
}

// BindReducer returns the dispatch function for this table.
//
// The returned Reducer matches the action type against the case table; the
// matched handler's result becomes the new state. When no case matches, the
// incoming state is returned unchanged, which is the default branch of a
// reducing function.
func (table *ReducerTable) BindReducer() Reducer {
	return func(state State, action *Action) (State, error) {
		if state == nil {
			state = table.initialState
		}

		if action == nil {
			return state, ErrMissingAction
		}

		if action.Type == "" {
			return state, ErrMissingActionType
		}

		handler, ok := table.cases[action.Type]
		if !ok {
			return state, nil
		}

		return handler(state, *action), nil
	}
}
