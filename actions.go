package ducks

// An ActionCreator builds actions of a fixed type.
// The payload can be left nil when the intent carries no data.
type ActionCreator func(payload interface{}) *Action

// CreateAction function creates a declarative action constructor for the
// given action type.
//
// CreateAction does not imperatively dispatch anything. It returns a pure
// constructor capturing the action type, so that call sites describe the
// intent and the host runtime decides when to hand the action to a reducer:
//
//  increment, err := ducks.CreateAction("INCREMENT")
//  if err != nil {
//  	return err
//  }
//
//  reduce(state, increment(1))
func CreateAction(actionType ActionType) (ActionCreator, error) {
	if actionType == "" {
		return nil, ErrMissingActionType
	}

	return func(payload interface{}) *Action {
		return &Action{
			Type:    actionType,
			Payload: payload,
		}
	}, nil
}
