package ducks

// An ActionsQueue is a FIFO of actions waiting to be reduced.
// It lets callers collect actions as they occur and fold them through a
// reducer later, in order.
type ActionsQueue struct {
	actions []*Action
}

func NewActionsQueue() *ActionsQueue {
	return &ActionsQueue{
		actions: make([]*Action, 0),
	}
}

func (q *ActionsQueue) Add(action *Action) {
	q.actions = append(q.actions, action)
}

func (q *ActionsQueue) Poll() (*Action, bool) {
	actionsCount := len(q.actions)
	if actionsCount == 0 {
		return nil, false
	}

	action := q.actions[0]

	if actionsCount == 1 {
		q.actions = make([]*Action, 0)
	} else {
		q.actions = q.actions[1:]
	}

	return action, true
}

// ReduceAll drains the queue, folding each queued action through the given
// reducer starting from the given state, and returns the final state.
//
// On the first reducing error, draining stops: the failed action has already
// been taken off the queue, the remaining ones stay queued, and the state
// reached so far is returned with the error.
func (q *ActionsQueue) ReduceAll(reduce Reducer, state State) (State, error) {
	for {
		action, ok := q.Poll()
		if !ok {
			return state, nil
		}

		nextState, err := reduce(state, action)
		if err != nil {
			return state, err
		}

		state = nextState
	}
}
