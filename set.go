package ducks

type stateFlagsSet struct {
	flags []string
}

func (set *stateFlagsSet) Has(flag string) bool {
	for _, existingFlag := range set.flags {
		if existingFlag == flag {
			return true
		}
	}

	return false
}

func (set *stateFlagsSet) Add(flags ...string) {
	for _, flagToAdd := range flags {
		if set.Has(flagToAdd) {
			continue
		}

		set.flags = append(set.flags, flagToAdd)
	}
}
