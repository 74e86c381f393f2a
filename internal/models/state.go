package models

import (
	"encoding/json"
	"fmt"
)

// LotState is the auction lifecycle of a lot
type LotState int

const (
	StateNotStarted LotState = iota
	StateBiddingOpen
	StateClosed
	StatePaid
)

var lotStateNames = map[LotState]string{
	StateNotStarted:  "not_started",
	StateBiddingOpen: "bidding_open",
	StateClosed:      "closed",
	StatePaid:        "paid",
}

func (s LotState) String() string {
	if name, ok := lotStateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("lot_state(%d)", int(s))
}

// ParseLotState converts a stored state name back into a LotState
func ParseLotState(name string) (LotState, error) {
	for s, n := range lotStateNames {
		if n == name {
			return s, nil
		}
	}
	return StateNotStarted, fmt.Errorf("unknown lot state %q", name)
}

func (s LotState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *LotState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, err := ParseLotState(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
