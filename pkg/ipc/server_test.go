package ipc

import (
	"testing"

	"github.com/aliasdex/aliasdex/taxonomy"
)

func TestToIntAcceptsMsgpackNumericShapes(t *testing.T) {
	testCases := []struct {
		description string
		input       interface{}
		want        int
		wantOK      bool
	}{
		{"plain int", 5, 5, true},
		{"int64 from some encoders", int64(7), 7, true},
		{"float64 from JS clients", float64(9), 9, true},
		{"string is rejected", "5", 0, false},
		{"nil is rejected", nil, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got, ok := toInt(tc.input)
			if ok != tc.wantOK || got != tc.want {
				t.Fatalf("toInt(%v) = (%d, %v), want (%d, %v)", tc.input, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestToTermMsgProjectsAllFields(t *testing.T) {
	term := taxonomy.Term{
		Term:         "girl",
		IsCanonical:  false,
		CanonicalKey: "1girl",
		Category:     0,
		Count:        5794009,
		Aliases:      []string{"1girls", "girl"},
	}

	msg := toTermMsg(term)
	if msg.Term != term.Term || msg.IsCanonical != term.IsCanonical ||
		msg.CanonicalKey != term.CanonicalKey || msg.Category != term.Category ||
		msg.Count != term.Count || len(msg.Aliases) != len(term.Aliases) {
		t.Fatalf("toTermMsg(%+v) = %+v, fields did not round-trip", term, msg)
	}
}
