package action_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		action   action.Action
		expected string
	}{
		{name: "draw_two", action: action.NewDrawCardsAction(2), expected: "draw 2"},
		{name: "draw_four", action: action.NewDrawCardsAction(4), expected: "draw 4"},
		{name: "reverse", action: action.NewReverseTurnsAction(), expected: "reverse"},
		{name: "skip", action: action.NewSkipTurnAction(), expected: "skip"},
		{name: "pick_color", action: action.NewPickColorAction(), expected: "pick color"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.action.String())
		})
	}
}

func TestDrawCardsAmount(t *testing.T) {
	require.Equal(t, 4, action.NewDrawCardsAction(4).(action.DrawCardsAction).Amount())
}
