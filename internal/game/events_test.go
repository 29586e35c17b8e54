package game

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventLogOrdering(t *testing.T) {
	l := NewEventLog(10)
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := range 3 {
		l.Append(Entry{Time: base.Add(time.Duration(i) * time.Second), Kind: EventDeal, Message: fmt.Sprintf("m%d", i)})
	}

	entries := l.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "m0", entries[0].Message)
	assert.Equal(t, "m2", entries[2].Message)

	recent := l.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "m2", recent[0].Message)
	assert.Equal(t, "m1", recent[1].Message)
	assert.Len(t, l.Recent(0), 3)

	last, ok := l.Last()
	require.True(t, ok)
	assert.Equal(t, "m2", last.Message)
}

func TestEventLogDropsOldest(t *testing.T) {
	l := NewEventLog(2)
	l.Append(Entry{Message: "a"})
	l.Append(Entry{Message: "b"})
	l.Append(Entry{Message: "c"})

	assert.Equal(t, 2, l.Len())
	entries := l.Entries()
	assert.Equal(t, "b", entries[0].Message)
	assert.Equal(t, "c", entries[1].Message)
}

func TestEventLogEmpty(t *testing.T) {
	l := NewEventLog(0)
	_, ok := l.Last()
	assert.False(t, ok)
	assert.Empty(t, l.Recent(5))
}

func TestEntryString(t *testing.T) {
	e := Entry{Time: time.Date(2025, 1, 1, 13, 7, 9, 0, time.UTC), Message: "Reset game"}
	assert.Equal(t, "[07:09] Reset game", e.String())
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   Rules
		wantErr bool
	}{
		{"defaults", DefaultRules(), false},
		{"no discards", Rules{Hands: 1, Discards: 0, Target: 1}, false},
		{"zero hands", Rules{Hands: 0, Discards: 2, Target: 100}, true},
		{"negative discards", Rules{Hands: 3, Discards: -1, Target: 100}, true},
		{"zero target", Rules{Hands: 3, Discards: 2, Target: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
