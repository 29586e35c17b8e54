package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "10♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "K♣", NewCard(King, Clubs).String())
	assert.Equal(t, "7♦", NewCard(Seven, Diamonds).String())
}

func TestCardProperties(t *testing.T) {
	t.Parallel()
	assert.True(t, NewCard(Two, Hearts).IsRed())
	assert.True(t, NewCard(Two, Diamonds).IsRed())
	assert.False(t, NewCard(Two, Spades).IsRed())
	assert.True(t, Jack.IsFace())
	assert.True(t, King.IsFace())
	assert.False(t, Ace.IsFace())
	assert.False(t, Rank(0).Valid())
	assert.False(t, Rank(14).Valid())
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    Card
		wantErr bool
	}{
		{name: "ace of spades", input: "As", want: NewCard(Ace, Spades)},
		{name: "ten as T", input: "Th", want: NewCard(Ten, Hearts)},
		{name: "ten as 10", input: "10h", want: NewCard(Ten, Hearts)},
		{name: "suit symbol", input: "Q♦", want: NewCard(Queen, Diamonds)},
		{name: "lowercase", input: "kc", want: NewCard(King, Clubs)},
		{name: "bad rank", input: "Xs", wantErr: true},
		{name: "bad suit", input: "Ax", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "Asss", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidCard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		input   string
		want    []Card
		wantErr bool
	}{
		{
			name:  "concatenated",
			input: "AsKdTh",
			want:  []Card{NewCard(Ace, Spades), NewCard(King, Diamonds), NewCard(Ten, Hearts)},
		},
		{
			name:  "separated",
			input: "As, 10d 2c",
			want:  []Card{NewCard(Ace, Spades), NewCard(Ten, Diamonds), NewCard(Two, Clubs)},
		},
		{
			name:  "empty",
			input: "",
			want:  []Card{},
		},
		{
			name:    "odd length",
			input:   "AsK",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMustParseCardsPanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParseCards("invalid") })
	assert.NotPanics(t, func() { MustParseCards("AsKs") })
}

func TestFormatCards(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "A♠ 10♥", FormatCards(MustParseCards("AsTh")))
	assert.Equal(t, "", FormatCards(nil))
}
