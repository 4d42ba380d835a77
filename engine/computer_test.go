package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minaorangina/gofish/deck"
)

func TestComputerPlayer(t *testing.T) {
	t.Run("asks for a rank it holds", func(t *testing.T) {
		p := NewComputerPlayer("c", "Computer", rand.New(rand.NewSource(1)))
		view := viewWithOpponents(3)

		for i := 0; i < 50; i++ {
			choice, err := p.ChooseAsk(view)
			require.NoError(t, err)

			assert.Contains(t, []deck.Rank{deck.Ten, deck.Ace}, choice.Rank)
			assert.Contains(t, []string{"sally", "ron", "luna"}, choice.ToPlayerID)
		}
	})

	t.Run("asks for aces with an empty hand", func(t *testing.T) {
		p := NewComputerPlayer("c", "Computer", nil)
		view := viewWithOpponents(1)
		view.Hand = nil

		choice, err := p.ChooseAsk(view)
		require.NoError(t, err)
		assert.Equal(t, AskChoice{ToPlayerID: "sally", Rank: deck.Ace}, choice)
	})

	t.Run("needs someone to ask", func(t *testing.T) {
		p := NewComputerPlayer("c", "Computer", nil)
		_, err := p.ChooseAsk(TurnView{Hand: []deck.Card{card(deck.Two, deck.Clubs)}})
		assert.ErrorIs(t, err, ErrNoOpponents)
	})

	t.Run("identity", func(t *testing.T) {
		p := NewComputerPlayer("c", "Computer", nil)
		assert.Equal(t, "c", p.ID())
		assert.Equal(t, "Computer", p.Name())
		assert.True(t, p.Computer())
	})
}
