package engine

import (
	"fmt"

	"euchre/internal/game/player"
	"euchre/internal/logger"
)

// winningScore ends the game. Scores keep accumulating past it internally;
// only the display clamps.
const winningScore = 10

// scoreHand applies the standard table after the fifth trick:
//
//	makers take 3 or 4 tricks          1 point
//	makers sweep all 5                 2 points
//	makers sweep all 5 alone           4 points
//	makers euchred (fewer than 3)      2 points to the defenders
//
// With the super-euchre rule, a maker side taking no trick at all concedes
// 4 points instead of 2.
func (d *Director) scoreHand() {
	st := d.state
	makerTricks := st.teamTricks(st.Maker)
	alone := st.Players[st.Maker.Opposite()].SittingOut

	var points int
	var toMakers bool
	switch {
	case makerTricks == 5 && alone:
		points, toMakers = 4, true
	case makerTricks == 5:
		points, toMakers = 2, true
	case makerTricks >= 3:
		points, toMakers = 1, true
	case makerTricks == 0 && st.Rules.SuperEuchre:
		points, toMakers = 4, false
	default:
		points, toMakers = 2, false
	}

	scoringSeat := st.Maker
	if !toMakers {
		scoringSeat = st.Maker.Next()
	}
	weScored := scoringSeat == player.Human || scoringSeat == player.Partner
	if weScored {
		st.OurScore += points
	} else {
		st.TheirScore += points
	}

	switch {
	case !toMakers && points == 4:
		d.sink.Notice(fmt.Sprintf("Super-euchre! %d points to the defenders.", points))
	case !toMakers:
		d.sink.Notice(fmt.Sprintf("Euchred! %d points to the defenders.", points))
	case points == 1:
		d.sink.Notice("Makers take the hand for 1 point.")
	default:
		d.sink.Notice(fmt.Sprintf("Makers sweep for %d points.", points))
	}
	if weScored {
		if points >= 2 {
			d.sink.Cue("applause_loud")
		} else {
			d.sink.Cue("applause_soft")
		}
	}

	logger.LogInfo("game %s hand scored: makerTricks=%d alone=%v points=%d us=%d them=%d",
		st.ID, makerTricks, alone, points, st.OurScore, st.TheirScore)

	for _, s := range player.Seats() {
		st.Players[s].TricksWon = 0
	}
}
