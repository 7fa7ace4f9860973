package settlement

import "github.com/provenews/provemarket/internal/repos/stakes"

// Credit is one balance increase owed to a user after settlement.
type Credit struct {
	UserID uint64
	Amount int64
}

// SettlePool computes the credits for a market settled with outcome.
//
// Winners split the entire pool (losers' contributions included) in
// proportion to their stake, using integer floor division. The rounding
// remainder goes to the largest winning stake, earliest-placed on ties, so
// the credits always sum to the pool exactly. With no winners every stake is
// refunded 1:1.
//
// all must be ordered by placement time; the remainder tie-break relies on it.
func SettlePool(all []stakes.Stake, outcome bool) (credits []Credit, refunded bool) {
	if len(all) == 0 {
		return nil, false
	}

	var pool int64
	var winning []stakes.Stake

	for _, st := range all {
		pool += st.StakeAmount
		if st.Prediction == outcome {
			winning = append(winning, st)
		}
	}

	if len(winning) == 0 {
		return refundCredits(all), true
	}

	var totalWinning int64
	for _, st := range winning {
		totalWinning += st.StakeAmount
	}

	credits = make([]Credit, 0, len(winning))

	var paid int64
	largest := 0

	for i, st := range winning {
		amount := st.StakeAmount * pool / totalWinning
		paid += amount

		credits = append(credits, Credit{UserID: st.UserID, Amount: amount})

		if st.StakeAmount > winning[largest].StakeAmount {
			largest = i
		}
	}

	// Floor division leaves at most len(winning)-1 points unassigned.
	credits[largest].Amount += pool - paid

	return credits, false
}

func refundCredits(all []stakes.Stake) []Credit {
	credits := make([]Credit, 0, len(all))
	for _, st := range all {
		credits = append(credits, Credit{UserID: st.UserID, Amount: st.StakeAmount})
	}

	return credits
}
