package strategy

import (
	"fmt"

	"SignalBoard/internal/model"
)

// RSI thresholds.
const (
	Oversold   = 30.0
	Overbought = 70.0
)

// voteRSI is the only rule that may abstain: the 30..70 band casts nothing.
func voteRSI(rsi float64) (model.Vote, bool) {
	switch {
	case rsi < Oversold:
		return model.Vote{Source: model.VoteRSI, Signal: model.SignalBuy, Reason: fmt.Sprintf("RSI=%.1f oversold", rsi)}, true
	case rsi > Overbought:
		return model.Vote{Source: model.VoteRSI, Signal: model.SignalSell, Reason: fmt.Sprintf("RSI=%.1f overbought", rsi)}, true
	default:
		return model.Vote{}, false
	}
}

// voteMACD: strictly above the signal line is Buy, equality is Sell.
func voteMACD(macd, signal float64) model.Vote {
	if macd > signal {
		return model.Vote{Source: model.VoteMACD, Signal: model.SignalBuy, Reason: fmt.Sprintf("MACD %.3f > signal %.3f", macd, signal)}
	}
	return model.Vote{Source: model.VoteMACD, Signal: model.SignalSell, Reason: fmt.Sprintf("MACD %.3f <= signal %.3f", macd, signal)}
}

// voteTrend: close strictly above SMA20 is Buy, equality is Sell.
func voteTrend(close, sma20 float64) model.Vote {
	if close > sma20 {
		return model.Vote{Source: model.VoteTrend, Signal: model.SignalBuy, Reason: fmt.Sprintf("close %.2f > SMA20 %.2f", close, sma20)}
	}
	return model.Vote{Source: model.VoteTrend, Signal: model.SignalSell, Reason: fmt.Sprintf("close %.2f <= SMA20 %.2f", close, sma20)}
}
