package model

// Signal is the discrete trading call.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalSell Signal = "SELL"
	SignalHold Signal = "HOLD"
)

// VoteSource names the rule that cast a vote.
type VoteSource string

const (
	VoteRSI   VoteSource = "RSI"
	VoteMACD  VoteSource = "MACD"
	VoteTrend VoteSource = "TREND"
)

// Vote is one rule's contribution. Abstaining rules are not recorded.
type Vote struct {
	Source VoteSource
	Signal Signal
	Reason string
}

// Prediction is the output of the signal classifier.
type Prediction struct {
	Signal    Signal
	Horizon   int
	Votes     []Vote
	BuyCount  int
	SellCount int

	Close      float64
	RSI14      float64
	MACD       float64
	MACDSignal float64
	SMA20      float64
}
