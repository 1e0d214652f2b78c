package chat

// OptionShare pairs a poll option with its computed percentage of the total
// vote count.
type OptionShare struct {
	Option  PollOption `json:"option"`
	Percent float64    `json:"percent"`
}

// TotalVotes sums the vote counts of the given options.
func TotalVotes(options []PollOption) int {
	total := 0
	for _, opt := range options {
		total += opt.Votes
	}
	return total
}

// ComputePercentages returns each option's share of the total vote count in
// input order. With zero total votes every share is 0; the divisor is
// clamped to 1 so the function never divides by zero.
func ComputePercentages(options []PollOption) []OptionShare {
	total := TotalVotes(options)
	if total < 1 {
		total = 1
	}
	shares := make([]OptionShare, 0, len(options))
	for _, opt := range options {
		shares = append(shares, OptionShare{
			Option:  opt,
			Percent: float64(opt.Votes) / float64(total) * 100,
		})
	}
	return shares
}
