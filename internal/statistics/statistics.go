package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/internal/game"
)

// SeatStats tracks results for a single player number
type SeatStats struct {
	Hands int
	Wins  int
}

// WinRate returns the fraction of hands won from this seat
func (s SeatStats) WinRate() float64 {
	if s.Hands == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Hands)
}

// Statistics aggregates the outcomes of many rounds
type Statistics struct {
	Rounds int
	Hands  int // player hands scored, dealer excluded

	Wins       int
	Losses     int
	TiesAsLoss int // ties under 21 scored as losses (no push outcome)

	// Terminal states of player hands
	Blackjacks int
	Busts      int
	Stands     int

	DealerBusts  int
	DealerTotals map[int]int // final dealer total -> rounds

	Seats map[int]*SeatStats
}

// New returns empty statistics ready for AddRound
func New() *Statistics {
	return &Statistics{
		DealerTotals: make(map[int]int),
		Seats:        make(map[int]*SeatStats),
	}
}

// AddRound records a finished round
func (s *Statistics) AddRound(summary game.Summary) {
	if s.DealerTotals == nil {
		s.DealerTotals = make(map[int]int)
	}
	if s.Seats == nil {
		s.Seats = make(map[int]*SeatStats)
	}

	s.Rounds++
	s.DealerTotals[summary.DealerTotal]++
	if summary.DealerBusted {
		s.DealerBusts++
	}

	for _, r := range summary.Results {
		s.Hands++
		seat := s.Seats[r.Player]
		if seat == nil {
			seat = &SeatStats{}
			s.Seats[r.Player] = seat
		}
		seat.Hands++

		if r.Won {
			s.Wins++
			seat.Wins++
		} else {
			s.Losses++
		}
		if r.TieAsLoss {
			s.TiesAsLoss++
		}

		switch r.State {
		case game.Blackjack:
			s.Blackjacks++
		case game.Busted:
			s.Busts++
		case game.Stood:
			s.Stands++
		}
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if s.DealerTotals == nil {
		s.DealerTotals = make(map[int]int)
	}
	if s.Seats == nil {
		s.Seats = make(map[int]*SeatStats)
	}

	s.Rounds += other.Rounds
	s.Hands += other.Hands
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.TiesAsLoss += other.TiesAsLoss
	s.Blackjacks += other.Blackjacks
	s.Busts += other.Busts
	s.Stands += other.Stands
	s.DealerBusts += other.DealerBusts
	for total, n := range other.DealerTotals {
		s.DealerTotals[total] += n
	}
	for num, seat := range other.Seats {
		mine := s.Seats[num]
		if mine == nil {
			mine = &SeatStats{}
			s.Seats[num] = mine
		}
		mine.Hands += seat.Hands
		mine.Wins += seat.Wins
	}
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

// WinRate returns the fraction of player hands won
func (s *Statistics) WinRate() float64 { return ratio(s.Wins, s.Hands) }

// BustRate returns the fraction of player hands that busted
func (s *Statistics) BustRate() float64 { return ratio(s.Busts, s.Hands) }

// BlackjackRate returns the fraction of player hands that hit to 21
func (s *Statistics) BlackjackRate() float64 { return ratio(s.Blackjacks, s.Hands) }

// DealerBustRate returns the fraction of rounds in which the dealer busted
func (s *Statistics) DealerBustRate() float64 { return ratio(s.DealerBusts, s.Rounds) }

// StdError returns the standard error of the win rate
func (s *Statistics) StdError() float64 {
	if s.Hands == 0 {
		return 0
	}
	p := s.WinRate()
	return math.Sqrt(p * (1 - p) / float64(s.Hands))
}

// ConfidenceInterval95 returns the 95% confidence interval for the win rate
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	p := s.WinRate()
	margin := 1.96 * s.StdError()
	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// SeatNumbers returns the recorded player numbers in ascending order
func (s *Statistics) SeatNumbers() []int {
	nums := make([]int, 0, len(s.Seats))
	for num := range s.Seats {
		nums = append(nums, num)
	}
	sort.Ints(nums)
	return nums
}

// Validate checks that the counters are mutually consistent
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid rounds count: %d", s.Rounds)
	}

	if s.Wins+s.Losses != s.Hands {
		return fmt.Errorf("wins (%d) + losses (%d) does not match hands (%d)", s.Wins, s.Losses, s.Hands)
	}

	if terminal := s.Blackjacks + s.Busts + s.Stands; terminal != s.Hands {
		return fmt.Errorf("terminal states (%d) do not match hands (%d)", terminal, s.Hands)
	}

	if s.TiesAsLoss > s.Losses {
		return fmt.Errorf("ties scored as losses (%d) exceed losses (%d)", s.TiesAsLoss, s.Losses)
	}

	dealerRounds := 0
	for _, n := range s.DealerTotals {
		dealerRounds += n
	}
	if dealerRounds != s.Rounds {
		return fmt.Errorf("dealer totals cover %d rounds, want %d", dealerRounds, s.Rounds)
	}

	seatHands := 0
	for _, seat := range s.Seats {
		seatHands += seat.Hands
	}
	if seatHands != s.Hands {
		return fmt.Errorf("seat hands total (%d) does not match hands (%d)", seatHands, s.Hands)
	}

	return nil
}
