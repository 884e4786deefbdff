package simulator

import (
	"encoding/json"
	"io"

	"github.com/lox/blackjack/internal/fileutil"
)

type reportJSON struct {
	Seed           int64            `json:"seed"`
	ElapsedSeconds float64          `json:"elapsed_seconds"`
	Rounds         int              `json:"rounds"`
	Hands          int              `json:"hands"`
	Wins           int              `json:"wins"`
	Losses         int              `json:"losses"`
	TiesAsLoss     int              `json:"ties_as_loss"`
	Blackjacks     int              `json:"blackjacks"`
	Busts          int              `json:"busts"`
	Stands         int              `json:"stands"`
	DealerBusts    int              `json:"dealer_busts"`
	WinRate        float64          `json:"win_rate"`
	CI95           [2]float64       `json:"win_rate_ci95"`
	DealerTotals   map[int]int      `json:"dealer_totals"`
	Seats          map[int]seatJSON `json:"seats"`
}

type seatJSON struct {
	Hands   int     `json:"hands"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"win_rate"`
}

// MarshalJSON renders the report with derived rates included
func (r *Report) MarshalJSON() ([]byte, error) {
	s := r.Stats
	lo, hi := s.ConfidenceInterval95()
	out := reportJSON{
		Seed:           r.Seed,
		ElapsedSeconds: r.Elapsed.Seconds(),
		Rounds:         s.Rounds,
		Hands:          s.Hands,
		Wins:           s.Wins,
		Losses:         s.Losses,
		TiesAsLoss:     s.TiesAsLoss,
		Blackjacks:     s.Blackjacks,
		Busts:          s.Busts,
		Stands:         s.Stands,
		DealerBusts:    s.DealerBusts,
		WinRate:        s.WinRate(),
		CI95:           [2]float64{lo, hi},
		DealerTotals:   s.DealerTotals,
		Seats:          make(map[int]seatJSON, len(s.Seats)),
	}
	for num, seat := range s.Seats {
		out.Seats[num] = seatJSON{Hands: seat.Hands, Wins: seat.Wins, WinRate: seat.WinRate()}
	}
	return json.Marshal(out)
}

// WriteFile saves the report as indented JSON, replacing path atomically
func (r *Report) WriteFile(path string) error {
	return fileutil.WriteAtomic(path, 0o644, func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	})
}
