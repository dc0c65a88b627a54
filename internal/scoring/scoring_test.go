package scoring

import (
	"testing"

	"fightpicks/internal/models"
)

func corner(c models.Corner) *models.Corner { return &c }
func method(m models.Method) *models.Method { return &m }
func round(r int) *int                      { return &r }

func TestScoreComponents(t *testing.T) {
	tests := []struct {
		name   string
		pick   models.Pick
		winner *models.Corner
		method *models.Method
		round  *int
		want   int
	}{
		{
			name:   "everything correct is the jackpot",
			pick:   models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(2)},
			winner: corner(models.CornerA),
			method: method(models.MethodKO),
			round:  round(2),
			want:   900,
		},
		{
			name:   "winner only",
			pick:   models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(2)},
			winner: corner(models.CornerA),
			method: method(models.MethodDecision),
			round:  round(3),
			want:   100,
		},
		{
			name:   "wrong winner with unset method and round",
			pick:   models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(2)},
			winner: corner(models.CornerB),
			want:   0,
		},
		{
			name:   "method only",
			pick:   models.Pick{PickWinner: corner(models.CornerB), PickMethod: method(models.MethodSubmission)},
			winner: corner(models.CornerA),
			method: method(models.MethodSubmission),
			round:  round(1),
			want:   300,
		},
		{
			name:   "round only",
			pick:   models.Pick{PickWinner: corner(models.CornerB), PickRound: round(5)},
			winner: corner(models.CornerA),
			method: method(models.MethodKO),
			round:  round(5),
			want:   500,
		},
		{
			name:   "method and round without winner",
			pick:   models.Pick{PickWinner: corner(models.CornerB), PickMethod: method(models.MethodKO), PickRound: round(1)},
			winner: corner(models.CornerA),
			method: method(models.MethodKO),
			round:  round(1),
			want:   800,
		},
		{
			name:   "winner and round without method",
			pick:   models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodSubmission), PickRound: round(3)},
			winner: corner(models.CornerA),
			method: method(models.MethodDecision),
			round:  round(3),
			want:   600,
		},
		{
			name:   "winner and method without round",
			pick:   models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(2)},
			winner: corner(models.CornerA),
			method: method(models.MethodKO),
			round:  round(4),
			want:   400,
		},
		{
			name: "empty pick never scores",
			pick: models.Pick{},
			winner: corner(models.CornerA),
			method: method(models.MethodKO),
			round:  round(1),
			want:   0,
		},
		{
			name: "result with no fields set scores nothing",
			pick: models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(1)},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(&tt.pick, tt.winner, tt.method, tt.round)
			if got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	pick := models.Pick{PickWinner: corner(models.CornerA), PickMethod: method(models.MethodKO), PickRound: round(2)}
	winner := corner(models.CornerA)
	meth := method(models.MethodKO)
	rnd := round(2)

	first := Score(&pick, winner, meth, rnd)
	for i := 0; i < 100; i++ {
		if got := Score(&pick, winner, meth, rnd); got != first {
			t.Fatalf("Score() not deterministic: got %d then %d", first, got)
		}
	}
}

// Only sums of subsets of {100, 300, 500} are reachable.
func TestScoreReachableValues(t *testing.T) {
	reachable := map[int]bool{0: true, 100: true, 300: true, 400: true, 500: true, 600: true, 800: true, 900: true}

	corners := []*models.Corner{nil, corner(models.CornerA), corner(models.CornerB)}
	methods := []*models.Method{nil, method(models.MethodKO), method(models.MethodSubmission), method(models.MethodDecision)}
	rounds := []*int{nil, round(1), round(2), round(3)}

	for _, pw := range corners {
		for _, pm := range methods {
			for _, pr := range rounds {
				pick := models.Pick{PickWinner: pw, PickMethod: pm, PickRound: pr}
				for _, rw := range corners {
					for _, rm := range methods {
						for _, rr := range rounds {
							got := Score(&pick, rw, rm, rr)
							if !reachable[got] {
								t.Fatalf("Score() produced unreachable value %d", got)
							}
						}
					}
				}
			}
		}
	}
}

func TestJackpotThreshold(t *testing.T) {
	if JackpotThreshold != 900 {
		t.Errorf("JackpotThreshold = %d, want 900", JackpotThreshold)
	}
}
